package sheetcache

import "context"

// Peek returns the cached rows for the range without consulting the
// freshness window, and without ever calling the data source.
func (c *Client) Peek(rangeDescriptor string) (Rows, bool) {
	return c.getShard(rangeDescriptor).get(rangeDescriptor)
}

// Get returns the rows for the range descriptor. If the freshness window is
// open and the range is cached, the rows are returned without calling the
// data source. Otherwise the range is fetched, stored, and returned.
//
// Errors from the data source are returned unchanged. They are not retried,
// and a failed fetch leaves nothing behind in the cache. Concurrent calls for
// the same uncached range are not coalesced; each of them performs a fetch.
func (c *Client) Get(ctx context.Context, rangeDescriptor string) (Rows, error) {
	fresh, generation := c.checkGate()

	if fresh || c.staleReads {
		if rows, ok := c.Peek(rangeDescriptor); ok {
			c.reportCacheHits(true)
			return rows, nil
		}
	}

	c.reportCacheHits(false)
	return fetchAndCache(ctx, c, rangeDescriptor, generation)
}

// GetRange is like Get, but takes a structured range.
func (c *Client) GetRange(ctx context.Context, r Range) (Rows, error) {
	return c.Get(ctx, r.String())
}
