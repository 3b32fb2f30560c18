package sheetcache

import "context"

func fetchAndCache(ctx context.Context, c *Client, key string, generation uint64) (Rows, error) {
	response, fetchedAt, err := c.distributedFetch(ctx, key)
	if err != nil {
		c.reportFetchError()
		return nil, err
	}

	// An empty range is a valid response, and is cached like any other.
	if response == nil {
		response = Rows{}
	}

	c.store(key, response, generation, fetchedAt)
	return response, nil
}
