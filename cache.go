package sheetcache

import (
	"context"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

const defaultNumShards = 8

// DefaultTTL is the freshness window used by the league site.
const DefaultTTL = 300 * time.Second

// Fetcher retrieves the rows of a range from the underlying data source.
type Fetcher interface {
	FetchRange(ctx context.Context, rangeDescriptor string) (Rows, error)
}

// FetchFn is an adapter that allows an ordinary function to be used as a Fetcher.
type FetchFn func(ctx context.Context, rangeDescriptor string) (Rows, error)

// FetchRange calls f(ctx, rangeDescriptor).
func (f FetchFn) FetchRange(ctx context.Context, rangeDescriptor string) (Rows, error) {
	return f(ctx, rangeDescriptor)
}

// Client is a read-through cache for spreadsheet ranges. Every entry shares a
// single freshness window: the store is either fresh or stale as a whole.
type Client struct {
	ttl        time.Duration
	fetcher    Fetcher
	shards     []*shard
	numShards  int
	clock      Clock
	log        Logger
	staleReads bool

	metricsRecorder    MetricsRecorder
	distributedMetrics DistributedMetrics
	distributedStorage DistributedStorage

	// gateMu guards the freshness gate. It is also held while writing fetched
	// rows so that an Invalidate can't interleave with a store.
	gateMu        sync.Mutex
	refreshedAt   time.Time
	invalidatedAt time.Time
	generation    uint64
}

// New creates a new Client.
//
// `ttl` is the length of the freshness window. Has to be greater than 0.
// `fetcher` is used to retrieve ranges that are missing or stale.
// `opts` allows for additional configurations to be applied to the cache client.
func New(ttl time.Duration, fetcher Fetcher, opts ...Option) *Client {
	validateArgs(ttl, fetcher)

	//nolint: exhaustruct // The options are going to set the remaining fields.
	client := &Client{
		ttl:       ttl,
		fetcher:   fetcher,
		numShards: defaultNumShards,
		clock:     NewClock(),
		log:       noopLogger{},
	}

	for _, opt := range opts {
		opt(client)
	}

	// We create the shards after we've applied the options to ensure that the correct values are used.
	shards := make([]*shard, client.numShards)
	for i := range client.numShards {
		shards[i] = newShard()
	}
	client.shards = shards

	return client
}

// TTL returns the length of the freshness window.
func (c *Client) TTL() time.Duration {
	return c.ttl
}

// Size returns the number of entries in the cache.
func (c *Client) Size() int {
	var sum int
	for _, shard := range c.shards {
		sum += shard.size()
	}
	return sum
}

// Delete removes a single entry from the cache.
func (c *Client) Delete(key string) {
	shard := c.getShard(key)
	shard.delete(key)
}

// Fresh reports whether the freshness window is currently open.
func (c *Client) Fresh() bool {
	c.gateMu.Lock()
	defer c.gateMu.Unlock()
	return c.freshLocked(c.clock.Now())
}

// RefreshedAt returns the start of the current freshness window. The zero
// time means that the cache has never been refreshed, or that it has been
// invalidated since.
func (c *Client) RefreshedAt() time.Time {
	c.gateMu.Lock()
	defer c.gateMu.Unlock()
	return c.refreshedAt
}

// MarkRefreshed restarts the freshness window without touching the entries.
func (c *Client) MarkRefreshed() {
	c.gateMu.Lock()
	defer c.gateMu.Unlock()
	c.refreshedAt = c.clock.Now()
}

// Invalidate removes every entry and resets the freshness window, forcing
// the next Get for any range to go to the data source. Fetches that are in
// flight while Invalidate runs still return to their callers, but their
// rows are not stored.
func (c *Client) Invalidate() {
	c.gateMu.Lock()
	defer c.gateMu.Unlock()

	c.generation++
	c.refreshedAt = time.Time{}
	c.invalidatedAt = c.clock.Now()

	var evicted int
	for _, shard := range c.shards {
		evicted += shard.clear()
	}
	c.reportInvalidation()
	c.log.Debug("sheetcache: invalidated", "entries", evicted)
}

// freshLocked should be called with the gate lock held.
func (c *Client) freshLocked(now time.Time) bool {
	if c.refreshedAt.IsZero() {
		return false
	}
	return now.Sub(c.refreshedAt) < c.ttl
}

// checkGate reports whether the window is open. When it's closed, and the
// client is not configured for stale reads, every entry is evicted since
// they all expired together.
func (c *Client) checkGate() (fresh bool, generation uint64) {
	c.gateMu.Lock()
	defer c.gateMu.Unlock()

	if c.freshLocked(c.clock.Now()) {
		return true, c.generation
	}
	if c.staleReads {
		return false, c.generation
	}

	var evicted int
	for _, shard := range c.shards {
		evicted += shard.clear()
	}
	if evicted > 0 {
		c.reportEntriesEvicted(evicted)
		c.log.Debug("sheetcache: freshness window elapsed", "evicted", evicted)
	}
	return false, c.generation
}

// store writes fetched rows to the cache, unless the cache has been
// invalidated since the fetch started. A store into a closed window opens a
// new one at fetchedAt, and rows older than the open window pull its start
// back, so that nothing is served for longer than the ttl after it was read
// from the data source.
func (c *Client) store(key string, rows Rows, generation uint64, fetchedAt time.Time) {
	c.gateMu.Lock()
	defer c.gateMu.Unlock()

	if generation != c.generation {
		c.log.Debug("sheetcache: discarding rows fetched before invalidation", "range", key)
		return
	}

	c.getShard(key).set(key, rows)
	if !c.freshLocked(c.clock.Now()) || fetchedAt.Before(c.refreshedAt) {
		c.refreshedAt = fetchedAt
	}
}

// getShard returns the shard that should be used for the specified key.
func (c *Client) getShard(key string) *shard {
	hash := xxhash.Sum64String(key)
	shardIndex := hash % uint64(len(c.shards))
	c.reportShardIndex(int(shardIndex))
	return c.shards[shardIndex]
}
