package sheetcache

import "time"

type Option func(*Client)

// WithMetrics is used to make the cache report metrics.
func WithMetrics(recorder MetricsRecorder) Option {
	return func(c *Client) {
		recorder.ObserveCacheSize(c.Size)
		c.metricsRecorder = recorder
		if distributed, ok := recorder.(DistributedMetrics); ok {
			c.distributedMetrics = distributed
		}
	}
}

// WithClock can be used to change the clock that the cache uses. This is useful for testing.
func WithClock(clock Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithLog sets the logger that the cache reports unexpected conditions to.
func WithLog(log Logger) Option {
	if log == nil {
		panic("log must not be nil")
	}
	return func(c *Client) {
		c.log = log
	}
}

// WithShards sets the number of shards that the entries are spread across.
func WithShards(numShards int) Option {
	if numShards <= 0 {
		panic("numShards must be greater than 0")
	}
	return func(c *Client) {
		c.numShards = numShards
	}
}

// WithStaleReads makes the cache return stored entries regardless of the
// freshness window. Ranges that aren't in the cache are still fetched, and
// the entries are only removed by Invalidate or Delete.
func WithStaleReads() Option {
	return func(c *Client) {
		c.staleReads = true
	}
}

// WithDistributedStorage adds a second layer between the in-memory store
// and the data source. Records are only used while they're younger than the
// TTL, and never if they were written before the last Invalidate.
func WithDistributedStorage(storage DistributedStorage) Option {
	if storage == nil {
		panic("storage must not be nil")
	}
	return func(c *Client) {
		c.distributedStorage = storage
	}
}

// validateArgs is a helper function that panics if the arguments are invalid.
func validateArgs(ttl time.Duration, fetcher Fetcher) {
	if ttl <= 0 {
		panic("ttl must be greater than 0")
	}

	if fetcher == nil {
		panic("fetcher must not be nil")
	}
}
