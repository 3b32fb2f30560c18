package sheetcache

type MetricsRecorder interface {
	// CacheHit is called for every Get that is served from memory.
	CacheHit()
	// CacheMiss is called for every Get that has to go to the data source.
	CacheMiss()
	// FetchError is called when the data source returns an error.
	FetchError()
	// Invalidation is called every time the cache is explicitly invalidated.
	Invalidation()
	// EntriesEvicted is called when a stale read clears the store.
	EntriesEvicted(int)
	// ShardIndex is called to report which shard it was that performed an operation.
	ShardIndex(int)
	// ObserveCacheSize is called to report the size of the cache.
	ObserveCacheSize(callback func() int)
}

type DistributedMetrics interface {
	MetricsRecorder
	// DistributedCacheHit is called when a miss is served from the distributed storage.
	DistributedCacheHit()
	// DistributedCacheMiss is called when the distributed storage has no usable record.
	DistributedCacheMiss()
}

func (c *Client) reportCacheHits(cacheHit bool) {
	if c.metricsRecorder == nil {
		return
	}
	if !cacheHit {
		c.metricsRecorder.CacheMiss()
		return
	}
	c.metricsRecorder.CacheHit()
}

func (c *Client) reportFetchError() {
	if c.metricsRecorder == nil {
		return
	}
	c.metricsRecorder.FetchError()
}

func (c *Client) reportInvalidation() {
	if c.metricsRecorder == nil {
		return
	}
	c.metricsRecorder.Invalidation()
}

func (c *Client) reportEntriesEvicted(n int) {
	if c.metricsRecorder == nil || n == 0 {
		return
	}
	c.metricsRecorder.EntriesEvicted(n)
}

func (c *Client) reportShardIndex(index int) {
	if c.metricsRecorder == nil {
		return
	}
	c.metricsRecorder.ShardIndex(index)
}

func (c *Client) reportDistributedCacheHit(cacheHit bool) {
	if c.distributedMetrics == nil {
		return
	}
	if !cacheHit {
		c.distributedMetrics.DistributedCacheMiss()
		return
	}
	c.distributedMetrics.DistributedCacheHit()
}
