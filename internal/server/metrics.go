package server

import (
	"sync"
	"sync/atomic"
)

// Metrics counts cache events for the admin stats endpoint.
type Metrics struct {
	cacheHits       atomic.Int64
	cacheMisses     atomic.Int64
	fetchErrors     atomic.Int64
	invalidations   atomic.Int64
	entriesEvicted  atomic.Int64
	distributedHits atomic.Int64
	distributedMiss atomic.Int64

	sizeMu sync.Mutex
	size   func() int
}

// Snapshot is a point in time copy of the counters.
type Snapshot struct {
	CacheHits            int64 `json:"cache_hits"`
	CacheMisses          int64 `json:"cache_misses"`
	FetchErrors          int64 `json:"fetch_errors"`
	Invalidations        int64 `json:"invalidations"`
	EntriesEvicted       int64 `json:"entries_evicted"`
	DistributedCacheHits int64 `json:"distributed_cache_hits"`
	DistributedCacheMiss int64 `json:"distributed_cache_misses"`
	Entries              int   `json:"entries"`
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) CacheHit()             { m.cacheHits.Add(1) }
func (m *Metrics) CacheMiss()            { m.cacheMisses.Add(1) }
func (m *Metrics) FetchError()           { m.fetchErrors.Add(1) }
func (m *Metrics) Invalidation()         { m.invalidations.Add(1) }
func (m *Metrics) EntriesEvicted(n int)  { m.entriesEvicted.Add(int64(n)) }
func (m *Metrics) ShardIndex(int)        {}
func (m *Metrics) DistributedCacheHit()  { m.distributedHits.Add(1) }
func (m *Metrics) DistributedCacheMiss() { m.distributedMiss.Add(1) }

func (m *Metrics) ObserveCacheSize(callback func() int) {
	m.sizeMu.Lock()
	defer m.sizeMu.Unlock()
	m.size = callback
}

func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		CacheHits:            m.cacheHits.Load(),
		CacheMisses:          m.cacheMisses.Load(),
		FetchErrors:          m.fetchErrors.Load(),
		Invalidations:        m.invalidations.Load(),
		EntriesEvicted:       m.entriesEvicted.Load(),
		DistributedCacheHits: m.distributedHits.Load(),
		DistributedCacheMiss: m.distributedMiss.Load(),
	}
	m.sizeMu.Lock()
	defer m.sizeMu.Unlock()
	if m.size != nil {
		s.Entries = m.size()
	}
	return s
}
