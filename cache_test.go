package sheetcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/creativecreature/sheetcache"
)

type distributionTestCase struct {
	name                string
	numKeys             int
	numShards           int
	tolerancePercentage int
	keyLength           int
}

func TestShardDistribution(t *testing.T) {
	t.Parallel()

	testCases := []distributionTestCase{
		{
			name:                "100_000 keys, 64 shards, 15% tolerance, 16 key length",
			numKeys:             100_000,
			numShards:           64,
			tolerancePercentage: 15,
			keyLength:           16,
		},
		{
			name:                "10_000 keys, 2 shards, 12% tolerance, 14 key length",
			numKeys:             10_000,
			numShards:           2,
			tolerancePercentage: 12,
			keyLength:           14,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			recorder := newTestMetricsRecorder(tc.numShards)
			fetchObserver := NewFetchObserver()
			c := sheetcache.New(time.Hour, fetchObserver,
				sheetcache.WithShards(tc.numShards),
				sheetcache.WithMetrics(recorder),
			)
			for i := 0; i < tc.numKeys; i++ {
				if _, err := c.Get(ctx, randKey(tc.keyLength)); err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
			}
			recorder.validateShardDistribution(t, tc.tolerancePercentage)
		})
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fetchObserver := NewFetchObserver()
	fetchObserver.Response(standingsRows(2))
	c := sheetcache.New(time.Minute, fetchObserver)

	for _, rng := range []string{"Standings!A2:G", "Schedule!A2:G"} {
		if _, err := c.Get(ctx, rng); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	c.Delete("Standings!A2:G")
	if c.Size() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Size())
	}
	if _, ok := c.Peek("Standings!A2:G"); ok {
		t.Error("expected the deleted range to be gone")
	}

	// Deleting a single entry keeps the window open for the others.
	if _, err := c.Get(ctx, "Schedule!A2:G"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	fetchObserver.AssertFetchCount(t, 2)
}

func TestInvalidateReportsMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := newTestMetricsRecorder(8)
	fetchObserver := NewFetchObserver()
	c := sheetcache.New(time.Minute, fetchObserver, sheetcache.WithMetrics(recorder))

	if _, err := c.Get(ctx, "Standings!A2:G"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := c.Get(ctx, "Standings!A2:G"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	c.Invalidate()
	c.Invalidate()

	recorder.Lock()
	defer recorder.Unlock()
	if recorder.cacheHits != 1 || recorder.cacheMisses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d and %d", recorder.cacheHits, recorder.cacheMisses)
	}
	if recorder.invalidations != 2 {
		t.Errorf("expected 2 invalidations, got %d", recorder.invalidations)
	}
}

func TestTTL(t *testing.T) {
	t.Parallel()

	c := sheetcache.New(5*time.Minute, NewFetchObserver())
	if c.TTL() != 5*time.Minute {
		t.Errorf("expected a 5 minute ttl, got %v", c.TTL())
	}
	if c.Fresh() {
		t.Error("expected a new cache to be stale")
	}
}
