package sheetcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/creativecreature/sheetcache"
)

func BenchmarkGetHit(b *testing.B) {
	ctx := context.Background()
	fetchObserver := NewFetchObserver()
	fetchObserver.Response(standingsRows(20))
	c := sheetcache.New(time.Hour, fetchObserver)
	if _, err := c.Get(ctx, "Standings!A2:G"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := c.Get(ctx, "Standings!A2:G"); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkGetManyRanges(b *testing.B) {
	ctx := context.Background()
	ranges := make([]string, 64)
	for i := range ranges {
		ranges[i] = randKey(12)
	}
	c := sheetcache.New(time.Hour, NewFetchObserver(), sheetcache.WithShards(16))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Get(ctx, ranges[i%len(ranges)]); err != nil {
			b.Fatal(err)
		}
	}
}
