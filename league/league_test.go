package league_test

import (
	"context"
	"errors"
	"sync"

	"github.com/creativecreature/sheetcache"
	"github.com/creativecreature/sheetcache/league"
)

// fakeCache serves fixed rows per range and counts refresh marks.
type fakeCache struct {
	mu        sync.Mutex
	rows      map[string]sheetcache.Rows
	errs      map[string]error
	requests  []string
	refreshed int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		rows: map[string]sheetcache.Rows{
			league.StandingsRange.String(): {
				{"Bowser Monsters", "6", "4", "0", "48", "40", "L1"},
				{"Mario Fireballs", "8", "2", "0", "61", "35", "W3"},
				{"Peach Monarchs", "5", "4", "1", "44", "44"},
				{"", "1", "1"},
				{"Yoshi Eggs", "1", "10", "", "20", "70", "L7"},
			},
			league.HittingRange.String(): {
				{"Mario", "Mario Fireballs", "10", "30", "12", "3", "1", "2", "9", "4", "3", "2"},
				{"Luigi", "Mario Fireballs", "10", "28", "8", "1", "0", "4", "11", "2", "6", "0"},
				{"Bowser", "Bowser Monsters", "10", "25", "9", "2", "0", "5", "14", "6", "7", "0"},
				{"Toad", "Peach Monarchs", "3", "5", "4"},
				{"Peach", "Peach Monarchs", "9", "n/a", "x"},
			},
			league.PitchingRange.String(): {
				{"Mario", "Mario Fireballs", "5", "20.1", "15", "8", "6", "7", "22", "4", "1", "0"},
				{"Bowser", "Bowser Monsters", "6", "27.0", "30", "20", "18", "12", "15", "3", "3", "1"},
				{"Waluigi", "Yoshi Eggs", "3", "6.2", "10", "9", "9", "5", "4", "0", "3"},
			},
			league.FieldingRange.String(): {
				{"Mario", "Mario Fireballs", "10", "20", "15", "1"},
				{"Luigi", "Mario Fireballs", "10", "35", "2", "3"},
			},
			league.ScheduleRange.String(): {
				{"1", "2026-05-02", "Mario Fireballs", "Bowser Monsters", "7", "5", "Final"},
				{"1", "2026-05-02", "Peach Monarchs", "Yoshi Eggs", "4", "4", "final"},
				{"2", "2026-05-09", "Bowser Monsters", "Peach Monarchs"},
			},
			league.RostersRange.String(): {
				{"Mario Fireballs", "Mario", "P", "Y"},
				{"Mario Fireballs", "Luigi", "1B"},
				{"Bowser Monsters", "Bowser", "P", "yes"},
				{"Peach Monarchs", "Peach", "SS"},
			},
			league.AttributesRange.String(): {
				{"Mario", "Mario Fireballs", "7", "8", "6", "7", "8"},
				{"Bowser", "Bowser Monsters", "10", "5", "2", "4", "7"},
				{"Yoshi", "Yoshi Eggs", "4", "7", "9", "8", "5"},
			},
			league.ChemistryRange.String(): {
				{"Mario", "Luigi", "positive"},
				{"Mario", "Bowser", "negative"},
				{"Peach", "Mario", "Positive"},
				{"Bowser", "Luigi", "bad"},
			},
		},
		errs: make(map[string]error),
	}
}

func (f *fakeCache) GetRange(_ context.Context, r sheetcache.Range) (sheetcache.Rows, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := r.String()
	f.requests = append(f.requests, key)
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	return f.rows[key], nil
}

func (f *fakeCache) MarkRefreshed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshed++
}

func (f *fakeCache) fail(r sheetcache.Range, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[r.String()] = err
}

func (f *fakeCache) refreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshed
}

var errQuota = errors.New("googleapi: Error 429: Quota exceeded")
