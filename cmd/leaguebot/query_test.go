package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creativecreature/sheetcache"
	"github.com/creativecreature/sheetcache/internal/config"
	"github.com/creativecreature/sheetcache/league"
)

var fixture = map[string]sheetcache.Rows{
	league.StandingsRange.String(): {
		{"Bowser Monsters", "6", "4", "0", "48", "40", "L1"},
		{"Mario Fireballs", "8", "2", "0", "61", "35", "W3"},
	},
	league.HittingRange.String(): {
		{"Mario", "Mario Fireballs", "10", "30", "10", "3", "1", "2", "9", "4", "3", "2"},
	},
	league.PitchingRange.String(): {
		{"Mario", "Mario Fireballs", "5", "20.1", "15", "8", "6", "7", "22", "4", "1", "0"},
	},
	league.RostersRange.String(): {
		{"Mario Fireballs", "Mario", "P", "Y"},
	},
	league.ChemistryRange.String(): {
		{"Mario", "Luigi", "positive"},
		{"Mario", "Bowser", "negative"},
	},
}

func testApp(t *testing.T, cfg *config.Config, fail error) *app {
	t.Helper()
	fetcher := sheetcache.FetchFn(func(_ context.Context, rangeDescriptor string) (sheetcache.Rows, error) {
		if fail != nil {
			return nil, fail
		}
		return fixture[rangeDescriptor], nil
	})
	a, err := assemble(cfg, zap.NewNop(), fetcher)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestPrintStandings(t *testing.T) {
	a := testApp(t, config.DefaultConfig(), nil)

	var buf bytes.Buffer
	require.NoError(t, printStandings(context.Background(), &buf, a.league, false))
	out := buf.String()
	assert.Contains(t, out, "Mario Fireballs")
	assert.Contains(t, out, ".800")
	assert.Contains(t, out, "+26")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Mario")), bytes.Index(buf.Bytes(), []byte("Bowser")))

	buf.Reset()
	require.NoError(t, printStandings(context.Background(), &buf, a.league, true))
	var standings []league.TeamStanding
	require.NoError(t, json.Unmarshal(buf.Bytes(), &standings))
	require.Len(t, standings, 2)
	assert.Equal(t, 2.0, standings[1].GamesBehind)
}

func TestPrintPlayer(t *testing.T) {
	a := testApp(t, config.DefaultConfig(), nil)

	var buf bytes.Buffer
	require.NoError(t, printPlayer(context.Background(), &buf, a.league, "mario", false))
	out := buf.String()
	assert.Contains(t, out, "Mario Fireballs")
	assert.Contains(t, out, ".333/")
	assert.Contains(t, out, "20.1")
	assert.Contains(t, out, "Luigi")
	assert.Contains(t, out, "Bowser")

	err := printPlayer(context.Background(), &buf, a.league, "Daisy", false)
	require.Error(t, err)
	assert.Equal(t, league.MessageNotFound, err.Error())
}

func TestPrintRange(t *testing.T) {
	a := testApp(t, config.DefaultConfig(), nil)

	var buf bytes.Buffer
	rng := sheetcache.NewRange("Rosters", "A2:D")
	require.NoError(t, printRange(context.Background(), &buf, a.cache, rng, true))
	var rows sheetcache.Rows
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	assert.Equal(t, fixture[rng.String()], rows)

	buf.Reset()
	require.NoError(t, printRange(context.Background(), &buf, a.cache, sheetcache.NewRange("Empty", "A1"), false))
	assert.Equal(t, "Empty!A1 is empty\n", buf.String())
}

func TestPrintRangeRestartsWindow(t *testing.T) {
	clock := sheetcache.NewTestClock(time.Now())
	fetcher := sheetcache.FetchFn(func(_ context.Context, rangeDescriptor string) (sheetcache.Rows, error) {
		return fixture[rangeDescriptor], nil
	})
	cache := sheetcache.New(time.Minute, fetcher, sheetcache.WithClock(clock))
	rng := sheetcache.NewRange("Rosters", "A2:D")

	require.NoError(t, printRange(context.Background(), io.Discard, cache, rng, true))
	clock.Add(45 * time.Second)
	require.NoError(t, printRange(context.Background(), io.Discard, cache, rng, true))
	assert.Equal(t, clock.Now(), cache.RefreshedAt())
}

func TestFetchErrorsBecomeUserMessages(t *testing.T) {
	a := testApp(t, config.DefaultConfig(), errors.New("oauth2: cannot fetch token: 400 Bad Request"))

	var buf bytes.Buffer
	err := printStandings(context.Background(), &buf, a.league, false)
	require.Error(t, err)
	assert.Equal(t, league.MessageUnavailable, err.Error())
	assert.Empty(t, buf.String())
}

func TestAssembleWithBoltStore(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Cache.BoltPath = filepath.Join(t.TempDir(), "ranges.db")
	cfg.Cache.StaleReads = true

	a := testApp(t, cfg, nil)
	require.NotNil(t, a.store)

	_, err := a.league.Standings(context.Background())
	require.NoError(t, err)
	value, ok := a.store.Get(context.Background(), league.StandingsRange.String())
	require.True(t, ok)
	assert.Contains(t, string(value), "Mario Fireballs")
}

func TestRate(t *testing.T) {
	assert.Equal(t, ".800", rate(0.8))
	assert.Equal(t, ".000", rate(0))
	assert.Equal(t, "1.000", rate(1))
}
