package league

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
)

// Rate stats need a minimum sample to qualify for the leaderboard.
const (
	MinAtBats = 10
	MinOuts   = 30
)

// Leader is one entry on a leaderboard.
type Leader struct {
	Rank   int     `json:"rank"`
	Player string  `json:"player"`
	Team   string  `json:"team"`
	Value  float64 `json:"value"`
}

type hitterStat struct {
	value     func(Hitter) float64
	qualifies func(Hitter) bool
}

type pitcherStat struct {
	value     func(Pitcher) float64
	qualifies func(Pitcher) bool
	ascending bool
}

func anyHitter(Hitter) bool   { return true }
func anyPitcher(Pitcher) bool { return true }

func qualifiedHitter(h Hitter) bool   { return h.AtBats >= MinAtBats }
func qualifiedPitcher(p Pitcher) bool { return p.Outs >= MinOuts }

var hitterStats = map[string]hitterStat{
	"avg": {Hitter.Avg, qualifiedHitter},
	"obp": {Hitter.OBP, qualifiedHitter},
	"slg": {Hitter.SLG, qualifiedHitter},
	"ops": {Hitter.OPS, qualifiedHitter},
	"h":   {func(h Hitter) float64 { return float64(h.Hits) }, anyHitter},
	"hr":  {func(h Hitter) float64 { return float64(h.HomeRuns) }, anyHitter},
	"rbi": {func(h Hitter) float64 { return float64(h.RBI) }, anyHitter},
	"sb":  {func(h Hitter) float64 { return float64(h.StolenBases) }, anyHitter},
}

var pitcherStats = map[string]pitcherStat{
	"era":  {Pitcher.ERA, qualifiedPitcher, true},
	"whip": {Pitcher.WHIP, qualifiedPitcher, true},
	"k9":   {Pitcher.K9, qualifiedPitcher, false},
	"so":   {func(p Pitcher) float64 { return float64(p.Strikeouts) }, anyPitcher, false},
	"w":    {func(p Pitcher) float64 { return float64(p.Wins) }, anyPitcher, false},
	"sv":   {func(p Pitcher) float64 { return float64(p.Saves) }, anyPitcher, false},
}

// LeaderStats lists the stats that Leaders can rank, sorted.
func LeaderStats() []string {
	stats := make([]string, 0, len(hitterStats)+len(pitcherStats))
	for stat := range hitterStats {
		stats = append(stats, stat)
	}
	for stat := range pitcherStats {
		stats = append(stats, stat)
	}
	slices.Sort(stats)
	return stats
}

// Leaders returns the top n players for a stat. n <= 0 returns everyone
// that qualifies.
func (s *Service) Leaders(ctx context.Context, stat string, n int) ([]Leader, error) {
	stat = strings.ToLower(strings.TrimSpace(stat))

	var leaders []Leader
	var ascending bool
	switch {
	case hitterStats[stat].value != nil:
		hs := hitterStats[stat]
		hitters, err := s.Hitting(ctx)
		if err != nil {
			return nil, err
		}
		for _, h := range hitters {
			if hs.qualifies(h) {
				leaders = append(leaders, Leader{Player: h.Player, Team: h.Team, Value: hs.value(h)})
			}
		}
	case pitcherStats[stat].value != nil:
		ps := pitcherStats[stat]
		ascending = ps.ascending
		pitchers, err := s.Pitching(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range pitchers {
			if ps.qualifies(p) {
				leaders = append(leaders, Leader{Player: p.Player, Team: p.Team, Value: ps.value(p)})
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStat, stat)
	}

	slices.SortStableFunc(leaders, func(a, b Leader) int {
		if c := cmp.Compare(a.Value, b.Value); c != 0 {
			if ascending {
				return c
			}
			return -c
		}
		return strings.Compare(a.Player, b.Player)
	})
	if n > 0 && len(leaders) > n {
		leaders = leaders[:n]
	}
	for i := range leaders {
		leaders[i].Rank = i + 1
	}
	return leaders, nil
}
