package league

import (
	"slices"

	"github.com/creativecreature/sheetcache"
)

// TeamStanding is one row of the standings sheet.
type TeamStanding struct {
	Team        string  `json:"team"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Ties        int     `json:"ties"`
	RunsFor     int     `json:"runs_for"`
	RunsAgainst int     `json:"runs_against"`
	Streak      string  `json:"streak,omitempty"`
	WinPct      float64 `json:"win_pct"`
	GamesBehind float64 `json:"games_behind"`
}

// RunDiff returns runs scored minus runs allowed.
func (t TeamStanding) RunDiff() int {
	return t.RunsFor - t.RunsAgainst
}

// parseStandings reads the standings sheet (Team, W, L, T, RF, RA, Streak),
// orders the teams by win percentage and computes games behind the leader.
// Ties count as half a win.
func parseStandings(rows sheetcache.Rows) []TeamStanding {
	standings := make([]TeamStanding, 0, len(rows))
	for i := range rows {
		team := cellString(rows, i, 0)
		if team == "" {
			continue
		}
		t := TeamStanding{
			Team:        team,
			Wins:        cellInt(rows, i, 1),
			Losses:      cellInt(rows, i, 2),
			Ties:        cellInt(rows, i, 3),
			RunsFor:     cellInt(rows, i, 4),
			RunsAgainst: cellInt(rows, i, 5),
			Streak:      cellString(rows, i, 6),
		}
		games := float64(t.Wins + t.Losses + t.Ties)
		t.WinPct = ratio(float64(t.Wins)+float64(t.Ties)/2, games)
		standings = append(standings, t)
	}

	slices.SortStableFunc(standings, func(a, b TeamStanding) int {
		switch {
		case a.WinPct > b.WinPct:
			return -1
		case a.WinPct < b.WinPct:
			return 1
		default:
			return b.RunDiff() - a.RunDiff()
		}
	})

	if len(standings) > 0 {
		leader := standings[0]
		for i := range standings {
			t := &standings[i]
			t.GamesBehind = float64((leader.Wins-t.Wins)+(t.Losses-leader.Losses)) / 2
		}
	}
	return standings
}
