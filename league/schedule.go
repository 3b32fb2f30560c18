package league

import (
	"strings"

	"github.com/creativecreature/sheetcache"
)

// Game is one row of the schedule sheet.
type Game struct {
	Week      int    `json:"week"`
	Date      string `json:"date"`
	Away      string `json:"away"`
	Home      string `json:"home"`
	AwayScore int    `json:"away_score"`
	HomeScore int    `json:"home_score"`
	Final     bool   `json:"final"`
}

// Winner returns the winning team of a final game, or "" for ties and
// games that haven't been played.
func (g Game) Winner() string {
	if !g.Final || g.AwayScore == g.HomeScore {
		return ""
	}
	if g.AwayScore > g.HomeScore {
		return g.Away
	}
	return g.Home
}

// Involves reports whether the team plays in the game.
func (g Game) Involves(team string) bool {
	return sameName(g.Away, team) || sameName(g.Home, team)
}

// parseSchedule reads Week, Date, Away, Home, Away score, Home score, Status.
func parseSchedule(rows sheetcache.Rows) []Game {
	games := make([]Game, 0, len(rows))
	for i := range rows {
		away, home := cellString(rows, i, 2), cellString(rows, i, 3)
		if away == "" && home == "" {
			continue
		}
		games = append(games, Game{
			Week:      cellInt(rows, i, 0),
			Date:      cellString(rows, i, 1),
			Away:      away,
			Home:      home,
			AwayScore: cellInt(rows, i, 4),
			HomeScore: cellInt(rows, i, 5),
			Final:     strings.EqualFold(cellString(rows, i, 6), "final"),
		})
	}
	return games
}
