package league

import (
	"fmt"

	"github.com/creativecreature/sheetcache"
)

// InningsPerGame is used to scale ERA and strikeout rate.
const InningsPerGame = 9

// Hitter is one row of the hitting sheet.
type Hitter struct {
	Player      string `json:"player"`
	Team        string `json:"team"`
	Games       int    `json:"games"`
	AtBats      int    `json:"at_bats"`
	Hits        int    `json:"hits"`
	Doubles     int    `json:"doubles"`
	Triples     int    `json:"triples"`
	HomeRuns    int    `json:"home_runs"`
	RBI         int    `json:"rbi"`
	Walks       int    `json:"walks"`
	Strikeouts  int    `json:"strikeouts"`
	StolenBases int    `json:"stolen_bases"`
}

func (h Hitter) Singles() int {
	return h.Hits - h.Doubles - h.Triples - h.HomeRuns
}

func (h Hitter) TotalBases() int {
	return h.Singles() + 2*h.Doubles + 3*h.Triples + 4*h.HomeRuns
}

func (h Hitter) Avg() float64 {
	return ratio(float64(h.Hits), float64(h.AtBats))
}

func (h Hitter) OBP() float64 {
	return ratio(float64(h.Hits+h.Walks), float64(h.AtBats+h.Walks))
}

func (h Hitter) SLG() float64 {
	return ratio(float64(h.TotalBases()), float64(h.AtBats))
}

func (h Hitter) OPS() float64 {
	return h.OBP() + h.SLG()
}

// Pitcher is one row of the pitching sheet. Innings are kept as outs.
type Pitcher struct {
	Player      string `json:"player"`
	Team        string `json:"team"`
	Games       int    `json:"games"`
	Outs        int    `json:"outs"`
	HitsAllowed int    `json:"hits_allowed"`
	Runs        int    `json:"runs"`
	EarnedRuns  int    `json:"earned_runs"`
	Walks       int    `json:"walks"`
	Strikeouts  int    `json:"strikeouts"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Saves       int    `json:"saves"`
}

// InningsPitched renders the outs in box score notation.
func (p Pitcher) InningsPitched() string {
	return fmt.Sprintf("%d.%d", p.Outs/3, p.Outs%3)
}

func (p Pitcher) innings() float64 {
	return float64(p.Outs) / 3
}

func (p Pitcher) ERA() float64 {
	return ratio(float64(p.EarnedRuns*InningsPerGame), p.innings())
}

func (p Pitcher) WHIP() float64 {
	return ratio(float64(p.Walks+p.HitsAllowed), p.innings())
}

func (p Pitcher) K9() float64 {
	return ratio(float64(p.Strikeouts*InningsPerGame), p.innings())
}

// Fielder is one row of the fielding sheet.
type Fielder struct {
	Player  string `json:"player"`
	Team    string `json:"team"`
	Games   int    `json:"games"`
	Putouts int    `json:"putouts"`
	Assists int    `json:"assists"`
	Errors  int    `json:"errors"`
}

// FieldingPct returns (PO + A) / (PO + A + E).
func (f Fielder) FieldingPct() float64 {
	chances := f.Putouts + f.Assists + f.Errors
	return ratio(float64(f.Putouts+f.Assists), float64(chances))
}

func parseHitting(rows sheetcache.Rows) []Hitter {
	hitters := make([]Hitter, 0, len(rows))
	for i := range rows {
		player := cellString(rows, i, 0)
		if player == "" {
			continue
		}
		hitters = append(hitters, Hitter{
			Player:      player,
			Team:        cellString(rows, i, 1),
			Games:       cellInt(rows, i, 2),
			AtBats:      cellInt(rows, i, 3),
			Hits:        cellInt(rows, i, 4),
			Doubles:     cellInt(rows, i, 5),
			Triples:     cellInt(rows, i, 6),
			HomeRuns:    cellInt(rows, i, 7),
			RBI:         cellInt(rows, i, 8),
			Walks:       cellInt(rows, i, 9),
			Strikeouts:  cellInt(rows, i, 10),
			StolenBases: cellInt(rows, i, 11),
		})
	}
	return hitters
}

func parsePitching(rows sheetcache.Rows) []Pitcher {
	pitchers := make([]Pitcher, 0, len(rows))
	for i := range rows {
		player := cellString(rows, i, 0)
		if player == "" {
			continue
		}
		pitchers = append(pitchers, Pitcher{
			Player:      player,
			Team:        cellString(rows, i, 1),
			Games:       cellInt(rows, i, 2),
			Outs:        cellOuts(rows, i, 3),
			HitsAllowed: cellInt(rows, i, 4),
			Runs:        cellInt(rows, i, 5),
			EarnedRuns:  cellInt(rows, i, 6),
			Walks:       cellInt(rows, i, 7),
			Strikeouts:  cellInt(rows, i, 8),
			Wins:        cellInt(rows, i, 9),
			Losses:      cellInt(rows, i, 10),
			Saves:       cellInt(rows, i, 11),
		})
	}
	return pitchers
}

func parseFielding(rows sheetcache.Rows) []Fielder {
	fielders := make([]Fielder, 0, len(rows))
	for i := range rows {
		player := cellString(rows, i, 0)
		if player == "" {
			continue
		}
		fielders = append(fielders, Fielder{
			Player:  player,
			Team:    cellString(rows, i, 1),
			Games:   cellInt(rows, i, 2),
			Putouts: cellInt(rows, i, 3),
			Assists: cellInt(rows, i, 4),
			Errors:  cellInt(rows, i, 5),
		})
	}
	return fielders
}
