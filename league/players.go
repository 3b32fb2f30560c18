package league

import (
	"strings"

	"github.com/creativecreature/sheetcache"
)

// RosterSpot is one row of the rosters sheet.
type RosterSpot struct {
	Team     string `json:"team"`
	Player   string `json:"player"`
	Position string `json:"position,omitempty"`
	Captain  bool   `json:"captain,omitempty"`
}

// Attributes are the player ratings, on a 0-10 scale.
type Attributes struct {
	Player   string `json:"player"`
	Team     string `json:"team"`
	Power    int    `json:"power"`
	Contact  int    `json:"contact"`
	Speed    int    `json:"speed"`
	Fielding int    `json:"fielding"`
	Arm      int    `json:"arm"`
}

// Overall is the rounded mean of the five ratings.
func (a Attributes) Overall() int {
	return (a.Power + a.Contact + a.Speed + a.Fielding + a.Arm + 2) / 5
}

type ChemistryKind string

const (
	ChemistryPositive ChemistryKind = "positive"
	ChemistryNegative ChemistryKind = "negative"
)

// Chemistry is a relationship between two players. It is symmetric.
type Chemistry struct {
	PlayerA string        `json:"player_a"`
	PlayerB string        `json:"player_b"`
	Kind    ChemistryKind `json:"kind"`
}

// Other returns the other side of the relationship, or "" if player isn't part of it.
func (c Chemistry) Other(player string) string {
	switch {
	case sameName(c.PlayerA, player):
		return c.PlayerB
	case sameName(c.PlayerB, player):
		return c.PlayerA
	default:
		return ""
	}
}

func parseRosters(rows sheetcache.Rows) []RosterSpot {
	spots := make([]RosterSpot, 0, len(rows))
	for i := range rows {
		team, player := cellString(rows, i, 0), cellString(rows, i, 1)
		if team == "" || player == "" {
			continue
		}
		spots = append(spots, RosterSpot{
			Team:     team,
			Player:   player,
			Position: cellString(rows, i, 2),
			Captain:  cellBool(rows, i, 3),
		})
	}
	return spots
}

func parseAttributes(rows sheetcache.Rows) []Attributes {
	attributes := make([]Attributes, 0, len(rows))
	for i := range rows {
		player := cellString(rows, i, 0)
		if player == "" {
			continue
		}
		attributes = append(attributes, Attributes{
			Player:   player,
			Team:     cellString(rows, i, 1),
			Power:    cellInt(rows, i, 2),
			Contact:  cellInt(rows, i, 3),
			Speed:    cellInt(rows, i, 4),
			Fielding: cellInt(rows, i, 5),
			Arm:      cellInt(rows, i, 6),
		})
	}
	return attributes
}

// parseChemistry reads Player A, Player B, Kind. Anything that doesn't look
// like a negative relationship is treated as positive.
func parseChemistry(rows sheetcache.Rows) []Chemistry {
	links := make([]Chemistry, 0, len(rows))
	for i := range rows {
		a, b := cellString(rows, i, 0), cellString(rows, i, 1)
		if a == "" || b == "" {
			continue
		}
		kind := ChemistryPositive
		switch strings.ToLower(cellString(rows, i, 2)) {
		case "negative", "bad", "-", "rival":
			kind = ChemistryNegative
		}
		links = append(links, Chemistry{PlayerA: a, PlayerB: b, Kind: kind})
	}
	return links
}
