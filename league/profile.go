package league

// PlayerProfile gathers a player's rows from every sheet. Sections are nil
// when the player has no row on the corresponding sheet.
type PlayerProfile struct {
	Name       string      `json:"name"`
	Team       string      `json:"team,omitempty"`
	Position   string      `json:"position,omitempty"`
	Captain    bool        `json:"captain,omitempty"`
	Hitting    *Hitter     `json:"hitting,omitempty"`
	Pitching   *Pitcher    `json:"pitching,omitempty"`
	Fielding   *Fielder    `json:"fielding,omitempty"`
	Attributes *Attributes `json:"attributes,omitempty"`
	Friends    []string    `json:"friends,omitempty"`
	Rivals     []string    `json:"rivals,omitempty"`
}

type profileSheets struct {
	hitting    []Hitter
	pitching   []Pitcher
	fielding   []Fielder
	rosters    []RosterSpot
	attributes []Attributes
	chemistry  []Chemistry
}

func (p profileSheets) profile(name string) (*PlayerProfile, bool) {
	profile := &PlayerProfile{Name: name}
	found := false

	// The roster is the authority on team and spelling, so it goes first.
	for _, spot := range p.rosters {
		if sameName(spot.Player, name) {
			profile.Name = spot.Player
			profile.Team = spot.Team
			profile.Position = spot.Position
			profile.Captain = spot.Captain
			found = true
			break
		}
	}
	for i := range p.hitting {
		if sameName(p.hitting[i].Player, name) {
			profile.Hitting = &p.hitting[i]
			profile.fill(p.hitting[i].Player, p.hitting[i].Team)
			found = true
			break
		}
	}
	for i := range p.pitching {
		if sameName(p.pitching[i].Player, name) {
			profile.Pitching = &p.pitching[i]
			profile.fill(p.pitching[i].Player, p.pitching[i].Team)
			found = true
			break
		}
	}
	for i := range p.fielding {
		if sameName(p.fielding[i].Player, name) {
			profile.Fielding = &p.fielding[i]
			profile.fill(p.fielding[i].Player, p.fielding[i].Team)
			found = true
			break
		}
	}
	for i := range p.attributes {
		if sameName(p.attributes[i].Player, name) {
			profile.Attributes = &p.attributes[i]
			profile.fill(p.attributes[i].Player, p.attributes[i].Team)
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}

	for _, link := range p.chemistry {
		other := link.Other(name)
		if other == "" {
			continue
		}
		if link.Kind == ChemistryNegative {
			profile.Rivals = append(profile.Rivals, other)
			continue
		}
		profile.Friends = append(profile.Friends, other)
	}
	return profile, true
}

// fill sets the name and team if no earlier sheet did.
func (p *PlayerProfile) fill(name, team string) {
	if p.Team == "" {
		p.Name = name
		p.Team = team
	}
}

// Comparison puts two players side by side, with the chemistry between them.
type Comparison struct {
	A         *PlayerProfile `json:"a"`
	B         *PlayerProfile `json:"b"`
	Chemistry ChemistryKind  `json:"chemistry,omitempty"`
}

func newComparison(a, b *PlayerProfile) *Comparison {
	c := &Comparison{A: a, B: b}
	for _, friend := range a.Friends {
		if sameName(friend, b.Name) {
			c.Chemistry = ChemistryPositive
		}
	}
	for _, rival := range a.Rivals {
		if sameName(rival, b.Name) {
			c.Chemistry = ChemistryNegative
		}
	}
	return c
}
