package league

import "github.com/creativecreature/sheetcache"

// The ranges skip the header row of every sheet.
var (
	StandingsRange  = sheetcache.NewRange("Standings", "A2:G")
	HittingRange    = sheetcache.NewRange("Hitting", "A2:L")
	PitchingRange   = sheetcache.NewRange("Pitching", "A2:L")
	FieldingRange   = sheetcache.NewRange("Fielding", "A2:F")
	ScheduleRange   = sheetcache.NewRange("Schedule", "A2:G")
	RostersRange    = sheetcache.NewRange("Rosters", "A2:D")
	AttributesRange = sheetcache.NewRange("Attributes", "A2:G")
	ChemistryRange  = sheetcache.NewRange("Chemistry", "A2:C")
)
