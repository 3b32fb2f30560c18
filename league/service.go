// Package league turns the raw rows of the league spreadsheet into
// standings, stats, schedules, rosters and player profiles.
package league

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/creativecreature/sheetcache"
)

// Cache is the part of *sheetcache.Client that the service needs.
type Cache interface {
	GetRange(ctx context.Context, r sheetcache.Range) (sheetcache.Rows, error)
	MarkRefreshed()
}

// Service answers league questions from the cached spreadsheet. Every
// operation that succeeds marks the cache as refreshed.
type Service struct {
	cache Cache
}

func NewService(cache Cache) *Service {
	return &Service{cache: cache}
}

func (s *Service) load(ctx context.Context, r sheetcache.Range) (sheetcache.Rows, error) {
	rows, err := s.cache.GetRange(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("league: loading %s: %w", r, err)
	}
	return rows, nil
}

// loadAll loads the ranges concurrently. The results are in the same order
// as the ranges.
func (s *Service) loadAll(ctx context.Context, ranges ...sheetcache.Range) ([]sheetcache.Rows, error) {
	results := make([]sheetcache.Rows, len(ranges))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		eg.Go(func() error {
			rows, err := s.load(egCtx, r)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Standings returns the teams ordered by win percentage.
func (s *Service) Standings(ctx context.Context) ([]TeamStanding, error) {
	rows, err := s.load(ctx, StandingsRange)
	if err != nil {
		return nil, err
	}
	standings := parseStandings(rows)
	s.cache.MarkRefreshed()
	return standings, nil
}

// Hitting returns the hitting stats in sheet order.
func (s *Service) Hitting(ctx context.Context) ([]Hitter, error) {
	rows, err := s.load(ctx, HittingRange)
	if err != nil {
		return nil, err
	}
	hitters := parseHitting(rows)
	s.cache.MarkRefreshed()
	return hitters, nil
}

// Pitching returns the pitching stats in sheet order.
func (s *Service) Pitching(ctx context.Context) ([]Pitcher, error) {
	rows, err := s.load(ctx, PitchingRange)
	if err != nil {
		return nil, err
	}
	pitchers := parsePitching(rows)
	s.cache.MarkRefreshed()
	return pitchers, nil
}

// Fielding returns the fielding stats in sheet order.
func (s *Service) Fielding(ctx context.Context) ([]Fielder, error) {
	rows, err := s.load(ctx, FieldingRange)
	if err != nil {
		return nil, err
	}
	fielders := parseFielding(rows)
	s.cache.MarkRefreshed()
	return fielders, nil
}

// Schedule returns every game. When team is not empty, only the games that
// team plays in are returned.
func (s *Service) Schedule(ctx context.Context, team string) ([]Game, error) {
	rows, err := s.load(ctx, ScheduleRange)
	if err != nil {
		return nil, err
	}
	games := parseSchedule(rows)
	if team != "" {
		filtered := games[:0]
		for _, g := range games {
			if g.Involves(team) {
				filtered = append(filtered, g)
			}
		}
		games = filtered
	}
	s.cache.MarkRefreshed()
	return games, nil
}

// Roster returns the players of a team.
func (s *Service) Roster(ctx context.Context, team string) ([]RosterSpot, error) {
	rows, err := s.load(ctx, RostersRange)
	if err != nil {
		return nil, err
	}
	var roster []RosterSpot
	for _, spot := range parseRosters(rows) {
		if sameName(spot.Team, team) {
			roster = append(roster, spot)
		}
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("%w: team %q", ErrNotFound, team)
	}
	s.cache.MarkRefreshed()
	return roster, nil
}

// Player returns everything the sheets know about a player.
func (s *Service) Player(ctx context.Context, name string) (*PlayerProfile, error) {
	profiles, err := s.profiles(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.MarkRefreshed()
	return profiles[0], nil
}

// Compare returns the profiles of two players side by side.
func (s *Service) Compare(ctx context.Context, a, b string) (*Comparison, error) {
	profiles, err := s.profiles(ctx, a, b)
	if err != nil {
		return nil, err
	}
	s.cache.MarkRefreshed()
	return newComparison(profiles[0], profiles[1]), nil
}

func (s *Service) profiles(ctx context.Context, names ...string) ([]*PlayerProfile, error) {
	results, err := s.loadAll(ctx,
		HittingRange,
		PitchingRange,
		FieldingRange,
		RostersRange,
		AttributesRange,
		ChemistryRange,
	)
	if err != nil {
		return nil, err
	}
	sheets := profileSheets{
		hitting:    parseHitting(results[0]),
		pitching:   parsePitching(results[1]),
		fielding:   parseFielding(results[2]),
		rosters:    parseRosters(results[3]),
		attributes: parseAttributes(results[4]),
		chemistry:  parseChemistry(results[5]),
	}

	profiles := make([]*PlayerProfile, 0, len(names))
	for _, name := range names {
		profile, ok := sheets.profile(name)
		if !ok {
			return nil, fmt.Errorf("%w: player %q", ErrNotFound, name)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
