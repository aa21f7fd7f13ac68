package season

import (
	"slices"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-stats/internal/domain/match"
	"github.com/riskibarqy/football-stats/internal/platform/ranking"
)

const (
	keyResultCount  = 5
	attendanceCount = 20
)

// Builder accumulates a results feed and produces an immutable Season.
// Results must arrive in non-decreasing date order. A Builder is single-use
// and not safe for concurrent use.
type Builder struct {
	rule          PointsRule
	teams         map[string]*Team
	dates         []time.Time
	resultsByDate map[time.Time][]match.Result
	stats         Stats

	biggestHomeWins   *ranking.Set[match.Result]
	biggestAwayWins   *ranking.Set[match.Result]
	highestAggregates *ranking.Set[match.Result]
	topAttendances    *ranking.Set[match.Result]
	bottomAttendances *ranking.Set[match.Result]

	prizeZones      []Zone
	relegationZones []Zone
	built           bool
}

func NewBuilder() *Builder {
	return &Builder{
		rule:              DefaultPointsRule(),
		teams:             make(map[string]*Team),
		resultsByDate:     make(map[time.Time][]match.Result),
		biggestHomeWins:   ranking.New(keyResultCount, match.ByMargin),
		biggestAwayWins:   ranking.New(keyResultCount, match.ByMargin),
		highestAggregates: ranking.New(keyResultCount, match.ByAggregate),
		topAttendances:    ranking.New(attendanceCount, match.ByAttendance),
		bottomAttendances: ranking.New(attendanceCount, match.ByLowestAttendance),
	}
}

// SetPointsRule replaces the default 3/1 rule. It applies to every table of
// the season regardless of where it appears in the feed.
func (b *Builder) SetPointsRule(rule PointsRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	b.rule = rule
	return nil
}

// AddResult records r against its date and updates the season-wide totals.
// Team records are only updated by Build.
func (b *Builder) AddResult(r match.Result) error {
	if b.built {
		return ErrBuilt
	}
	r.Date = match.Day(r.Date)
	if err := r.Validate(); err != nil {
		return err
	}
	if n := len(b.dates); n > 0 {
		latest := b.dates[n-1]
		if r.Date.Before(latest) {
			return crerr.WithStack(&ChronologyError{Date: r.Date, Latest: latest})
		}
	}

	if _, ok := b.teams[r.HomeTeam]; !ok {
		b.teams[r.HomeTeam] = newTeam(r.HomeTeam)
	}
	if _, ok := b.teams[r.AwayTeam]; !ok {
		b.teams[r.AwayTeam] = newTeam(r.AwayTeam)
	}

	if _, ok := b.resultsByDate[r.Date]; !ok {
		b.dates = append(b.dates, r.Date)
	}
	b.resultsByDate[r.Date] = append(b.resultsByDate[r.Date], r)

	b.stats.add(r)
	switch {
	case r.IsHomeWin():
		b.biggestHomeWins.Add(r)
	case r.IsAwayWin():
		b.biggestAwayWins.Add(r)
	}
	b.highestAggregates.Add(r)
	if r.HasAttendance() {
		b.topAttendances.Add(r)
		b.bottomAttendances.Add(r)
	}
	return nil
}

// AdjustPoints adds amount (negative for a deduction) to a team's overall
// record. The team must already have appeared in a result.
func (b *Builder) AdjustPoints(team string, amount int) error {
	if b.built {
		return ErrBuilt
	}
	t, ok := b.teams[team]
	if !ok {
		return crerr.WithStack(&UnknownTeamError{Team: team})
	}
	t.adjust(amount)
	return nil
}

func (b *Builder) AddPrizeZone(start, end int, name string) error {
	z := Zone{Start: start, End: end, Name: name}
	if err := z.Validate(); err != nil {
		return err
	}
	b.prizeZones = append(b.prizeZones, z)
	return nil
}

func (b *Builder) AddRelegationZone(start, end int, name string) error {
	z := Zone{Start: start, End: end, Name: name}
	if err := z.Validate(); err != nil {
		return err
	}
	b.relegationZones = append(b.relegationZones, z)
	return nil
}

// Build applies every result date by date, snapshots league positions after
// each date and returns the finished season.
func (b *Builder) Build() (*Season, error) {
	if b.built {
		return nil, ErrBuilt
	}
	b.built = true

	s := &Season{
		rule:              b.rule,
		teams:             b.teams,
		resultsByDate:     b.resultsByDate,
		stats:             b.stats,
		biggestHomeWins:   b.biggestHomeWins.Items(),
		biggestAwayWins:   b.biggestAwayWins.Items(),
		highestAggregates: b.highestAggregates.Items(),
		topAttendances:    b.topAttendances.Items(),
		bottomAttendances: b.bottomAttendances.Items(),
		prizeZones:        slices.Clone(b.prizeZones),
		relegationZones:   slices.Clone(b.relegationZones),
	}

	standard := TableQuery{Kind: TableStandard, Venue: VenueBoth}
	for i, date := range b.dates {
		for _, r := range b.resultsByDate[date] {
			s.teams[r.HomeTeam].apply(r)
			s.teams[r.AwayTeam].apply(r)
		}
		table := s.buildTable(standard)
		for _, row := range table {
			s.teams[row.Team].addPosition(date, row.Position)
		}
		if i == len(b.dates)-1 && len(table) > 0 {
			s.highestPointsTotal = table[0].Points
		}
	}

	s.dates = slices.Clone(b.dates)
	slices.Reverse(s.dates)

	s.names = make([]string, 0, len(s.teams))
	for name := range s.teams {
		s.names = append(s.names, name)
	}
	slices.Sort(s.names)

	s.zones = expandZones(len(s.teams), s.prizeZones, s.relegationZones)
	return s, nil
}
