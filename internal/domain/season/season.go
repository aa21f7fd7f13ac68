package season

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/match"
)

// Stats are season-wide totals over every ingested result.
type Stats struct {
	Matches               int
	HomeWins              int
	AwayWins              int
	ScoreDraws            int
	NoScoreDraws          int
	HomeGoals             int
	AwayGoals             int
	Cleansheets           int
	AggregateAttendance   int
	MatchesWithAttendance int
}

func (s *Stats) add(r match.Result) {
	s.Matches++
	switch {
	case r.IsDraw() && r.HomeGoals == 0:
		s.NoScoreDraws++
		s.Cleansheets += 2
	case r.IsDraw():
		s.ScoreDraws++
	default:
		if r.IsHomeWin() {
			s.HomeWins++
		} else {
			s.AwayWins++
		}
		if r.HomeGoals == 0 || r.AwayGoals == 0 {
			s.Cleansheets++
		}
	}
	s.HomeGoals += r.HomeGoals
	s.AwayGoals += r.AwayGoals
	if r.HasAttendance() {
		s.AggregateAttendance += r.Attendance
		s.MatchesWithAttendance++
	}
}

func (s Stats) Draws() int {
	return s.ScoreDraws + s.NoScoreDraws
}

func (s Stats) Goals() int {
	return s.HomeGoals + s.AwayGoals
}

// AverageAttendance is rounded to the nearest whole crowd over matches with a
// reported attendance.
func (s Stats) AverageAttendance() int {
	return roundedAverage(s.AggregateAttendance, s.MatchesWithAttendance)
}

// Season is a fully processed league season. It is immutable once built and
// safe for concurrent readers.
type Season struct {
	rule          PointsRule
	teams         map[string]*Team
	names         []string
	dates         []time.Time
	resultsByDate map[time.Time][]match.Result
	stats         Stats

	biggestHomeWins   []match.Result
	biggestAwayWins   []match.Result
	highestAggregates []match.Result
	topAttendances    []match.Result
	bottomAttendances []match.Result

	prizeZones         []Zone
	relegationZones    []Zone
	zones              []int
	highestPointsTotal int
}

// TeamNames returns every team name in alphabetical order.
func (s *Season) TeamNames() []string {
	return slices.Clone(s.names)
}

func (s *Season) TeamCount() int {
	return len(s.teams)
}

func (s *Season) Team(name string) (*Team, bool) {
	t, ok := s.teams[name]
	return t, ok
}

// Dates returns every match date, most recent first.
func (s *Season) Dates() []time.Time {
	return slices.Clone(s.dates)
}

func (s *Season) MostRecentDate() (time.Time, bool) {
	if len(s.dates) == 0 {
		return time.Time{}, false
	}
	return s.dates[0], true
}

// Results returns the results played on date in feed order.
func (s *Season) Results(date time.Time) []match.Result {
	return slices.Clone(s.resultsByDate[match.Day(date)])
}

func (s *Season) Table(q TableQuery) ([]Standing, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.buildTable(q), nil
}

// StandardLeagueTable orders teams by points.
func (s *Season) StandardLeagueTable(venue Venue) []Standing {
	return s.buildTable(TableQuery{Kind: TableStandard, Venue: venue})
}

// AverageLeagueTable orders teams by points per game.
func (s *Season) AverageLeagueTable(venue Venue) []Standing {
	return s.buildTable(TableQuery{Kind: TableAverage, Venue: venue})
}

// PointsDroppedTable orders teams by fewest points dropped.
func (s *Season) PointsDroppedTable(venue Venue) []Standing {
	return s.buildTable(TableQuery{Kind: TablePointsDropped, Venue: venue})
}

// FormTable orders teams by points over their form window.
func (s *Season) FormTable(venue Venue) []Standing {
	return s.buildTable(TableQuery{Kind: TableForm, Venue: venue})
}

// SequenceTable orders teams by the running (current) or longest streak.
func (s *Season) SequenceTable(seq SequenceType, venue Venue, current bool) []Standing {
	return s.buildTable(TableQuery{Kind: TableSequence, Venue: venue, Sequence: seq, Current: current})
}

// TeamAttendance is one row of an attendance table.
type TeamAttendance struct {
	Position int
	Team     string
	Value    int
}

// AttendanceTable orders teams by a home crowd figure, highest first.
func (s *Season) AttendanceTable(stat AttendanceStat) []TeamAttendance {
	out := make([]TeamAttendance, 0, len(s.teams))
	for _, team := range s.teams {
		out = append(out, TeamAttendance{Team: team.Name(), Value: team.Attendance(stat)})
	}
	slices.SortFunc(out, func(a, b TeamAttendance) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		if c := strings.Compare(strings.ToLower(a.Team), strings.ToLower(b.Team)); c != 0 {
			return c
		}
		return strings.Compare(a.Team, b.Team)
	})
	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

func (s *Season) HighestAttendances() []match.Result {
	return slices.Clone(s.topAttendances)
}

func (s *Season) LowestAttendances() []match.Result {
	return slices.Clone(s.bottomAttendances)
}

func (s *Season) BiggestHomeWins() []match.Result {
	return slices.Clone(s.biggestHomeWins)
}

func (s *Season) BiggestAwayWins() []match.Result {
	return slices.Clone(s.biggestAwayWins)
}

func (s *Season) HighestAggregates() []match.Result {
	return slices.Clone(s.highestAggregates)
}

func (s *Season) Stats() Stats {
	return s.stats
}

func (s *Season) AverageAttendance() int {
	return s.stats.AverageAttendance()
}

// HighestPointsTotal is the leader's points after the most recent date.
func (s *Season) HighestPointsTotal() int {
	return s.highestPointsTotal
}

func (s *Season) PointsRule() PointsRule {
	return s.rule
}

func (s *Season) PrizeZoneNames() []string {
	return zoneNames(s.prizeZones)
}

func (s *Season) RelegationZoneNames() []string {
	return zoneNames(s.relegationZones)
}

// ZoneForPosition returns the zone id of a 1-based position: positive for a
// prize zone, negative for a relegation zone, 0 for none or out of range.
func (s *Season) ZoneForPosition(position int) int {
	if position < 1 || position > len(s.zones) {
		return 0
	}
	return s.zones[position-1]
}

// ZoneName resolves a zone id to its configured name.
func (s *Season) ZoneName(id int) string {
	switch {
	case id > 0 && id <= len(s.prizeZones):
		return s.prizeZones[id-1].Name
	case id < 0 && -id <= len(s.relegationZones):
		return s.relegationZones[-id-1].Name
	default:
		return ""
	}
}
