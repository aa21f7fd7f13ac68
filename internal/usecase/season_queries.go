package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/match"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/feed"
	"github.com/sourcegraph/conc/iter"
)

// TableInput is the loosely typed form of season.TableQuery shared by the
// HTTP and CLI surfaces. Empty fields take their defaults.
type TableInput struct {
	Kind     string
	Venue    string
	Sequence string
	Current  string
}

func (in TableInput) Query() (season.TableQuery, error) {
	kind, err := season.ParseTableKind(in.Kind)
	if err != nil {
		return season.TableQuery{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	venue, err := season.ParseVenue(in.Venue)
	if err != nil {
		return season.TableQuery{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	q := season.TableQuery{Kind: kind, Venue: venue}
	if kind != season.TableSequence {
		return q, nil
	}

	if strings.TrimSpace(in.Sequence) == "" {
		return season.TableQuery{}, fmt.Errorf("%w: sequence is required for sequence tables", ErrInvalidInput)
	}
	if q.Sequence, err = season.ParseSequence(in.Sequence); err != nil {
		return season.TableQuery{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	q.Current = true
	if raw := strings.TrimSpace(in.Current); raw != "" {
		if q.Current, err = strconv.ParseBool(raw); err != nil {
			return season.TableQuery{}, fmt.Errorf("%w: current must be a boolean", ErrInvalidInput)
		}
	}
	return q, nil
}

type Table struct {
	LeagueID string
	Query    season.TableQuery
	Rows     []season.Standing
}

func (s *SeasonService) Table(ctx context.Context, leagueID string, in TableInput) (Table, error) {
	q, err := in.Query()
	if err != nil {
		return Table{}, err
	}
	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return Table{}, err
	}
	rows, err := snapshot.Table(q)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return Table{LeagueID: normalizeLeagueID(leagueID), Query: q, Rows: rows}, nil
}

// Overview is the landing view of a league: the overall, home, away and form
// tables built side by side.
type Overview struct {
	LeagueID string
	Overall  []season.Standing
	Home     []season.Standing
	Away     []season.Standing
	Form     []season.Standing
}

func (s *SeasonService) Overview(ctx context.Context, leagueID string) (Overview, error) {
	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return Overview{}, err
	}

	queries := []season.TableQuery{
		{Kind: season.TableStandard, Venue: season.VenueBoth},
		{Kind: season.TableStandard, Venue: season.VenueHome},
		{Kind: season.TableStandard, Venue: season.VenueAway},
		{Kind: season.TableForm, Venue: season.VenueBoth},
	}
	tables, err := iter.MapErr(queries, func(q *season.TableQuery) ([]season.Standing, error) {
		return snapshot.Table(*q)
	})
	if err != nil {
		return Overview{}, fmt.Errorf("build overview tables: %w", err)
	}

	return Overview{
		LeagueID: normalizeLeagueID(leagueID),
		Overall:  tables[0],
		Home:     tables[1],
		Away:     tables[2],
		Form:     tables[3],
	}, nil
}

type Summary struct {
	LeagueID           string
	Teams              int
	Dates              int
	MostRecent         time.Time
	PointsRule         season.PointsRule
	Stats              season.Stats
	AverageAttendance  int
	HighestPointsTotal int
	PrizeZones         []string
	RelegationZones    []string
	Leader             string
}

func (s *SeasonService) Summary(ctx context.Context, leagueID string) (Summary, error) {
	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return Summary{}, err
	}

	out := Summary{
		LeagueID:           normalizeLeagueID(leagueID),
		Teams:              snapshot.TeamCount(),
		Dates:              len(snapshot.Dates()),
		PointsRule:         snapshot.PointsRule(),
		Stats:              snapshot.Stats(),
		AverageAttendance:  snapshot.AverageAttendance(),
		HighestPointsTotal: snapshot.HighestPointsTotal(),
		PrizeZones:         snapshot.PrizeZoneNames(),
		RelegationZones:    snapshot.RelegationZoneNames(),
	}
	if recent, ok := snapshot.MostRecentDate(); ok {
		out.MostRecent = recent
	}
	if table := snapshot.StandardLeagueTable(season.VenueBoth); len(table) > 0 {
		out.Leader = table[0].Team
	}
	return out, nil
}

type TeamVenueRecord struct {
	Venue      season.Venue
	Tally      season.Tally
	Points     int
	Form       string
	FormStars  int
	Notes      []string
	KeyResults season.KeyResults
	Current    map[season.SequenceType]int
	Best       map[season.SequenceType]int
}

type TeamAttendance struct {
	Average   int
	Highest   int
	Lowest    int
	Aggregate int
}

type TeamDetail struct {
	LeagueID   string
	Name       string
	Position   int
	Zone       string
	Records    []TeamVenueRecord
	Attendance TeamAttendance
}

func (s *SeasonService) team(ctx context.Context, leagueID, name string) (*season.Season, *season.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return nil, nil, err
	}
	team, ok := snapshot.Team(name)
	if !ok {
		return nil, nil, fmt.Errorf("%w: team=%s", ErrNotFound, name)
	}
	return snapshot, team, nil
}

func (s *SeasonService) Teams(ctx context.Context, leagueID string) ([]string, error) {
	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return snapshot.TeamNames(), nil
}

func (s *SeasonService) Team(ctx context.Context, leagueID, name string) (TeamDetail, error) {
	snapshot, team, err := s.team(ctx, leagueID, name)
	if err != nil {
		return TeamDetail{}, err
	}

	rule := snapshot.PointsRule()
	out := TeamDetail{
		LeagueID: normalizeLeagueID(leagueID),
		Name:     team.Name(),
		Position: team.LastPosition(),
		Zone:     snapshot.ZoneName(snapshot.ZoneForPosition(team.LastPosition())),
		Attendance: TeamAttendance{
			Average:   team.Attendance(season.AttendanceAverage),
			Highest:   team.Attendance(season.AttendanceHighest),
			Lowest:    team.Attendance(season.AttendanceLowest),
			Aggregate: team.Attendance(season.AttendanceAggregate),
		},
	}
	for _, venue := range []season.Venue{season.VenueBoth, season.VenueHome, season.VenueAway} {
		record := team.Record(venue)
		item := TeamVenueRecord{
			Venue:      venue,
			Tally:      record.Tally(),
			Points:     record.Points(rule),
			Form:       record.Form().String(),
			FormStars:  record.Form().Stars(rule),
			Notes:      team.Notes(venue),
			KeyResults: record.KeyResults(),
			Current:    make(map[season.SequenceType]int),
			Best:       make(map[season.SequenceType]int),
		}
		for _, seq := range season.SequenceTypes() {
			item.Current[seq] = record.Sequence(seq, true)
			item.Best[seq] = record.Sequence(seq, false)
		}
		out.Records = append(out.Records, item)
	}
	return out, nil
}

func (s *SeasonService) TeamPositions(ctx context.Context, leagueID, name string) ([]season.Position, error) {
	_, team, err := s.team(ctx, leagueID, name)
	if err != nil {
		return nil, err
	}
	return team.Positions(), nil
}

// TeamPoints returns the cumulative points series with the season's
// highest total, which scales a points graph.
func (s *SeasonService) TeamPoints(ctx context.Context, leagueID, name string) ([]int, int, error) {
	snapshot, team, err := s.team(ctx, leagueID, name)
	if err != nil {
		return nil, 0, err
	}
	return team.PointsSeries(snapshot.PointsRule()), snapshot.HighestPointsTotal(), nil
}

func (s *SeasonService) Dates(ctx context.Context, leagueID string) ([]time.Time, error) {
	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return snapshot.Dates(), nil
}

// ParseDate accepts the feed's ddMMyyyy form and ISO yyyy-mm-dd.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{feed.DateLayout, time.DateOnly} {
		if len(value) != len(layout) {
			continue
		}
		if d, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q must be ddMMyyyy or yyyy-mm-dd", ErrInvalidInput, value)
}

// Results returns the results of date, or of the most recent date when date
// is empty.
func (s *SeasonService) Results(ctx context.Context, leagueID, date string) (time.Time, []match.Result, error) {
	var day time.Time
	if strings.TrimSpace(date) != "" {
		parsed, err := ParseDate(date)
		if err != nil {
			return time.Time{}, nil, err
		}
		day = parsed
	}

	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return time.Time{}, nil, err
	}
	if day.IsZero() {
		recent, ok := snapshot.MostRecentDate()
		if !ok {
			return time.Time{}, []match.Result{}, nil
		}
		day = recent
	}
	return day, snapshot.Results(day), nil
}

func (s *SeasonService) Attendances(ctx context.Context, leagueID, stat string) (season.AttendanceStat, []season.TeamAttendance, error) {
	parsed, err := season.ParseAttendanceStat(stat)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return 0, nil, err
	}
	return parsed, snapshot.AttendanceTable(parsed), nil
}

func (s *SeasonService) HighestAttendances(ctx context.Context, leagueID string) ([]match.Result, error) {
	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return snapshot.HighestAttendances(), nil
}

func (s *SeasonService) LowestAttendances(ctx context.Context, leagueID string) ([]match.Result, error) {
	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return snapshot.LowestAttendances(), nil
}

type SeasonRecords struct {
	BiggestHomeWins   []match.Result
	BiggestAwayWins   []match.Result
	HighestAggregates []match.Result
}

func (s *SeasonService) Records(ctx context.Context, leagueID string) (SeasonRecords, error) {
	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return SeasonRecords{}, err
	}
	return SeasonRecords{
		BiggestHomeWins:   snapshot.BiggestHomeWins(),
		BiggestAwayWins:   snapshot.BiggestAwayWins(),
		HighestAggregates: snapshot.HighestAggregates(),
	}, nil
}
