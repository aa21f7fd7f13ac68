package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/feed"
)

func premierService() *SeasonService {
	return newTestService(LeagueFeed{ID: "premier", Source: feed.StaticSource{Label: "premier.txt", Lines: premierLines}})
}

func TestTableInput_Query(t *testing.T) {
	t.Parallel()

	q, err := TableInput{}.Query()
	if err != nil {
		t.Fatalf("default query: %v", err)
	}
	if q.Kind != season.TableStandard || q.Venue != season.VenueBoth {
		t.Fatalf("unexpected default query: %+v", q)
	}

	q, err = TableInput{Kind: "sequence", Venue: "home", Sequence: "unbeaten"}.Query()
	if err != nil {
		t.Fatalf("sequence query: %v", err)
	}
	if q.Sequence != season.SequenceUnbeaten || !q.Current || q.Venue != season.VenueHome {
		t.Fatalf("unexpected sequence query: %+v", q)
	}

	q, err = TableInput{Kind: "sequence", Sequence: "wins", Current: "false"}.Query()
	if err != nil {
		t.Fatalf("best sequence query: %v", err)
	}
	if q.Current {
		t.Fatalf("expected best sequence query")
	}

	invalid := map[string]TableInput{
		"kind":             {Kind: "alphabetical"},
		"venue":            {Venue: "neutral"},
		"missing sequence": {Kind: "sequence"},
		"bad sequence":     {Kind: "sequence", Sequence: "hat-tricks"},
		"bad current":      {Kind: "sequence", Sequence: "wins", Current: "sometimes"},
	}
	for name, in := range invalid {
		t.Run(name, func(t *testing.T) {
			if _, err := in.Query(); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSeasonService_Table(t *testing.T) {
	t.Parallel()

	service := premierService()
	table, err := service.Table(context.Background(), "premier", TableInput{})
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if len(table.Rows) != 4 {
		t.Fatalf("unexpected rows: %d", len(table.Rows))
	}
	// Crewe and Ashford share points and goal difference; Crewe scored more.
	if table.Rows[0].Team != "Crewe" || table.Rows[0].Points != 4 || table.Rows[0].Zone != 1 {
		t.Fatalf("unexpected leader row: %+v", table.Rows[0])
	}
	if table.Rows[2].Team != "Dover" || table.Rows[2].Zone != -1 {
		t.Fatalf("unexpected relegation row: %+v", table.Rows[2])
	}
	if table.Rows[3].Team != "Barnet" || table.Rows[3].Position != 4 || table.Rows[3].Zone != 0 {
		t.Fatalf("unexpected bottom row: %+v", table.Rows[3])
	}

	if _, err := service.Table(context.Background(), "premier", TableInput{Kind: "nope"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.Table(context.Background(), "missing", TableInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSeasonService_OverviewAndSummary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := premierService()

	overview, err := service.Overview(ctx, "premier")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.Overall) != 4 || len(overview.Home) != 4 || len(overview.Away) != 4 || len(overview.Form) != 4 {
		t.Fatalf("unexpected overview sizes: %+v", overview)
	}
	if overview.Home[0].Team != "Ashford" {
		t.Fatalf("unexpected home leader: %s", overview.Home[0].Team)
	}

	summary, err := service.Summary(ctx, "premier")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Teams != 4 || summary.Dates != 2 || summary.Stats.Matches != 4 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Leader != "Crewe" || summary.HighestPointsTotal != 4 {
		t.Fatalf("unexpected leader: %s %d", summary.Leader, summary.HighestPointsTotal)
	}
	if summary.AverageAttendance != 3067 {
		t.Fatalf("unexpected average attendance: %d", summary.AverageAttendance)
	}
	if !summary.MostRecent.Equal(time.Date(2024, time.August, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected most recent date: %s", summary.MostRecent)
	}
	if len(summary.PrizeZones) != 1 || summary.PrizeZones[0] != "Champions" {
		t.Fatalf("unexpected prize zones: %+v", summary.PrizeZones)
	}
}

func TestSeasonService_TeamDetail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := premierService()

	detail, err := service.Team(ctx, "premier", "Crewe")
	if err != nil {
		t.Fatalf("team: %v", err)
	}
	if detail.Position != 1 || detail.Zone != "Champions" {
		t.Fatalf("unexpected position: %d %q", detail.Position, detail.Zone)
	}
	if len(detail.Records) != 3 {
		t.Fatalf("unexpected records: %d", len(detail.Records))
	}
	overall := detail.Records[0]
	if overall.Venue != season.VenueBoth || overall.Points != 4 || overall.Form != "----DW" {
		t.Fatalf("unexpected overall record: %+v", overall)
	}
	if overall.Current[season.SequenceUnbeaten] != 2 || overall.Best[season.SequenceWins] != 1 {
		t.Fatalf("unexpected sequences: %+v %+v", overall.Current, overall.Best)
	}
	if overall.KeyResults.BiggestWin == nil || overall.KeyResults.BiggestWin.HomeTeam != "Barnet" {
		t.Fatalf("unexpected biggest win: %+v", overall.KeyResults.BiggestWin)
	}
	if detail.Attendance.Highest != 2300 {
		t.Fatalf("unexpected attendance: %+v", detail.Attendance)
	}

	if _, err := service.Team(ctx, "premier", "Everton"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.Team(ctx, "premier", " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeasonService_TeamSeries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := premierService()

	positions, err := service.TeamPositions(ctx, "premier", "Crewe")
	if err != nil {
		t.Fatalf("positions: %v", err)
	}
	if len(positions) != 2 || positions[0].Position != 2 || positions[1].Position != 1 {
		t.Fatalf("unexpected positions: %+v", positions)
	}

	points, highest, err := service.TeamPoints(ctx, "premier", "Dover")
	if err != nil {
		t.Fatalf("points: %v", err)
	}
	if len(points) != 2 || points[0] != 1 || points[1] != 2 || highest != 4 {
		t.Fatalf("unexpected points series: %+v highest=%d", points, highest)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, time.August, 10, 0, 0, 0, 0, time.UTC)
	for _, value := range []string{"10082024", "2024-08-10", " 10082024 "} {
		got, err := ParseDate(value)
		if err != nil {
			t.Fatalf("parse %q: %v", value, err)
		}
		if !got.Equal(want) {
			t.Fatalf("unexpected date for %q: %s", value, got)
		}
	}
	for _, value := range []string{"", "1008202", "2024/08/10", "32082024"} {
		if _, err := ParseDate(value); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q, got %v", value, err)
		}
	}
}

func TestSeasonService_Results(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := premierService()

	day, results, err := service.Results(ctx, "premier", "")
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if day.Day() != 10 || len(results) != 2 {
		t.Fatalf("unexpected latest results: %s %+v", day, results)
	}

	day, results, err = service.Results(ctx, "premier", "2024-08-03")
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if day.Day() != 3 || len(results) != 2 {
		t.Fatalf("unexpected results: %s %+v", day, results)
	}

	_, results, err = service.Results(ctx, "premier", "01012024")
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results on a date without matches, got %+v", results)
	}

	if _, _, err := service.Results(ctx, "premier", "yesterday"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeasonService_AttendancesAndRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := premierService()

	stat, rows, err := service.Attendances(ctx, "premier", "highest")
	if err != nil {
		t.Fatalf("attendances: %v", err)
	}
	if stat != season.AttendanceHighest || len(rows) == 0 || rows[0].Team != "Ashford" {
		t.Fatalf("unexpected attendance table: %v %+v", stat, rows)
	}
	if _, _, err := service.Attendances(ctx, "premier", "median"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	highest, err := service.HighestAttendances(ctx, "premier")
	if err != nil {
		t.Fatalf("highest attendances: %v", err)
	}
	if len(highest) == 0 || highest[0].Attendance != 5100 {
		t.Fatalf("unexpected highest attendances: %+v", highest)
	}
	lowest, err := service.LowestAttendances(ctx, "premier")
	if err != nil {
		t.Fatalf("lowest attendances: %v", err)
	}
	if len(lowest) == 0 || lowest[0].Attendance != 1800 {
		t.Fatalf("unexpected lowest attendances: %+v", lowest)
	}

	records, err := service.Records(ctx, "premier")
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if len(records.BiggestHomeWins) == 0 || records.BiggestHomeWins[0].HomeTeam != "Ashford" {
		t.Fatalf("unexpected biggest home wins: %+v", records.BiggestHomeWins)
	}
	if len(records.BiggestAwayWins) == 0 || records.BiggestAwayWins[0].AwayTeam != "Crewe" {
		t.Fatalf("unexpected biggest away wins: %+v", records.BiggestAwayWins)
	}
	if len(records.HighestAggregates) == 0 || records.HighestAggregates[0].Aggregate() != 4 {
		t.Fatalf("unexpected aggregates: %+v", records.HighestAggregates)
	}
}
