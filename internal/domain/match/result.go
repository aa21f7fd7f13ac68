package match

import (
	"fmt"
	"time"
)

// UnknownAttendance marks a result whose crowd figure was not reported.
const UnknownAttendance = -1

// Result is one finished fixture. It is a value type and never changes after
// ingestion.
type Result struct {
	HomeTeam   string
	AwayTeam   string
	HomeGoals  int
	AwayGoals  int
	Attendance int
	Date       time.Time
}

// New builds a result with its date truncated to a calendar day in UTC.
func New(date time.Time, homeTeam string, homeGoals int, awayTeam string, awayGoals int, attendance int) Result {
	return Result{
		HomeTeam:   homeTeam,
		AwayTeam:   awayTeam,
		HomeGoals:  homeGoals,
		AwayGoals:  awayGoals,
		Attendance: attendance,
		Date:       Day(date),
	}
}

// Day drops the time of day so that dates can be used as map keys.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r Result) Validate() error {
	if r.HomeTeam == "" || r.AwayTeam == "" {
		return fmt.Errorf("result teams are required")
	}
	if r.HomeTeam == r.AwayTeam {
		return fmt.Errorf("team %q cannot play itself", r.HomeTeam)
	}
	if r.HomeGoals < 0 || r.AwayGoals < 0 {
		return fmt.Errorf("goals must be >= 0")
	}
	if r.Attendance < UnknownAttendance {
		return fmt.Errorf("attendance must be >= 0")
	}
	if r.Date.IsZero() {
		return fmt.Errorf("result date is required")
	}
	return nil
}

func (r Result) IsDraw() bool {
	return r.HomeGoals == r.AwayGoals
}

func (r Result) IsHomeWin() bool {
	return r.HomeGoals > r.AwayGoals
}

func (r Result) IsAwayWin() bool {
	return r.AwayGoals > r.HomeGoals
}

func (r Result) Involves(team string) bool {
	return r.HomeTeam == team || r.AwayTeam == team
}

func (r Result) IsHome(team string) bool {
	return r.HomeTeam == team
}

func (r Result) IsWin(team string) bool {
	return r.GoalsFor(team) > r.GoalsAgainst(team) && r.Involves(team)
}

func (r Result) IsDefeat(team string) bool {
	return r.GoalsFor(team) < r.GoalsAgainst(team) && r.Involves(team)
}

// GoalsFor returns goals scored by team, or 0 when team did not play.
func (r Result) GoalsFor(team string) int {
	switch team {
	case r.HomeTeam:
		return r.HomeGoals
	case r.AwayTeam:
		return r.AwayGoals
	default:
		return 0
	}
}

func (r Result) GoalsAgainst(team string) int {
	switch team {
	case r.HomeTeam:
		return r.AwayGoals
	case r.AwayTeam:
		return r.HomeGoals
	default:
		return 0
	}
}

// Opponent returns the other side of the fixture.
func (r Result) Opponent(team string) string {
	if team == r.HomeTeam {
		return r.AwayTeam
	}
	return r.HomeTeam
}

// Winner returns the winning team name, empty for a draw.
func (r Result) Winner() string {
	switch {
	case r.IsHomeWin():
		return r.HomeTeam
	case r.IsAwayWin():
		return r.AwayTeam
	default:
		return ""
	}
}

func (r Result) Margin() int {
	if r.HomeGoals > r.AwayGoals {
		return r.HomeGoals - r.AwayGoals
	}
	return r.AwayGoals - r.HomeGoals
}

func (r Result) Aggregate() int {
	return r.HomeGoals + r.AwayGoals
}

func (r Result) HasAttendance() bool {
	return r.Attendance >= 0
}

func (r Result) String() string {
	return fmt.Sprintf("%s %d-%d %s", r.HomeTeam, r.HomeGoals, r.AwayGoals, r.AwayTeam)
}

// Describe renders the score from team's point of view, e.g. "3-1 v Leeds"
// for a home match or "0-2 at Leeds" away.
func (r Result) Describe(team string) string {
	where := "at"
	if r.IsHome(team) {
		where = "v"
	}
	return fmt.Sprintf("%d-%d %s %s", r.GoalsFor(team), r.GoalsAgainst(team), where, r.Opponent(team))
}

// Outcome returns 'W', 'D' or 'L' from team's point of view.
func (r Result) Outcome(team string) byte {
	switch {
	case r.IsDraw():
		return 'D'
	case r.IsWin(team):
		return 'W'
	default:
		return 'L'
	}
}
