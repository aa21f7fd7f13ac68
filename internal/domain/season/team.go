package season

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/match"
)

// AttendanceStat selects which home crowd figure to rank teams by.
type AttendanceStat int

const (
	AttendanceAverage AttendanceStat = iota
	AttendanceHighest
	AttendanceLowest
	AttendanceAggregate
)

func (a AttendanceStat) String() string {
	switch a {
	case AttendanceAverage:
		return "average"
	case AttendanceHighest:
		return "highest"
	case AttendanceLowest:
		return "lowest"
	case AttendanceAggregate:
		return "aggregate"
	default:
		return fmt.Sprintf("attendance(%d)", int(a))
	}
}

func ParseAttendanceStat(value string) (AttendanceStat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "average":
		return AttendanceAverage, nil
	case "highest":
		return AttendanceHighest, nil
	case "lowest":
		return AttendanceLowest, nil
	case "aggregate", "total":
		return AttendanceAggregate, nil
	default:
		return AttendanceAverage, fmt.Errorf("invalid attendance stat %q: valid values are average, highest, lowest, aggregate", value)
	}
}

// Position is a team's league position after the matches of Date.
type Position struct {
	Date     time.Time
	Position int
}

type crowds struct {
	aggregate int
	highest   int
	lowest    int
	counted   int
}

func (c *crowds) add(attendance int) {
	if attendance < 0 {
		return
	}
	c.aggregate += attendance
	c.counted++
	if attendance > c.highest {
		c.highest = attendance
	}
	if c.counted == 1 || attendance < c.lowest {
		c.lowest = attendance
	}
}

// Team owns its home, away and overall records and its position history.
type Team struct {
	name      string
	home      *Record
	away      *Record
	overall   *Record
	positions []Position
	crowds    crowds
}

func newTeam(name string) *Team {
	return &Team{
		name:    name,
		home:    newRecord(name, VenueHome),
		away:    newRecord(name, VenueAway),
		overall: newRecord(name, VenueBoth),
	}
}

func (t *Team) apply(r match.Result) {
	t.overall.apply(r)
	switch {
	case r.HomeTeam == t.name:
		t.home.apply(r)
		t.crowds.add(r.Attendance)
	case r.AwayTeam == t.name:
		t.away.apply(r)
	}
}

// adjust changes points on the overall record only.
func (t *Team) adjust(amount int) {
	t.overall.adjust(amount)
}

func (t *Team) addPosition(date time.Time, position int) {
	t.positions = append(t.positions, Position{Date: date, Position: position})
}

func (t *Team) Name() string {
	return t.name
}

func (t *Team) Record(venue Venue) *Record {
	switch venue {
	case VenueHome:
		return t.home
	case VenueAway:
		return t.away
	default:
		return t.overall
	}
}

func (t *Team) Form(venue Venue) string {
	return t.Record(venue).Form().String()
}

func (t *Team) KeyResults(venue Venue) KeyResults {
	return t.Record(venue).KeyResults()
}

// Positions returns the league position after each match date, oldest first.
func (t *Team) Positions() []Position {
	return slices.Clone(t.positions)
}

// LastPosition is the position after the most recent date, 0 before any.
func (t *Team) LastPosition() int {
	if len(t.positions) == 0 {
		return 0
	}
	return t.positions[len(t.positions)-1].Position
}

// PointsSeries returns cumulative points after each match, starting at 0.
// Points adjustments are not tied to a match and are left out.
func (t *Team) PointsSeries(rule PointsRule) []int {
	results := t.overall.results
	out := make([]int, 0, len(results)+1)
	total := 0
	out = append(out, total)
	for _, r := range results {
		switch {
		case r.IsDraw():
			total += rule.Draw
		case r.IsWin(t.name):
			total += rule.Win
		}
		out = append(out, total)
	}
	return out
}

// Attendance returns a home crowd figure. Matches without a reported
// attendance do not count towards the average.
func (t *Team) Attendance(stat AttendanceStat) int {
	switch stat {
	case AttendanceHighest:
		return t.crowds.highest
	case AttendanceLowest:
		return t.crowds.lowest
	case AttendanceAggregate:
		return t.crowds.aggregate
	default:
		return roundedAverage(t.crowds.aggregate, t.crowds.counted)
	}
}

const minNoteStreak = 3

var noteFormats = [sequenceCount]string{
	SequenceWins:        "Won last %d %s",
	SequenceDraws:       "Drawn last %d %s",
	SequenceDefeats:     "Lost last %d %s",
	SequenceUnbeaten:    "Unbeaten in last %d %s",
	SequenceNoWin:       "Not won in last %d %s",
	SequenceCleansheets: "Kept a clean sheet in last %d %s",
	SequenceScored:      "Scored in last %d %s",
	SequenceNotScored:   "Failed to score in last %d %s",
}

// Notes describes the running streaks of at least three matches. Unbeaten and
// no-win runs are only mentioned when longer than the winning or losing run
// they contain.
func (t *Team) Notes(venue Venue) []string {
	record := t.Record(venue)
	var notes []string
	for _, seq := range SequenceTypes() {
		n := record.Sequence(seq, true)
		if n < minNoteStreak {
			continue
		}
		if seq == SequenceUnbeaten && n == record.Sequence(SequenceWins, true) {
			continue
		}
		if seq == SequenceNoWin && n == record.Sequence(SequenceDefeats, true) {
			continue
		}
		notes = append(notes, fmt.Sprintf(noteFormats[seq], n, venue.matchNoun()))
	}
	return notes
}

func roundedAverage(total, count int) int {
	if count <= 0 {
		return 0
	}
	return (total + count/2) / count
}
