package season

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// TableKind selects the primary ordering of a league table.
type TableKind int

const (
	TableStandard TableKind = iota
	TableAverage
	TablePointsDropped
	TableForm
	TableSequence
)

var tableKindNames = map[TableKind]string{
	TableStandard:      "standard",
	TableAverage:       "average",
	TablePointsDropped: "points-dropped",
	TableForm:          "form",
	TableSequence:      "sequence",
}

func TableKinds() []TableKind {
	return []TableKind{TableStandard, TableAverage, TablePointsDropped, TableForm, TableSequence}
}

func (k TableKind) String() string {
	if name, ok := tableKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("table(%d)", int(k))
}

func (k TableKind) Valid() bool {
	_, ok := tableKindNames[k]
	return ok
}

func ParseTableKind(value string) (TableKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" || normalized == "league" {
		return TableStandard, nil
	}
	if normalized == "inverted" || normalized == "dropped" {
		return TablePointsDropped, nil
	}
	for _, kind := range TableKinds() {
		if tableKindNames[kind] == normalized {
			return kind, nil
		}
	}
	return TableStandard, fmt.Errorf("invalid table kind %q", value)
}

// TableQuery describes one table. Sequence and Current are only read for
// TableSequence.
type TableQuery struct {
	Kind     TableKind
	Venue    Venue
	Sequence SequenceType
	Current  bool
}

func (q TableQuery) Validate() error {
	if !q.Kind.Valid() {
		return fmt.Errorf("invalid table kind %d", int(q.Kind))
	}
	if !q.Venue.Valid() {
		return fmt.Errorf("invalid venue %d", int(q.Venue))
	}
	if q.Kind == TableSequence && !q.Sequence.Valid() {
		return fmt.Errorf("invalid sequence %d", int(q.Sequence))
	}
	return nil
}

// Standing is one row of a table. Form columns describe the venue's form
// window; for TableForm the counters describe the window too.
type Standing struct {
	Position       int
	Team           string
	Venue          Venue
	Played         int
	Won            int
	Drawn          int
	Lost           int
	Scored         int
	Conceded       int
	GoalDifference int
	Adjustment     int
	Points         int
	AveragePoints  float64
	PointsDropped  int
	Form           string
	FormStars      int
	Sequence       int
	Zone           int
}

// sortKey orders rows best first: primary descending, then goal difference,
// goals scored and wins descending, then name.
type sortKey struct {
	primary  float64
	goalDiff int
	scored   int
	won      int
	name     string
}

func compareKeys(a, b sortKey) int {
	if c := cmp.Compare(b.primary, a.primary); c != 0 {
		return c
	}
	if c := cmp.Compare(b.goalDiff, a.goalDiff); c != 0 {
		return c
	}
	if c := cmp.Compare(b.scored, a.scored); c != 0 {
		return c
	}
	if c := cmp.Compare(b.won, a.won); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.name), strings.ToLower(b.name)); c != 0 {
		return c
	}
	return strings.Compare(a.name, b.name)
}

func (q TableQuery) key(rule PointsRule, record *Record, tally Tally) sortKey {
	key := sortKey{
		goalDiff: tally.GoalDifference(),
		scored:   tally.Scored,
		won:      tally.Won,
		name:     record.Team(),
	}
	switch q.Kind {
	case TableAverage:
		key.primary = tally.AveragePoints(rule)
	case TablePointsDropped:
		key.primary = -float64(tally.PointsDropped(rule))
	case TableSequence:
		key.primary = float64(record.Sequence(q.Sequence, q.Current))
	default:
		key.primary = float64(tally.Points(rule))
	}
	return key
}

type tableRow struct {
	key      sortKey
	standing Standing
}

func (s *Season) buildTable(q TableQuery) []Standing {
	rows := make([]tableRow, 0, len(s.teams))
	for _, team := range s.teams {
		record := team.Record(q.Venue)
		form := record.Form()
		tally := record.Tally()
		if q.Kind == TableForm {
			tally = form.Tally()
		}
		standing := Standing{
			Team:           team.Name(),
			Venue:          q.Venue,
			Played:         tally.Played,
			Won:            tally.Won,
			Drawn:          tally.Drawn,
			Lost:           tally.Lost,
			Scored:         tally.Scored,
			Conceded:       tally.Conceded,
			GoalDifference: tally.GoalDifference(),
			Adjustment:     tally.Adjustment,
			Points:         tally.Points(s.rule),
			AveragePoints:  tally.AveragePoints(s.rule),
			PointsDropped:  tally.PointsDropped(s.rule),
			Form:           form.String(),
			FormStars:      form.Stars(s.rule),
		}
		if q.Kind == TableSequence {
			standing.Sequence = record.Sequence(q.Sequence, q.Current)
		}
		rows = append(rows, tableRow{key: q.key(s.rule, record, tally), standing: standing})
	}

	slices.SortFunc(rows, func(a, b tableRow) int {
		return compareKeys(a.key, b.key)
	})

	out := make([]Standing, len(rows))
	for i, row := range rows {
		row.standing.Position = i + 1
		if q.Kind == TableStandard && q.Venue == VenueBoth {
			row.standing.Zone = s.ZoneForPosition(i + 1)
		}
		out[i] = row.standing
	}
	return out
}
