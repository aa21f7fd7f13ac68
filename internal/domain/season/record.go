package season

import (
	"slices"

	"github.com/riskibarqy/football-stats/internal/domain/match"
	"github.com/riskibarqy/football-stats/internal/platform/ranking"
)

// KeyResults are the notable results of a record. A nil pointer means the
// team has no such result yet.
type KeyResults struct {
	BiggestWin    *match.Result
	BiggestDefeat *match.Result
	MostRecent    *match.Result
}

// Record aggregates one team's matches at one venue. Only the owning Team
// mutates it, through apply and adjust.
type Record struct {
	team    string
	venue   Venue
	tally   Tally
	streaks sequences
	form    *Form
	results []match.Result

	biggestWin    *ranking.Set[match.Result]
	biggestDefeat *ranking.Set[match.Result]
	mostRecent    *ranking.Set[match.Result]
}

func newRecord(team string, venue Venue) *Record {
	return &Record{
		team:          team,
		venue:         venue,
		form:          newForm(team, venue.formLength()),
		biggestWin:    ranking.New(1, match.ByMargin),
		biggestDefeat: ranking.New(1, match.ByMargin),
		mostRecent:    ranking.New(1, match.ByMostRecent),
	}
}

func (r *Record) apply(res match.Result) {
	r.tally.add(r.team, res)
	r.streaks.apply(r.team, res)
	r.form.add(res)
	r.results = append(r.results, res)

	switch {
	case res.IsWin(r.team):
		r.biggestWin.Add(res)
	case res.IsDefeat(r.team):
		r.biggestDefeat.Add(res)
	}
	r.mostRecent.Add(res)
}

func (r *Record) adjust(amount int) {
	r.tally.Adjustment += amount
}

func (r *Record) Team() string {
	return r.team
}

func (r *Record) Venue() Venue {
	return r.venue
}

func (r *Record) Tally() Tally {
	return r.tally
}

func (r *Record) Played() int {
	return r.tally.Played
}

func (r *Record) Points(rule PointsRule) int {
	return r.tally.Points(rule)
}

func (r *Record) GoalDifference() int {
	return r.tally.GoalDifference()
}

func (r *Record) Form() *Form {
	return r.form
}

// Sequence returns the running streak when current is set, otherwise the
// longest streak of the season.
func (r *Record) Sequence(seq SequenceType, current bool) int {
	return r.streaks.value(seq, current)
}

// Results returns every result applied to the record in date order.
func (r *Record) Results() []match.Result {
	return slices.Clone(r.results)
}

func (r *Record) KeyResults() KeyResults {
	return KeyResults{
		BiggestWin:    firstOf(r.biggestWin),
		BiggestDefeat: firstOf(r.biggestDefeat),
		MostRecent:    firstOf(r.mostRecent),
	}
}

func firstOf(set *ranking.Set[match.Result]) *match.Result {
	res, ok := set.First()
	if !ok {
		return nil
	}
	return &res
}
