package season

import (
	"bytes"
	"math"

	"github.com/riskibarqy/football-stats/internal/domain/match"
	"github.com/riskibarqy/football-stats/internal/platform/ranking"
)

// FormPlaceholder fills form slots for matches not yet played.
const FormPlaceholder = '-'

// Form is a team's record over its most recent matches.
type Form struct {
	team   string
	window *ranking.Set[match.Result]
}

func newForm(team string, length int) *Form {
	return &Form{
		team:   team,
		window: ranking.New(length, match.ByMostRecent),
	}
}

func (f *Form) add(r match.Result) {
	f.window.Add(r)
}

// Length is the window size, not the number of matches in it.
func (f *Form) Length() int {
	return f.window.Cap()
}

// Results returns the window newest first.
func (f *Form) Results() []match.Result {
	return f.window.Items()
}

func (f *Form) Tally() Tally {
	var t Tally
	for r := range f.window.All() {
		t.add(f.team, r)
	}
	return t
}

// String renders the window oldest first as W/D/L letters, padded on the left
// with FormPlaceholder up to Length.
func (f *Form) String() string {
	out := bytes.Repeat([]byte{FormPlaceholder}, f.Length())
	i := f.Length() - 1
	for r := range f.window.All() {
		out[i] = r.Outcome(f.team)
		i--
	}
	return string(out)
}

// Stars rates the window from 1 to 5 by share of the maximum points.
func (f *Form) Stars(rule PointsRule) int {
	t := f.Tally()
	possible := rule.Win * t.Played
	if possible <= 0 {
		return 1
	}
	stars := int(math.Ceil(5 * float64(t.Points(rule)) / float64(possible)))
	return min(5, max(1, stars))
}
