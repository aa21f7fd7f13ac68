package season

import (
	"fmt"

	"github.com/riskibarqy/football-stats/internal/domain/match"
)

// PointsRule is the number of points awarded for a win and for a draw.
type PointsRule struct {
	Win  int
	Draw int
}

func DefaultPointsRule() PointsRule {
	return PointsRule{Win: 3, Draw: 1}
}

func (p PointsRule) Validate() error {
	if p.Win < 0 || p.Draw < 0 {
		return fmt.Errorf("points for win and draw must be >= 0")
	}
	return nil
}

// Tally holds the playing record counters shared by full-season records and
// form windows.
type Tally struct {
	Played     int
	Won        int
	Drawn      int
	Lost       int
	Scored     int
	Conceded   int
	Adjustment int
}

func (t Tally) Points(rule PointsRule) int {
	return t.Won*rule.Win + t.Drawn*rule.Draw + t.Adjustment
}

func (t Tally) GoalDifference() int {
	return t.Scored - t.Conceded
}

// AveragePoints is points per game, 0 before the first match.
func (t Tally) AveragePoints(rule PointsRule) float64 {
	if t.Played == 0 {
		return 0
	}
	return float64(t.Points(rule)) / float64(t.Played)
}

// PointsDropped is the shortfall against winning every match played.
func (t Tally) PointsDropped(rule PointsRule) int {
	return t.Played*rule.Win - t.Points(rule)
}

func (t *Tally) add(team string, r match.Result) {
	t.Played++
	switch {
	case r.IsDraw():
		t.Drawn++
	case r.IsWin(team):
		t.Won++
	default:
		t.Lost++
	}
	t.Scored += r.GoalsFor(team)
	t.Conceded += r.GoalsAgainst(team)
}
