package match

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, time.August, d, 0, 0, 0, 0, time.UTC)
}

func TestResult_DerivedFacts(t *testing.T) {
	t.Parallel()

	r := New(time.Date(2024, 8, 17, 15, 0, 0, 0, time.Local), "Arsenal", 3, "Wolves", 1, 60000)

	assert.Equal(t, day(17), r.Date)
	assert.False(t, r.IsDraw())
	assert.True(t, r.IsWin("Arsenal"))
	assert.True(t, r.IsDefeat("Wolves"))
	assert.False(t, r.IsWin("Chelsea"))
	assert.False(t, r.IsDefeat("Chelsea"))
	assert.Equal(t, 3, r.GoalsFor("Arsenal"))
	assert.Equal(t, 3, r.GoalsAgainst("Wolves"))
	assert.Equal(t, 2, r.Margin())
	assert.Equal(t, 4, r.Aggregate())
	assert.Equal(t, "Arsenal", r.Winner())
	assert.Equal(t, "Wolves", r.Opponent("Arsenal"))
	assert.Equal(t, byte('W'), r.Outcome("Arsenal"))
	assert.Equal(t, byte('L'), r.Outcome("Wolves"))
	assert.Equal(t, "3-1 v Wolves", r.Describe("Arsenal"))
	assert.Equal(t, "1-3 at Arsenal", r.Describe("Wolves"))
	assert.True(t, r.HasAttendance())
}

func TestResult_Draw(t *testing.T) {
	t.Parallel()

	r := New(day(1), "Leeds", 1, "Hull", 1, UnknownAttendance)
	assert.True(t, r.IsDraw())
	assert.False(t, r.IsWin("Leeds"))
	assert.False(t, r.IsDefeat("Hull"))
	assert.Empty(t, r.Winner())
	assert.Equal(t, byte('D'), r.Outcome("Hull"))
	assert.False(t, r.HasAttendance())
}

func TestResult_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		result  Result
		wantErr bool
	}{
		{name: "valid", result: New(day(1), "A", 0, "B", 0, UnknownAttendance)},
		{name: "missing team", result: New(day(1), "", 0, "B", 0, 0), wantErr: true},
		{name: "same team", result: New(day(1), "A", 0, "A", 0, 0), wantErr: true},
		{name: "negative goals", result: New(day(1), "A", -1, "B", 0, 0), wantErr: true},
		{name: "bad attendance", result: New(day(1), "A", 0, "B", 0, -5), wantErr: true},
		{name: "zero date", result: Result{HomeTeam: "A", AwayTeam: "B"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.result.Validate()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOrderings(t *testing.T) {
	t.Parallel()

	bigWin := New(day(3), "A", 5, "B", 0, 100)
	highScore := New(day(2), "C", 4, "D", 3, 300)
	earlyWin := New(day(1), "E", 3, "F", 0, 200)
	sameMarginLater := New(day(4), "G", 3, "H", 0, 200)

	all := []Result{highScore, sameMarginLater, bigWin, earlyWin}

	byMargin := slices.Clone(all)
	slices.SortFunc(byMargin, ByMargin)
	assert.Equal(t, []Result{bigWin, earlyWin, sameMarginLater, highScore}, byMargin)

	byAggregate := slices.Clone(all)
	slices.SortFunc(byAggregate, ByAggregate)
	assert.Equal(t, highScore, byAggregate[0])
	assert.Equal(t, bigWin, byAggregate[1])

	byCrowd := slices.Clone(all)
	slices.SortFunc(byCrowd, ByAttendance)
	assert.Equal(t, []Result{highScore, earlyWin, sameMarginLater, bigWin}, byCrowd)

	byLowCrowd := slices.Clone(all)
	slices.SortFunc(byLowCrowd, ByLowestAttendance)
	assert.Equal(t, []Result{bigWin, earlyWin, sameMarginLater, highScore}, byLowCrowd)

	byRecent := slices.Clone(all)
	slices.SortFunc(byRecent, ByMostRecent)
	assert.Equal(t, []Result{sameMarginLater, bigWin, highScore, earlyWin}, byRecent)
}
