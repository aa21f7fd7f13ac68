package season

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/football-stats/internal/domain/match"
)

// SequenceType selects a streak statistic.
type SequenceType int

const (
	SequenceWins SequenceType = iota
	SequenceDraws
	SequenceDefeats
	SequenceUnbeaten
	SequenceNoWin
	SequenceCleansheets
	SequenceScored
	SequenceNotScored

	sequenceCount
)

var sequenceNames = [sequenceCount]string{
	SequenceWins:        "wins",
	SequenceDraws:       "draws",
	SequenceDefeats:     "defeats",
	SequenceUnbeaten:    "unbeaten",
	SequenceNoWin:       "no-win",
	SequenceCleansheets: "cleansheets",
	SequenceScored:      "scored",
	SequenceNotScored:   "not-scored",
}

func SequenceTypes() []SequenceType {
	out := make([]SequenceType, 0, sequenceCount)
	for s := SequenceWins; s < sequenceCount; s++ {
		out = append(out, s)
	}
	return out
}

func (s SequenceType) Valid() bool {
	return s >= SequenceWins && s < sequenceCount
}

func (s SequenceType) String() string {
	if !s.Valid() {
		return fmt.Sprintf("sequence(%d)", int(s))
	}
	return sequenceNames[s]
}

func ParseSequence(value string) (SequenceType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for s, name := range sequenceNames {
		if name == normalized {
			return SequenceType(s), nil
		}
	}
	return SequenceWins, fmt.Errorf("invalid sequence %q: valid values are %s", value, strings.Join(sequenceNames[:], ", "))
}

func (s SequenceType) holds(team string, r match.Result) bool {
	switch s {
	case SequenceWins:
		return r.IsWin(team)
	case SequenceDraws:
		return r.IsDraw()
	case SequenceDefeats:
		return r.IsDefeat(team)
	case SequenceUnbeaten:
		return !r.IsDefeat(team)
	case SequenceNoWin:
		return !r.IsWin(team)
	case SequenceCleansheets:
		return r.GoalsAgainst(team) == 0
	case SequenceScored:
		return r.GoalsFor(team) > 0
	case SequenceNotScored:
		return r.GoalsFor(team) == 0
	default:
		return false
	}
}

// sequences tracks the running and season-best length of every streak type.
type sequences struct {
	current [sequenceCount]int
	best    [sequenceCount]int
}

func (s *sequences) apply(team string, r match.Result) {
	for seq := SequenceWins; seq < sequenceCount; seq++ {
		if !seq.holds(team, r) {
			s.current[seq] = 0
			continue
		}
		s.current[seq]++
		if s.current[seq] > s.best[seq] {
			s.best[seq] = s.current[seq]
		}
	}
}

func (s *sequences) value(seq SequenceType, current bool) int {
	if !seq.Valid() {
		return 0
	}
	if current {
		return s.current[seq]
	}
	return s.best[seq]
}
