package match

import (
	"cmp"
	"strings"
)

// Orderings below sort best first and are meant for ranking.Set. Dates and
// team names end every chain so two different fixtures never compare equal.

// ByMostRecent puts the latest result first.
func ByMostRecent(a, b Result) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return byTeams(a, b)
}

// ByMargin puts the widest winning margin first, then the higher scoring
// match, then the earlier one.
func ByMargin(a, b Result) int {
	if c := cmp.Compare(b.Margin(), a.Margin()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Aggregate(), a.Aggregate()); c != 0 {
		return c
	}
	return byDateThenTeams(a, b)
}

// ByAggregate puts the match with most goals first.
func ByAggregate(a, b Result) int {
	if c := cmp.Compare(b.Aggregate(), a.Aggregate()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Margin(), a.Margin()); c != 0 {
		return c
	}
	return byDateThenTeams(a, b)
}

// ByAttendance puts the biggest crowd first.
func ByAttendance(a, b Result) int {
	if c := cmp.Compare(b.Attendance, a.Attendance); c != 0 {
		return c
	}
	return byDateThenTeams(a, b)
}

// ByLowestAttendance puts the smallest crowd first.
func ByLowestAttendance(a, b Result) int {
	if c := cmp.Compare(a.Attendance, b.Attendance); c != 0 {
		return c
	}
	return byDateThenTeams(a, b)
}

func byDateThenTeams(a, b Result) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return byTeams(a, b)
}

func byTeams(a, b Result) int {
	if c := strings.Compare(a.HomeTeam, b.HomeTeam); c != 0 {
		return c
	}
	return strings.Compare(a.AwayTeam, b.AwayTeam)
}
