package httpapi

import (
	"math"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/match"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

const dateLayout = time.DateOnly

type leagueDTO struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Loaded   bool   `json:"loaded"`
	LoadedAt string `json:"loadedAt,omitempty"`
}

type pointsRuleDTO struct {
	Win  int `json:"win"`
	Draw int `json:"draw"`
}

type seasonStatsDTO struct {
	Matches             int `json:"matches"`
	HomeWins            int `json:"homeWins"`
	AwayWins            int `json:"awayWins"`
	Draws               int `json:"draws"`
	ScoreDraws          int `json:"scoreDraws"`
	NoScoreDraws        int `json:"noScoreDraws"`
	HomeGoals           int `json:"homeGoals"`
	AwayGoals           int `json:"awayGoals"`
	Goals               int `json:"goals"`
	Cleansheets         int `json:"cleansheets"`
	AggregateAttendance int `json:"aggregateAttendance"`
}

type summaryDTO struct {
	LeagueID           string         `json:"leagueId"`
	Teams              int            `json:"teams"`
	Dates              int            `json:"dates"`
	MostRecentDate     string         `json:"mostRecentDate,omitempty"`
	Leader             string         `json:"leader,omitempty"`
	PointsRule         pointsRuleDTO  `json:"pointsRule"`
	Stats              seasonStatsDTO `json:"stats"`
	AverageAttendance  int            `json:"averageAttendance"`
	HighestPointsTotal int            `json:"highestPointsTotal"`
	PrizeZones         []string       `json:"prizeZones"`
	RelegationZones    []string       `json:"relegationZones"`
}

type standingDTO struct {
	Position       int     `json:"position"`
	Team           string  `json:"team"`
	Played         int     `json:"played"`
	Won            int     `json:"won"`
	Drawn          int     `json:"drawn"`
	Lost           int     `json:"lost"`
	Scored         int     `json:"scored"`
	Conceded       int     `json:"conceded"`
	GoalDifference int     `json:"goalDifference"`
	Adjustment     int     `json:"adjustment,omitempty"`
	Points         int     `json:"points"`
	AveragePoints  float64 `json:"averagePoints"`
	PointsDropped  int     `json:"pointsDropped"`
	Form           string  `json:"form"`
	FormStars      int     `json:"formStars"`
	Sequence       *int    `json:"sequence,omitempty"`
	Zone           int     `json:"zone"`
}

type tableDTO struct {
	LeagueID string        `json:"leagueId"`
	Kind     string        `json:"kind"`
	Venue    string        `json:"venue"`
	Sequence string        `json:"sequence,omitempty"`
	Current  *bool         `json:"current,omitempty"`
	Rows     []standingDTO `json:"rows"`
}

type overviewDTO struct {
	LeagueID string        `json:"leagueId"`
	Overall  []standingDTO `json:"overall"`
	Home     []standingDTO `json:"home"`
	Away     []standingDTO `json:"away"`
	Form     []standingDTO `json:"form"`
}

type resultDTO struct {
	Date       string `json:"date"`
	HomeTeam   string `json:"homeTeam"`
	HomeGoals  int    `json:"homeGoals"`
	AwayTeam   string `json:"awayTeam"`
	AwayGoals  int    `json:"awayGoals"`
	Winner     string `json:"winner,omitempty"`
	Attendance *int   `json:"attendance,omitempty"`
}

type resultsDTO struct {
	LeagueID string      `json:"leagueId"`
	Date     string      `json:"date,omitempty"`
	Results  []resultDTO `json:"results"`
}

type tallyDTO struct {
	Played         int `json:"played"`
	Won            int `json:"won"`
	Drawn          int `json:"drawn"`
	Lost           int `json:"lost"`
	Scored         int `json:"scored"`
	Conceded       int `json:"conceded"`
	GoalDifference int `json:"goalDifference"`
	Adjustment     int `json:"adjustment,omitempty"`
}

type keyResultsDTO struct {
	BiggestWin    *resultDTO `json:"biggestWin,omitempty"`
	BiggestDefeat *resultDTO `json:"biggestDefeat,omitempty"`
	MostRecent    *resultDTO `json:"mostRecent,omitempty"`
}

type teamRecordDTO struct {
	Venue      string         `json:"venue"`
	Record     tallyDTO       `json:"record"`
	Points     int            `json:"points"`
	Form       string         `json:"form"`
	FormStars  int            `json:"formStars"`
	Notes      []string       `json:"notes"`
	KeyResults keyResultsDTO  `json:"keyResults"`
	Current    map[string]int `json:"currentSequences"`
	Best       map[string]int `json:"bestSequences"`
}

type teamAttendanceDTO struct {
	Average   int `json:"average"`
	Highest   int `json:"highest"`
	Lowest    int `json:"lowest"`
	Aggregate int `json:"aggregate"`
}

type teamDetailDTO struct {
	LeagueID   string            `json:"leagueId"`
	Name       string            `json:"name"`
	Position   int               `json:"position"`
	Zone       string            `json:"zone,omitempty"`
	Records    []teamRecordDTO   `json:"records"`
	Attendance teamAttendanceDTO `json:"attendance"`
}

type positionDTO struct {
	Date     string `json:"date"`
	Position int    `json:"position"`
}

type teamPointsDTO struct {
	Team               string `json:"team"`
	Points             []int  `json:"points"`
	HighestPointsTotal int    `json:"highestPointsTotal"`
}

type teamAttendanceRowDTO struct {
	Position int    `json:"position"`
	Team     string `json:"team"`
	Value    int    `json:"value"`
}

type attendanceTableDTO struct {
	LeagueID string                 `json:"leagueId"`
	Stat     string                 `json:"stat"`
	Rows     []teamAttendanceRowDTO `json:"rows"`
}

type seasonRecordsDTO struct {
	BiggestHomeWins   []resultDTO `json:"biggestHomeWins"`
	BiggestAwayWins   []resultDTO `json:"biggestAwayWins"`
	HighestAggregates []resultDTO `json:"highestAggregates"`
}

type reloadDTO struct {
	LeagueID   string `json:"leagueId"`
	Teams      int    `json:"teams"`
	Matches    int    `json:"matches"`
	LoadedAt   string `json:"loadedAt"`
	DurationMs int64  `json:"durationMs"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func leagueToDTO(v usecase.League) leagueDTO {
	out := leagueDTO{ID: v.ID, Source: v.Source, Loaded: v.Loaded}
	if v.Loaded {
		out.LoadedAt = v.LoadedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func summaryToDTO(v usecase.Summary) summaryDTO {
	return summaryDTO{
		LeagueID:       v.LeagueID,
		Teams:          v.Teams,
		Dates:          v.Dates,
		MostRecentDate: formatDate(v.MostRecent),
		Leader:         v.Leader,
		PointsRule:     pointsRuleDTO{Win: v.PointsRule.Win, Draw: v.PointsRule.Draw},
		Stats: seasonStatsDTO{
			Matches:             v.Stats.Matches,
			HomeWins:            v.Stats.HomeWins,
			AwayWins:            v.Stats.AwayWins,
			Draws:               v.Stats.Draws(),
			ScoreDraws:          v.Stats.ScoreDraws,
			NoScoreDraws:        v.Stats.NoScoreDraws,
			HomeGoals:           v.Stats.HomeGoals,
			AwayGoals:           v.Stats.AwayGoals,
			Goals:               v.Stats.Goals(),
			Cleansheets:         v.Stats.Cleansheets,
			AggregateAttendance: v.Stats.AggregateAttendance,
		},
		AverageAttendance:  v.AverageAttendance,
		HighestPointsTotal: v.HighestPointsTotal,
		PrizeZones:         nonNil(v.PrizeZones),
		RelegationZones:    nonNil(v.RelegationZones),
	}
}

func standingsToDTO(rows []season.Standing, withSequence bool) []standingDTO {
	out := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		item := standingDTO{
			Position:       row.Position,
			Team:           row.Team,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			Scored:         row.Scored,
			Conceded:       row.Conceded,
			GoalDifference: row.GoalDifference,
			Adjustment:     row.Adjustment,
			Points:         row.Points,
			AveragePoints:  round2(row.AveragePoints),
			PointsDropped:  row.PointsDropped,
			Form:           row.Form,
			FormStars:      row.FormStars,
			Zone:           row.Zone,
		}
		if withSequence {
			value := row.Sequence
			item.Sequence = &value
		}
		out = append(out, item)
	}
	return out
}

func tableToDTO(v usecase.Table) tableDTO {
	out := tableDTO{
		LeagueID: v.LeagueID,
		Kind:     v.Query.Kind.String(),
		Venue:    v.Query.Venue.String(),
	}
	isSequence := v.Query.Kind == season.TableSequence
	if isSequence {
		out.Sequence = v.Query.Sequence.String()
		current := v.Query.Current
		out.Current = &current
	}
	out.Rows = standingsToDTO(v.Rows, isSequence)
	return out
}

func overviewToDTO(v usecase.Overview) overviewDTO {
	return overviewDTO{
		LeagueID: v.LeagueID,
		Overall:  standingsToDTO(v.Overall, false),
		Home:     standingsToDTO(v.Home, false),
		Away:     standingsToDTO(v.Away, false),
		Form:     standingsToDTO(v.Form, false),
	}
}

func resultToDTO(r match.Result) resultDTO {
	out := resultDTO{
		Date:      formatDate(r.Date),
		HomeTeam:  r.HomeTeam,
		HomeGoals: r.HomeGoals,
		AwayTeam:  r.AwayTeam,
		AwayGoals: r.AwayGoals,
		Winner:    r.Winner(),
	}
	if r.HasAttendance() {
		attendance := r.Attendance
		out.Attendance = &attendance
	}
	return out
}

func resultsToDTO(results []match.Result) []resultDTO {
	out := make([]resultDTO, 0, len(results))
	for _, r := range results {
		out = append(out, resultToDTO(r))
	}
	return out
}

func optionalResultToDTO(r *match.Result) *resultDTO {
	if r == nil {
		return nil
	}
	item := resultToDTO(*r)
	return &item
}

func sequencesToDTO(values map[season.SequenceType]int) map[string]int {
	out := make(map[string]int, len(values))
	for seq, value := range values {
		out[seq.String()] = value
	}
	return out
}

func teamDetailToDTO(v usecase.TeamDetail) teamDetailDTO {
	out := teamDetailDTO{
		LeagueID: v.LeagueID,
		Name:     v.Name,
		Position: v.Position,
		Zone:     v.Zone,
		Records:  make([]teamRecordDTO, 0, len(v.Records)),
		Attendance: teamAttendanceDTO{
			Average:   v.Attendance.Average,
			Highest:   v.Attendance.Highest,
			Lowest:    v.Attendance.Lowest,
			Aggregate: v.Attendance.Aggregate,
		},
	}
	for _, record := range v.Records {
		out.Records = append(out.Records, teamRecordDTO{
			Venue: record.Venue.String(),
			Record: tallyDTO{
				Played:         record.Tally.Played,
				Won:            record.Tally.Won,
				Drawn:          record.Tally.Drawn,
				Lost:           record.Tally.Lost,
				Scored:         record.Tally.Scored,
				Conceded:       record.Tally.Conceded,
				GoalDifference: record.Tally.GoalDifference(),
				Adjustment:     record.Tally.Adjustment,
			},
			Points:    record.Points,
			Form:      record.Form,
			FormStars: record.FormStars,
			Notes:     nonNil(record.Notes),
			KeyResults: keyResultsDTO{
				BiggestWin:    optionalResultToDTO(record.KeyResults.BiggestWin),
				BiggestDefeat: optionalResultToDTO(record.KeyResults.BiggestDefeat),
				MostRecent:    optionalResultToDTO(record.KeyResults.MostRecent),
			},
			Current: sequencesToDTO(record.Current),
			Best:    sequencesToDTO(record.Best),
		})
	}
	return out
}

func positionsToDTO(positions []season.Position) []positionDTO {
	out := make([]positionDTO, 0, len(positions))
	for _, p := range positions {
		out = append(out, positionDTO{Date: formatDate(p.Date), Position: p.Position})
	}
	return out
}

func attendanceTableToDTO(leagueID string, stat season.AttendanceStat, rows []season.TeamAttendance) attendanceTableDTO {
	out := attendanceTableDTO{
		LeagueID: leagueID,
		Stat:     stat.String(),
		Rows:     make([]teamAttendanceRowDTO, 0, len(rows)),
	}
	for _, row := range rows {
		out.Rows = append(out.Rows, teamAttendanceRowDTO{Position: row.Position, Team: row.Team, Value: row.Value})
	}
	return out
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
