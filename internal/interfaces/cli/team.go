package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-stats/internal/domain/match"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

func newTeamCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "team <name>",
		Short: "Print a team's record, form, streaks and crowds",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, league, err := opts.service(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			detail, err := svc.Team(cmd.Context(), league, strings.Join(args, " "))
			if err != nil {
				return err
			}
			positions, err := svc.TeamPositions(cmd.Context(), league, detail.Name)
			if err != nil {
				return err
			}

			writeTeam(cmd.OutOrStdout(), opts.palette(), detail, positions)
			return nil
		},
	}
}

func writeTeam(w io.Writer, p palette, detail usecase.TeamDetail, positions []season.Position) {
	heading := fmt.Sprintf("%s, position %d", detail.Name, detail.Position)
	if detail.Zone != "" {
		heading += fmt.Sprintf(" (%s)", detail.Zone)
	}
	fmt.Fprintln(w, p.title.Sprint(heading))
	fmt.Fprintln(w)

	records := newTable("Record")
	records.AppendHeader(table.Row{"Venue", "P", "W", "D", "L", "F", "A", "Adj", "Pts", "Form", "Stars"})
	for _, r := range detail.Records {
		t := r.Tally
		records.AppendRow(table.Row{r.Venue, t.Played, t.Won, t.Drawn, t.Lost, t.Scored, t.Conceded, signed(t.Adjustment), r.Points, p.form(r.Form), strings.Repeat("*", r.FormStars)})
	}
	render(w, records)

	if len(detail.Records) > 0 {
		overall := detail.Records[0]

		streaks := newTable("Streaks")
		streaks.AppendHeader(table.Row{"Sequence", "Current", "Longest"})
		for _, seq := range season.SequenceTypes() {
			streaks.AppendRow(table.Row{seq, overall.Current[seq], overall.Best[seq]})
		}
		render(w, streaks)

		key := newTable("Key results")
		key.AppendRow(table.Row{"Biggest win", keyResult(detail.Name, overall.KeyResults.BiggestWin)})
		key.AppendRow(table.Row{"Biggest defeat", keyResult(detail.Name, overall.KeyResults.BiggestDefeat)})
		key.AppendRow(table.Row{"Most recent", keyResult(detail.Name, overall.KeyResults.MostRecent)})
		render(w, key)

		for _, note := range overall.Notes {
			fmt.Fprintf(w, "  %s\n", note)
		}
	}

	crowds := newTable("Home attendance")
	crowds.AppendRow(table.Row{"Average", attendance(detail.Attendance.Average)})
	crowds.AppendRow(table.Row{"Highest", attendance(detail.Attendance.Highest)})
	crowds.AppendRow(table.Row{"Lowest", attendance(detail.Attendance.Lowest)})
	crowds.AppendRow(table.Row{"Aggregate", attendance(detail.Attendance.Aggregate)})
	render(w, crowds)

	if len(positions) > 0 {
		trail := make([]string, 0, len(positions))
		for _, pos := range positions {
			trail = append(trail, fmt.Sprintf("%d", pos.Position))
		}
		fmt.Fprintf(w, "Positions: %s\n", strings.Join(trail, " "))
	}
}

func keyResult(team string, r *match.Result) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", r.Describe(team), displayDate(r.Date))
}
