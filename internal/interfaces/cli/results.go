package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newResultsCommand(opts *options) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Print the results of one date",
		Long:  "Print the results of one date, the most recent date in the feed by default.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, league, err := opts.service(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			day, results, err := svc.Results(cmd.Context(), league, date)
			if err != nil {
				return err
			}

			render(cmd.OutOrStdout(), resultsTable("Results "+displayDate(day), results))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "match date as ddMMyyyy or yyyy-mm-dd")

	return cmd
}

const (
	matchesHighest = "highest"
	matchesLowest  = "lowest"
)

func newAttendanceCommand(opts *options) *cobra.Command {
	var (
		stat    string
		matches string
	)

	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Print home attendance figures",
		Long: `Print a table of teams ranked by a home attendance figure, or with --matches
the individual matches with the highest or lowest crowds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, league, err := opts.service(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			switch strings.ToLower(strings.TrimSpace(matches)) {
			case "":
			case matchesHighest:
				results, err := svc.HighestAttendances(cmd.Context(), league)
				if err != nil {
					return err
				}
				render(cmd.OutOrStdout(), resultsTable("Highest attendances", results))
				return nil
			case matchesLowest:
				results, err := svc.LowestAttendances(cmd.Context(), league)
				if err != nil {
					return err
				}
				render(cmd.OutOrStdout(), resultsTable("Lowest attendances", results))
				return nil
			default:
				return fmt.Errorf("invalid --matches %q: valid values are %s, %s", matches, matchesHighest, matchesLowest)
			}

			parsed, rows, err := svc.Attendances(cmd.Context(), league, stat)
			if err != nil {
				return err
			}

			tbl := newTable(fmt.Sprintf("%s home attendance", parsed))
			tbl.AppendHeader(table.Row{"Pos", "Team", "Attendance"})
			for _, row := range rows {
				tbl.AppendRow(table.Row{row.Position, row.Team, attendance(row.Value)})
			}
			render(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	cmd.Flags().StringVar(&stat, "stat", "average", "figure to rank by: average, highest, lowest, aggregate")
	cmd.Flags().StringVar(&matches, "matches", "", "list matches instead: highest or lowest")

	return cmd
}
