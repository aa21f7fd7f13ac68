package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newSummaryCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print season totals and records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, league, err := opts.service(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			summary, err := svc.Summary(cmd.Context(), league)
			if err != nil {
				return err
			}
			records, err := svc.Records(cmd.Context(), league)
			if err != nil {
				return err
			}

			stats := summary.Stats
			tbl := newTable("Season " + summary.LeagueID)
			tbl.AppendRow(table.Row{"Teams", summary.Teams})
			tbl.AppendRow(table.Row{"Match dates", summary.Dates})
			tbl.AppendRow(table.Row{"Most recent", displayDate(summary.MostRecent)})
			tbl.AppendRow(table.Row{"Points", fmt.Sprintf("%d win, %d draw", summary.PointsRule.Win, summary.PointsRule.Draw)})
			tbl.AppendRow(table.Row{"Leader", dash(summary.Leader)})
			tbl.AppendRow(table.Row{"Highest points", summary.HighestPointsTotal})
			tbl.AppendSeparator()
			tbl.AppendRow(table.Row{"Matches", stats.Matches})
			tbl.AppendRow(table.Row{"Home wins", stats.HomeWins})
			tbl.AppendRow(table.Row{"Away wins", stats.AwayWins})
			tbl.AppendRow(table.Row{"Draws", stats.Draws()})
			tbl.AppendRow(table.Row{"Goals", stats.Goals()})
			tbl.AppendRow(table.Row{"Average attendance", attendance(summary.AverageAttendance)})
			tbl.AppendSeparator()
			tbl.AppendRow(table.Row{"Prize zones", dash(strings.Join(summary.PrizeZones, ", "))})
			tbl.AppendRow(table.Row{"Relegation zones", dash(strings.Join(summary.RelegationZones, ", "))})
			render(cmd.OutOrStdout(), tbl)

			if len(records.BiggestHomeWins) > 0 {
				render(cmd.OutOrStdout(), resultsTable("Biggest home wins", records.BiggestHomeWins))
			}
			if len(records.BiggestAwayWins) > 0 {
				render(cmd.OutOrStdout(), resultsTable("Biggest away wins", records.BiggestAwayWins))
			}
			if len(records.HighestAggregates) > 0 {
				render(cmd.OutOrStdout(), resultsTable("Highest aggregates", records.HighestAggregates))
			}
			return nil
		},
	}
}

func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
