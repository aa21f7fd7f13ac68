package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

type tableFlags struct {
	kind     string
	venue    string
	sequence string
	best     bool
}

func newTableCommand(opts *options) *cobra.Command {
	flags := &tableFlags{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print a league table",
		Long: `Print a league table ordered by points (standard), points per game (average),
points dropped, form over the last matches, or the length of a streak (sequence).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, league, err := opts.service(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			in := usecase.TableInput{
				Kind:     flags.kind,
				Venue:    flags.venue,
				Sequence: flags.sequence,
				Current:  strconv.FormatBool(!flags.best),
			}
			result, err := svc.Table(cmd.Context(), league, in)
			if err != nil {
				return err
			}

			render(cmd.OutOrStdout(), standingsTable(opts.palette(), result.Query, result.Rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.kind, "kind", "standard", "table kind: standard, average, points-dropped, form, sequence")
	cmd.Flags().StringVar(&flags.venue, "venue", "both", "venue: home, away, both")
	cmd.Flags().StringVar(&flags.sequence, "sequence", "", "streak for sequence tables, e.g. wins or unbeaten")
	cmd.Flags().BoolVar(&flags.best, "best", false, "rank sequence tables by longest streak instead of current")

	return cmd
}

func tableTitle(q season.TableQuery) string {
	title := fmt.Sprintf("%s table (%s)", q.Kind, q.Venue)
	if q.Kind != season.TableSequence {
		return title
	}
	if q.Current {
		return fmt.Sprintf("%s, current %s", title, q.Sequence)
	}
	return fmt.Sprintf("%s, longest %s", title, q.Sequence)
}

func standingsTable(p palette, q season.TableQuery, rows []season.Standing) table.Writer {
	tbl := newTable(tableTitle(q))

	header := table.Row{"Pos", "Team", "P", "W", "D", "L", "F", "A", "GD", "Pts"}
	switch q.Kind {
	case season.TableAverage:
		header = append(header, "Avg")
	case season.TablePointsDropped:
		header = append(header, "Dropped")
	case season.TableForm:
		header = append(header, "Form")
	case season.TableSequence:
		header = append(header, "Seq")
	}
	tbl.AppendHeader(header)

	zone := 0
	for i, s := range rows {
		if i > 0 && s.Zone != zone {
			tbl.AppendSeparator()
		}
		zone = s.Zone

		row := table.Row{s.Position, p.zone(s.Team, s.Zone), s.Played, s.Won, s.Drawn, s.Lost, s.Scored, s.Conceded, signed(s.GoalDifference), s.Points}
		switch q.Kind {
		case season.TableAverage:
			row = append(row, fmt.Sprintf("%.2f", s.AveragePoints))
		case season.TablePointsDropped:
			row = append(row, s.PointsDropped)
		case season.TableForm:
			row = append(row, p.form(s.Form))
		case season.TableSequence:
			row = append(row, s.Sequence)
		}
		tbl.AppendRow(row)
	}
	return tbl
}
