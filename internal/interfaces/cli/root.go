package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/feed"
	"github.com/riskibarqy/football-stats/internal/platform/cache"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

const (
	rootCmdUse   = "fsa"
	rootCmdShort = "Football season statistics from a results feed"
	rootCmdLong  = `fsa builds league tables, team records and attendance figures from a
pipe-delimited results feed and prints them to the terminal.

The feed is read from a local file or fetched over HTTP(S).`

	defaultLeagueID    = "league"
	defaultFeedTimeout = 20 * time.Second
)

// ErrFeedRequired is returned when no --feed location is given.
var ErrFeedRequired = errors.New("feed location is required (use --feed)")

type options struct {
	feed    string
	league  string
	timeout time.Duration
	verbose bool
	noColor bool
}

// NewRootCommand builds the fsa command tree. version is printed by the
// version subcommand.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           rootCmdUse,
		Short:         rootCmdShort,
		Long:          rootCmdLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.feed, "feed", "f", "", "results feed file path or http(s) URL")
	flags.StringVar(&opts.league, "league", defaultLeagueID, "league id shown in output")
	flags.DurationVar(&opts.timeout, "timeout", defaultFeedTimeout, "timeout for fetching a remote feed")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log feed ingestion to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	rootCmd.AddCommand(newTableCommand(opts))
	rootCmd.AddCommand(newTeamCommand(opts))
	rootCmd.AddCommand(newResultsCommand(opts))
	rootCmd.AddCommand(newAttendanceCommand(opts))
	rootCmd.AddCommand(newSummaryCommand(opts))
	rootCmd.AddCommand(newVersionCommand(version))

	return rootCmd
}

// service wires a single-league season service around the --feed location.
func (o *options) service(stderr io.Writer) (*usecase.SeasonService, string, error) {
	location := strings.TrimSpace(o.feed)
	if location == "" {
		return nil, "", ErrFeedRequired
	}

	level := logging.LevelWarn
	if o.verbose {
		level = logging.LevelDebug
	}
	logger := logging.NewConsole(stderr, level)

	league := strings.TrimSpace(o.league)
	if league == "" {
		league = defaultLeagueID
	}

	svc := usecase.NewSeasonService(
		[]usecase.LeagueFeed{{ID: league, Source: feed.NewSource(location, o.timeout)}},
		cache.NewStore[*season.Season](0),
		logger,
		1,
	)
	return svc, league, nil
}

func (o *options) palette() palette {
	return newPalette(!o.noColor)
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fsa %s\n", version)
		},
	}
}
