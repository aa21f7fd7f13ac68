package feed

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// Load opens src and parses it into a season. Failures to open or read the
// source are *SourceError; anything else means the feed itself is unusable.
func Load(ctx context.Context, src Source, logger *logging.Logger) (*season.Season, error) {
	if logger == nil {
		logger = logging.Default()
	}

	startedAt := time.Now()
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, &SourceError{Source: src.Name(), Err: err}
	}
	defer rc.Close()

	s, err := parse(rc, logger)
	if err != nil {
		var sourceErr *SourceError
		if stderrors.As(err, &sourceErr) {
			sourceErr.Source = src.Name()
		}
		logger.WarnContext(ctx, "feed rejected", "source", src.Name(), "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "feed loaded",
		"source", src.Name(),
		"matches", s.Stats().Matches,
		"teams", s.TeamCount(),
		"dates", len(s.Dates()),
		"duration", time.Since(startedAt),
	)
	return s, nil
}
