package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/feed"
	"github.com/riskibarqy/football-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-stats/internal/platform/cache"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

// NewSeasonService binds every configured feed to a source and a shared
// snapshot store.
func NewSeasonService(cfg config.Config, logger *logging.Logger) *usecase.SeasonService {
	feeds := make([]usecase.LeagueFeed, 0, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		feeds = append(feeds, usecase.LeagueFeed{
			ID:     f.League,
			Source: feed.NewSource(f.Location, cfg.FeedTimeout),
		})
	}

	store := cache.NewStore[*season.Season](cfg.SeasonCacheTTL)
	return usecase.NewSeasonService(feeds, store, logger, cfg.FeedPreloadWorkers)
}

func NewHTTPServer(cfg config.Config, seasonSvc *usecase.SeasonService, logger *logging.Logger) (*http.Server, error) {
	if seasonSvc == nil {
		return nil, fmt.Errorf("season service is required")
	}

	handler := httpapi.NewHandler(seasonSvc)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// Preload warms every league snapshot when FEED_PRELOAD is on. Failures are
// logged per league; the server keeps serving and retries on first request.
func Preload(ctx context.Context, cfg config.Config, seasonSvc *usecase.SeasonService, logger *logging.Logger) {
	if !cfg.FeedPreload {
		logger.Info("feed preload disabled", "reason", "FEED_PRELOAD=false")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.FeedTimeout*2)
	defer cancel()

	result, err := seasonSvc.Preload(ctx)
	if err != nil {
		logger.Error("feed preload failed", "error", err)
		return
	}
	for _, item := range result.Items {
		if item.Error != "" {
			logger.Warn("league not preloaded", "league_id", item.LeagueID, "error", item.Error)
		}
	}
}
