package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "premier.txt")
	feed := "03082024|Ashford|2|Barnet|0|5100\n10082024|Barnet|1|Ashford|1\n"
	if err := os.WriteFile(path, []byte(feed), 0o600); err != nil {
		t.Fatalf("write feed: %v", err)
	}

	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		Feeds:              []config.FeedSource{{League: "premier", Location: path}},
		FeedTimeout:        time.Second,
		FeedPreload:        true,
		FeedPreloadWorkers: 2,
		SeasonCacheTTL:     time.Minute,
	}
}

func TestNewSeasonService_LoadsConfiguredFeeds(t *testing.T) {
	cfg := testConfig(t)
	svc := NewSeasonService(cfg, logging.NewNop())

	Preload(context.Background(), cfg, svc, logging.NewNop())

	leagues := svc.Leagues(context.Background())
	if len(leagues) != 1 || leagues[0].ID != "premier" || !leagues[0].Loaded {
		t.Fatalf("unexpected leagues after preload: %+v", leagues)
	}
	summary, err := svc.Summary(context.Background(), "premier")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Stats.Matches != 2 || summary.Leader != "Ashford" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestPreload_Disabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.FeedPreload = false
	svc := NewSeasonService(cfg, logging.NewNop())

	Preload(context.Background(), cfg, svc, logging.NewNop())

	if leagues := svc.Leagues(context.Background()); leagues[0].Loaded {
		t.Fatalf("expected no snapshot when preload is disabled")
	}
}

func TestNewHTTPServer(t *testing.T) {
	cfg := testConfig(t)
	svc := NewSeasonService(cfg, logging.NewNop())

	srv, err := NewHTTPServer(cfg, svc, logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues/premier/summary", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(cfg, svc, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
	if _, err := NewHTTPServer(testConfig(t), nil, logging.NewNop()); err == nil {
		t.Fatalf("expected error for missing season service")
	}
}
