package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/feed"
	"github.com/riskibarqy/football-stats/internal/platform/cache"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// LeagueFeed binds a league id to the source of its results feed.
type LeagueFeed struct {
	ID     string
	Source feed.Source
}

type League struct {
	ID       string
	Source   string
	Loaded   bool
	LoadedAt time.Time
}

type ReloadResult struct {
	LeagueID   string
	Teams      int
	Matches    int
	LoadedAt   time.Time
	DurationMs int64
}

type PreloadItem struct {
	LeagueID   string
	Error      string
	DurationMs int64
}

type PreloadResult struct {
	Loaded int
	Failed int
	Items  []PreloadItem
}

// SeasonService owns one immutable season snapshot per configured league.
// Snapshots are built on first use, cached for the store's ttl and replaced
// wholesale by Reload.
type SeasonService struct {
	feeds   []LeagueFeed
	byID    map[string]feed.Source
	store   *cache.Store[*season.Season]
	logger  *logging.Logger
	workers int
	now     func() time.Time
}

func NewSeasonService(feeds []LeagueFeed, store *cache.Store[*season.Season], logger *logging.Logger, workers int) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}
	if store == nil {
		store = cache.NewStore[*season.Season](0)
	}
	if workers < 1 {
		workers = 1
	}

	byID := make(map[string]feed.Source, len(feeds))
	ordered := make([]LeagueFeed, 0, len(feeds))
	for _, f := range feeds {
		id := normalizeLeagueID(f.ID)
		if id == "" || f.Source == nil {
			continue
		}
		if _, dup := byID[id]; dup {
			continue
		}
		byID[id] = f.Source
		ordered = append(ordered, LeagueFeed{ID: id, Source: f.Source})
	}
	slices.SortFunc(ordered, func(a, b LeagueFeed) int { return strings.Compare(a.ID, b.ID) })

	return &SeasonService{
		feeds:   ordered,
		byID:    byID,
		store:   store,
		logger:  logger,
		workers: workers,
		now:     time.Now,
	}
}

func normalizeLeagueID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Leagues lists every configured league and whether a snapshot is live.
func (s *SeasonService) Leagues(_ context.Context) []League {
	out := make([]League, 0, len(s.feeds))
	for _, f := range s.feeds {
		item := League{ID: f.ID, Source: f.Source.Name()}
		if at, ok := s.store.StoredAt(f.ID); ok {
			item.Loaded = true
			item.LoadedAt = at
		}
		out = append(out, item)
	}
	return out
}

func (s *SeasonService) source(leagueID string) (string, feed.Source, error) {
	id := normalizeLeagueID(leagueID)
	if id == "" {
		return "", nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	src, ok := s.byID[id]
	if !ok {
		return "", nil, fmt.Errorf("%w: league=%s", ErrNotFound, id)
	}
	return id, src, nil
}

// Snapshot returns the cached season of a league, loading it on a miss.
// Concurrent misses share one load.
func (s *SeasonService) Snapshot(ctx context.Context, leagueID string) (*season.Season, error) {
	id, src, err := s.source(leagueID)
	if err != nil {
		return nil, err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Snapshot", id)
	snapshot, err := s.store.GetOrLoad(ctx, id, func(ctx context.Context) (*season.Season, error) {
		return s.load(ctx, id, src)
	})
	endUsecaseSpan(span, err)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Reload builds a fresh snapshot and swaps it in. On failure the previous
// snapshot stays in place.
func (s *SeasonService) Reload(ctx context.Context, leagueID string) (ReloadResult, error) {
	id, src, err := s.source(leagueID)
	if err != nil {
		return ReloadResult{}, err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Reload", id)
	startedAt := time.Now()
	snapshot, err := s.load(ctx, id, src)
	endUsecaseSpan(span, err)
	if err != nil {
		return ReloadResult{}, err
	}
	s.store.Set(ctx, id, snapshot)

	loadedAt, _ := s.store.StoredAt(id)
	return ReloadResult{
		LeagueID:   id,
		Teams:      snapshot.TeamCount(),
		Matches:    snapshot.Stats().Matches,
		LoadedAt:   loadedAt,
		DurationMs: time.Since(startedAt).Milliseconds(),
	}, nil
}

// Preload reloads every configured league on a bounded worker pool. A failed
// league is reported in the result and does not stop the others.
func (s *SeasonService) Preload(ctx context.Context) (PreloadResult, error) {
	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return PreloadResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	items := make(chan PreloadItem, len(s.feeds))
	var workers sync.WaitGroup
	for _, f := range s.feeds {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			startedAt := time.Now()
			item := PreloadItem{LeagueID: f.ID}
			if _, err := s.Reload(ctx, f.ID); err != nil {
				item.Error = err.Error()
				s.logger.WarnContext(ctx, "preload league failed", "league_id", f.ID, "error", err)
			}
			item.DurationMs = time.Since(startedAt).Milliseconds()
			items <- item
		}); err != nil {
			workers.Done()
			return PreloadResult{}, fmt.Errorf("submit preload task: %w", err)
		}
	}

	workers.Wait()
	close(items)

	var result PreloadResult
	for item := range items {
		if item.Error == "" {
			result.Loaded++
		} else {
			result.Failed++
		}
		result.Items = append(result.Items, item)
	}
	slices.SortFunc(result.Items, func(a, b PreloadItem) int { return strings.Compare(a.LeagueID, b.LeagueID) })

	s.logger.InfoContext(ctx, "preload finished", "loaded", result.Loaded, "failed", result.Failed)
	return result, nil
}

func (s *SeasonService) load(ctx context.Context, id string, src feed.Source) (*season.Season, error) {
	snapshot, err := feed.Load(ctx, src, s.logger.With("league_id", id))
	if err != nil {
		return nil, classifyLoadError(id, err)
	}
	return snapshot, nil
}

// classifyLoadError separates source outages from feeds that were read but
// cannot be ingested. The original error stays in the chain.
func classifyLoadError(id string, err error) error {
	switch {
	case errors.Is(err, feed.ErrSource):
		return fmt.Errorf("%w: load league=%s: %w", ErrDependencyUnavailable, id, err)
	case errors.Is(err, feed.ErrFeedFormat),
		errors.Is(err, season.ErrChronology),
		errors.Is(err, season.ErrUnknownTeam):
		return fmt.Errorf("%w: league=%s: %w", ErrSeasonUnusable, id, err)
	default:
		return fmt.Errorf("load league=%s: %w", id, err)
	}
}
