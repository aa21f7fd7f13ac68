package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/feed"
	feedmock "github.com/riskibarqy/football-stats/internal/mocks/feed"
	"github.com/riskibarqy/football-stats/internal/platform/cache"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

var premierLines = []string{
	"PRIZE|1|1|Champions",
	"RELEGATION|3|3|Relegated",
	"03082024|Ashford|2|Barnet|0|5100",
	"03082024|Crewe|1|Dover|1|2300",
	"10082024|Barnet|1|Crewe|3|1800",
	"10082024|Dover|0|Ashford|0",
}

func feedBody(lines ...string) func(context.Context) (io.ReadCloser, error) {
	return func(context.Context) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(strings.Join(lines, "\n"))), nil
	}
}

func newTestService(feeds ...LeagueFeed) *SeasonService {
	return NewSeasonService(feeds, cache.NewStore[*season.Season](0), logging.NewNop(), 2)
}

func mockSource(t *testing.T, name string) *feedmock.Source {
	src := feedmock.NewSource(t)
	src.On("Name").Return(name).Maybe()
	return src
}

func TestSeasonService_SnapshotIsCachedAfterFirstLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := mockSource(t, "premier.txt")
	src.On("Open", mock.Anything).Return(feedBody(premierLines...)).Once()

	service := newTestService(LeagueFeed{ID: "premier", Source: src})
	first, err := service.Snapshot(ctx, "premier")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	second, err := service.Snapshot(ctx, " PREMIER ")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if first != second {
		t.Fatalf("expected cached snapshot to be reused")
	}
	if first.TeamCount() != 4 {
		t.Fatalf("unexpected team count: %d", first.TeamCount())
	}
}

func TestSeasonService_ConcurrentSnapshotsShareOneLoad(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	src := mockSource(t, "premier.txt")
	src.On("Open", mock.Anything).Return(func(ctx context.Context) (io.ReadCloser, error) {
		<-release
		return feedBody(premierLines...)(ctx)
	}).Once()

	service := newTestService(LeagueFeed{ID: "premier", Source: src})

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Snapshot(context.Background(), "premier")
			errs <- err
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("snapshot: %v", err)
		}
	}
}

func TestSeasonService_UnknownAndEmptyLeague(t *testing.T) {
	t.Parallel()

	service := newTestService(LeagueFeed{ID: "premier", Source: feed.StaticSource{Lines: premierLines}})

	if _, err := service.Snapshot(context.Background(), "serie-a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.Snapshot(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeasonService_SourceFailureIsDependencyUnavailable(t *testing.T) {
	t.Parallel()

	src := mockSource(t, "https://feeds.example.com/premier.txt")
	src.On("Open", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	service := newTestService(LeagueFeed{ID: "premier", Source: src})
	_, err := service.Snapshot(context.Background(), "premier")
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if !errors.Is(err, feed.ErrSource) {
		t.Fatalf("expected feed.ErrSource in chain, got %v", err)
	}
	if errors.Is(err, ErrSeasonUnusable) {
		t.Fatalf("source failure must not be ErrSeasonUnusable")
	}
}

func TestSeasonService_BadFeedIsSeasonUnusable(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"format":       {"03082024|Ashford|two|Barnet|0"},
		"chronology":   {"10082024|Ashford|1|Barnet|0", "03082024|Crewe|1|Dover|0"},
		"unknown team": {"03082024|Ashford|1|Barnet|0", "AWARDED|Crewe|3"},
	}
	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			service := newTestService(LeagueFeed{ID: "premier", Source: feed.StaticSource{Lines: lines}})
			_, err := service.Snapshot(context.Background(), "premier")
			if !errors.Is(err, ErrSeasonUnusable) {
				t.Fatalf("expected ErrSeasonUnusable, got %v", err)
			}
			if errors.Is(err, ErrDependencyUnavailable) {
				t.Fatalf("bad feed must not be ErrDependencyUnavailable")
			}
		})
	}
}

func TestSeasonService_ReloadReplacesSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := mockSource(t, "premier.txt")
	src.On("Open", mock.Anything).Return(feedBody(premierLines[:4]...)).Once()
	src.On("Open", mock.Anything).Return(feedBody(premierLines...)).Once()

	service := newTestService(LeagueFeed{ID: "premier", Source: src})
	before, err := service.Snapshot(ctx, "premier")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if before.Stats().Matches != 2 {
		t.Fatalf("unexpected matches before reload: %d", before.Stats().Matches)
	}

	result, err := service.Reload(ctx, "premier")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if result.LeagueID != "premier" || result.Matches != 4 || result.Teams != 4 {
		t.Fatalf("unexpected reload result: %+v", result)
	}
	if result.LoadedAt.IsZero() {
		t.Fatalf("expected LoadedAt to be set")
	}

	after, err := service.Snapshot(ctx, "premier")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if after.Stats().Matches != 4 {
		t.Fatalf("unexpected matches after reload: %d", after.Stats().Matches)
	}
	if before.Stats().Matches != 2 {
		t.Fatalf("previous snapshot must stay unchanged")
	}
}

func TestSeasonService_FailedReloadKeepsPreviousSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := mockSource(t, "premier.txt")
	src.On("Open", mock.Anything).Return(feedBody(premierLines...)).Once()
	src.On("Open", mock.Anything).Return(nil, errors.New("timeout")).Once()

	service := newTestService(LeagueFeed{ID: "premier", Source: src})
	before, err := service.Snapshot(ctx, "premier")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if _, err := service.Reload(ctx, "premier"); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}

	after, err := service.Snapshot(ctx, "premier")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if after != before {
		t.Fatalf("expected previous snapshot to be served after failed reload")
	}
}

func TestSeasonService_PreloadReportsEachLeague(t *testing.T) {
	t.Parallel()

	broken := mockSource(t, "broken.txt")
	broken.On("Open", mock.Anything).Return(nil, errors.New("no such file")).Once()

	service := newTestService(
		LeagueFeed{ID: "premier", Source: feed.StaticSource{Lines: premierLines}},
		LeagueFeed{ID: "championship", Source: broken},
		LeagueFeed{ID: "league-one", Source: feed.StaticSource{Lines: premierLines[2:]}},
	)

	result, err := service.Preload(context.Background())
	if err != nil {
		t.Fatalf("preload: %v", err)
	}
	if result.Loaded != 2 || result.Failed != 1 {
		t.Fatalf("unexpected preload counts: %+v", result)
	}
	if len(result.Items) != 3 || result.Items[0].LeagueID != "championship" || result.Items[0].Error == "" {
		t.Fatalf("unexpected preload items: %+v", result.Items)
	}

	leagues := service.Leagues(context.Background())
	if len(leagues) != 3 {
		t.Fatalf("unexpected leagues: %+v", leagues)
	}
	for _, l := range leagues {
		if l.Loaded != (l.ID != "championship") {
			t.Fatalf("unexpected loaded flag for %s: %+v", l.ID, l)
		}
	}
}

func TestNewSeasonService_NormalisesAndDeduplicates(t *testing.T) {
	t.Parallel()

	service := newTestService(
		LeagueFeed{ID: " Premier ", Source: feed.StaticSource{Label: "a"}},
		LeagueFeed{ID: "premier", Source: feed.StaticSource{Label: "b"}},
		LeagueFeed{ID: "", Source: feed.StaticSource{}},
		LeagueFeed{ID: "bundesliga", Source: nil},
		LeagueFeed{ID: "championship", Source: feed.StaticSource{Label: "c"}},
	)

	leagues := service.Leagues(context.Background())
	if len(leagues) != 2 {
		t.Fatalf("unexpected leagues: %+v", leagues)
	}
	if leagues[0].ID != "championship" || leagues[1].ID != "premier" || leagues[1].Source != "a" {
		t.Fatalf("unexpected leagues: %+v", leagues)
	}
}
