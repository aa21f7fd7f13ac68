package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

type Handler struct {
	seasonService *usecase.SeasonService
	validator     *validator.Validate
}

func NewHandler(seasonService *usecase.SeasonService) *Handler {
	return &Handler{
		seasonService: seasonService,
		validator:     validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type leagueRequest struct {
	LeagueID string `validate:"required,max=64"`
}

type teamRequest struct {
	LeagueID string `validate:"required,max=64"`
	Team     string `validate:"required,max=128"`
}

type tableRequest struct {
	LeagueID string `validate:"required,max=64"`
	Kind     string `validate:"required,max=32"`
	Venue    string `validate:"omitempty,oneof=home away both overall all"`
	Sequence string `validate:"omitempty,max=32"`
	Current  string `validate:"omitempty,boolean"`
}

type resultsRequest struct {
	LeagueID string `validate:"required,max=64"`
	Date     string `validate:"omitempty,min=8,max=10"`
}

type attendanceRequest struct {
	LeagueID string `validate:"required,max=64"`
	Stat     string `validate:"omitempty,oneof=average highest lowest aggregate total"`
}

func queryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues := h.seasonService.Leagues(ctx)
	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeagueSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetLeagueSummary")
	defer span.End()

	req := leagueRequest{LeagueID: r.PathValue("leagueID")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.seasonService.Summary(ctx, req.LeagueID)
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "get league summary failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) GetLeagueOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetLeagueOverview")
	defer span.End()

	req := leagueRequest{LeagueID: r.PathValue("leagueID")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.seasonService.Overview(ctx, req.LeagueID)
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "get league overview failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(overview))
}

func (h *Handler) GetLeagueTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetLeagueTable")
	defer span.End()

	req := tableRequest{
		LeagueID: r.PathValue("leagueID"),
		Kind:     r.PathValue("kind"),
		Venue:    strings.ToLower(queryValue(r, "venue")),
		Sequence: queryValue(r, "sequence"),
		Current:  queryValue(r, "current"),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.seasonService.Table(ctx, req.LeagueID, usecase.TableInput{
		Kind:     req.Kind,
		Venue:    req.Venue,
		Sequence: req.Sequence,
		Current:  req.Current,
	})
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "get league table failed", "league_id", req.LeagueID, "kind", req.Kind, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tableToDTO(table))
}

func (h *Handler) ReloadLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ReloadLeague")
	defer span.End()

	req := leagueRequest{LeagueID: r.PathValue("leagueID")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.seasonService.Reload(ctx, req.LeagueID)
	if err != nil {
		loggerFromContext(ctx).ErrorContext(ctx, "reload league failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	loggerFromContext(ctx).InfoContext(ctx, "league reloaded",
		"league_id", result.LeagueID,
		"teams", result.Teams,
		"matches", result.Matches,
		"duration_ms", result.DurationMs,
	)
	writeSuccess(ctx, w, http.StatusOK, reloadDTO{
		LeagueID:   result.LeagueID,
		Teams:      result.Teams,
		Matches:    result.Matches,
		LoadedAt:   result.LoadedAt.UTC().Format(time.RFC3339),
		DurationMs: result.DurationMs,
	})
}
