package httpapi

import (
	"net/http"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListTeams")
	defer span.End()

	req := leagueRequest{LeagueID: r.PathValue("leagueID")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.seasonService.Teams(ctx, req.LeagueID)
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "list teams failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nonNil(teams))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetTeam")
	defer span.End()

	req := teamRequest{LeagueID: r.PathValue("leagueID"), Team: r.PathValue("team")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.seasonService.Team(ctx, req.LeagueID, req.Team)
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "get team failed", "league_id", req.LeagueID, "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamDetailToDTO(detail))
}

func (h *Handler) GetTeamPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetTeamPositions")
	defer span.End()

	req := teamRequest{LeagueID: r.PathValue("leagueID"), Team: r.PathValue("team")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	positions, err := h.seasonService.TeamPositions(ctx, req.LeagueID, req.Team)
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "get team positions failed", "league_id", req.LeagueID, "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, positionsToDTO(positions))
}

func (h *Handler) GetTeamPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetTeamPoints")
	defer span.End()

	req := teamRequest{LeagueID: r.PathValue("leagueID"), Team: r.PathValue("team")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	points, highest, err := h.seasonService.TeamPoints(ctx, req.LeagueID, req.Team)
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "get team points failed", "league_id", req.LeagueID, "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamPointsDTO{Team: req.Team, Points: points, HighestPointsTotal: highest})
}
