package httpapi

import (
	"net/http"
)

func (h *Handler) ListDates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListDates")
	defer span.End()

	req := leagueRequest{LeagueID: r.PathValue("leagueID")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	dates, err := h.seasonService.Dates(ctx, req.LeagueID)
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "list dates failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]string, 0, len(dates))
	for _, d := range dates {
		items = append(items, formatDate(d))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListResults")
	defer span.End()

	req := resultsRequest{LeagueID: r.PathValue("leagueID"), Date: queryValue(r, "date")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	day, results, err := h.seasonService.Results(ctx, req.LeagueID, req.Date)
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "list results failed", "league_id", req.LeagueID, "date", req.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultsDTO{
		LeagueID: req.LeagueID,
		Date:     formatDate(day),
		Results:  resultsToDTO(results),
	})
}

func (h *Handler) ListAttendances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListAttendances")
	defer span.End()

	req := attendanceRequest{LeagueID: r.PathValue("leagueID"), Stat: queryValue(r, "stat")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	stat, rows, err := h.seasonService.Attendances(ctx, req.LeagueID, req.Stat)
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "list attendances failed", "league_id", req.LeagueID, "stat", req.Stat, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, attendanceTableToDTO(req.LeagueID, stat, rows))
}

func (h *Handler) ListHighestAttendances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListHighestAttendances")
	defer span.End()

	req := leagueRequest{LeagueID: r.PathValue("leagueID")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	results, err := h.seasonService.HighestAttendances(ctx, req.LeagueID)
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "list highest attendances failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultsToDTO(results))
}

func (h *Handler) ListLowestAttendances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListLowestAttendances")
	defer span.End()

	req := leagueRequest{LeagueID: r.PathValue("leagueID")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	results, err := h.seasonService.LowestAttendances(ctx, req.LeagueID)
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "list lowest attendances failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultsToDTO(results))
}

func (h *Handler) GetSeasonRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetSeasonRecords")
	defer span.End()

	req := leagueRequest{LeagueID: r.PathValue("leagueID")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.seasonService.Records(ctx, req.LeagueID)
	if err != nil {
		loggerFromContext(ctx).WarnContext(ctx, "get season records failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonRecordsDTO{
		BiggestHomeWins:   resultsToDTO(records.BiggestHomeWins),
		BiggestAwayWins:   resultsToDTO(records.BiggestAwayWins),
		HighestAggregates: resultsToDTO(records.HighestAggregates),
	})
}
