package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/summary", handler.GetLeagueSummary)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/overview", handler.GetLeagueOverview)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/tables/{kind}", handler.GetLeagueTable)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{team}", handler.GetTeam)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{team}/positions", handler.GetTeamPositions)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{team}/points", handler.GetTeamPoints)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/dates", handler.ListDates)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/results", handler.ListResults)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/attendances", handler.ListAttendances)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/attendances/highest", handler.ListHighestAttendances)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/attendances/lowest", handler.ListLowestAttendances)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/records", handler.GetSeasonRecords)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/leagues/{leagueID}/reload", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ReloadLeague)))
}
