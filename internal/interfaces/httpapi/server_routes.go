package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAPIRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("POST /api/teams", handler.CreateTeam)
	mux.HandleFunc("GET /api/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("PUT /api/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /api/teams/{teamID}", handler.DeleteTeam)

	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("POST /api/players", handler.CreatePlayer)
	mux.HandleFunc("GET /api/players/by-team/{teamID}", handler.ListPlayersByTeam)
	mux.HandleFunc("GET /api/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /api/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /api/players/{playerID}", handler.DeletePlayer)

	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("POST /api/matches", handler.CreateMatch)
	mux.HandleFunc("GET /api/matches/by-team/{teamID}", handler.ListMatchesByTeam)
	mux.HandleFunc("GET /api/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /api/matches/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /api/matches/{matchID}", handler.DeleteMatch)

	mux.HandleFunc("GET /api/match-stats", handler.GetStatsByMatches)
	mux.HandleFunc("GET /api/match-stats/{matchID}", handler.GetMatchStats)
	mux.HandleFunc("POST /api/match-stats/{matchID}", handler.SaveMatchStats)
	mux.HandleFunc("DELETE /api/match-stats/{matchID}", handler.DeleteMatchStats)

	mux.HandleFunc("GET /api/seasons", handler.ListSeasons)
	mux.HandleFunc("POST /api/seasons", handler.CreateSeason)
	mux.HandleFunc("GET /api/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("PUT /api/seasons/{seasonID}", handler.UpdateSeason)
	mux.HandleFunc("DELETE /api/seasons/{seasonID}", handler.DeleteSeason)

	mux.HandleFunc("POST /api/migrate", handler.Migrate)
}
