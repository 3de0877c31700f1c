package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/dadifc/teamstats/internal/infrastructure/repository/memory"
	"github.com/dadifc/teamstats/internal/platform/id"
	"github.com/dadifc/teamstats/internal/platform/logging"
	"github.com/dadifc/teamstats/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	statRepo := memory.NewStatRepository()
	playerRepo := memory.NewPlayerRepository(statRepo)
	matchRepo := memory.NewMatchRepository(statRepo)
	seasonRepo := memory.NewSeasonRepository()
	teamRepo := memory.NewTeamRepository(playerRepo, matchRepo, seasonRepo)
	ids := id.NewRandomGenerator()

	handler := NewHandler(
		usecase.NewTeamService(teamRepo, ids),
		usecase.NewPlayerService(playerRepo, teamRepo, ids),
		usecase.NewMatchService(matchRepo, teamRepo, ids),
		usecase.NewMatchStatService(statRepo, matchRepo, ids),
		usecase.NewSeasonService(seasonRepo, teamRepo, ids),
		usecase.NewMigrationService(teamRepo, playerRepo, matchRepo, statRepo, seasonRepo, ids),
		logging.NewNop(),
	)

	return NewRouter(handler, logging.NewNop(), nil)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func dataField(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected object data field, got: %s", rec.Body.String())
	return data
}

func dataList(t *testing.T, rec *httptest.ResponseRecorder) []any {
	t.Helper()

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].([]any)
	require.True(t, ok, "expected array data field, got: %s", rec.Body.String())
	return data
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", dataField(t, rec)["status"])
}

func TestRouter_TeamCRUD(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/teams", `{"name":"City Rovers","coach":"A. Trainer"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := dataField(t, rec)
	teamID, _ := created["id"].(string)
	require.NotEmpty(t, teamID)
	require.Equal(t, "City Rovers", created["name"])
	require.Equal(t, "#FF0000", created["color"])

	rec = doJSON(t, router, http.MethodGet, "/api/teams/"+teamID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/teams/"+teamID, `{"coach":"B. Trainer"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "B. Trainer", dataField(t, rec)["coach"])

	rec = doJSON(t, router, http.MethodGet, "/api/teams", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dataList(t, rec), 1)

	rec = doJSON(t, router, http.MethodDelete, "/api/teams/"+teamID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, dataField(t, rec)["success"])

	rec = doJSON(t, router, http.MethodGet, "/api/teams/"+teamID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_DuplicateTeamNameConflicts(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/teams", `{"name":"City Rovers"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/teams", `{"name":"City Rovers"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.NotEmpty(t, decodeEnvelope(t, rec)["error"])
}

func TestRouter_CreateTeamRejectsInvalidPayload(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/teams", `{"name":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/teams", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_PlayerLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/teams", `{"name":"City Rovers"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	teamID := dataField(t, rec)["id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/players",
		`{"teamId":"`+teamID+`","name":"Messi","number":10,"position":"forward","birthday":"1987-06-24T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	playerID := dataField(t, rec)["id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/players",
		`{"teamId":"`+teamID+`","name":"Nobody","number":5,"position":"sweeper","birthday":"1990-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/players/by-team/"+teamID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dataList(t, rec), 1)

	rec = doJSON(t, router, http.MethodPut, "/api/players/"+playerID, `{"number":30}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 30, dataField(t, rec)["number"])

	rec = doJSON(t, router, http.MethodDelete, "/api/players/"+playerID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/players/"+playerID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MatchStatsRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/teams", `{"name":"City Rovers"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	teamID := dataField(t, rec)["id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/matches",
		`{"teamId":"`+teamID+`","opponent":"Rivals","date":"2024-01-01T15:00:00Z","matchType":"home","matchNature":"league","scoreHome":3,"scoreAway":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	matchData := dataField(t, rec)
	matchID := matchData["id"].(string)
	require.Equal(t, "completed", matchData["status"])

	rec = doJSON(t, router, http.MethodPost, "/api/match-stats/"+matchID,
		`{"stats":[{"playerId":"p1","playerName":"Messi","playerNumber":10,"isPlaying":true,"goals":2,"assists":1}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dataList(t, rec), 1)

	rec = doJSON(t, router, http.MethodGet, "/api/match-stats/"+matchID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	sheet := dataList(t, rec)
	require.Len(t, sheet, 1)
	line := sheet[0].(map[string]any)
	require.EqualValues(t, 2, line["goals"])
	require.EqualValues(t, 1, line["assists"])

	rec = doJSON(t, router, http.MethodGet, "/api/match-stats?matchIds="+matchID+",missing", "")
	require.Equal(t, http.StatusOK, rec.Code)
	batch := dataField(t, rec)
	require.Len(t, batch[matchID], 1)
	missing, ok := batch["missing"].([]any)
	require.True(t, ok)
	require.Empty(t, missing)

	rec = doJSON(t, router, http.MethodDelete, "/api/matches/"+matchID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/match-stats/"+matchID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SeasonCRUD(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/teams", `{"name":"City Rovers"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	teamID := dataField(t, rec)["id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/seasons",
		`{"teamId":"`+teamID+`","name":"2024/25","startDate":"2024-08-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	seasonID := dataField(t, rec)["id"].(string)

	rec = doJSON(t, router, http.MethodPut, "/api/seasons/"+seasonID, `{"endDate":"2025-05-31T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, dataField(t, rec)["endDate"])

	rec = doJSON(t, router, http.MethodDelete, "/api/seasons/"+seasonID, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Migrate(t *testing.T) {
	router := newTestRouter(t)

	payload := `{
		"teams": [{"id": "t1", "name": "Legacy FC"}],
		"players": [{"id": "p1", "teamId": "t1", "name": "One", "number": 9, "positions": ["forward"], "birthday": "2000-01-01T00:00:00Z"}],
		"matches": [{
			"id": "m1", "teamId": "t1", "opponent": "United",
			"date": "2023-10-01T14:00:00Z", "matchType": "away", "matchNature": "cup",
			"playerStats": [{"id": "s1", "playerId": "p1", "playerName": "One", "playerNumber": 9, "goals": 1}]
		}]
	}`

	rec := doJSON(t, router, http.MethodPost, "/api/migrate", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data usecase.MigrationResult `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Data.Teams.Success)
	require.Equal(t, 1, body.Data.Players.Success)
	require.Equal(t, 1, body.Data.Matches.Success)
	require.Equal(t, 1, body.Data.MatchStats.Success)
	require.Equal(t, 4, body.Data.Summary.TotalSuccess)
	require.Zero(t, body.Data.Summary.TotalFailed)

	rec = doJSON(t, router, http.MethodGet, "/api/matches/by-team/t1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dataList(t, rec), 1)
}
