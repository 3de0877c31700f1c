package statsapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dadifc/teamstats/internal/infrastructure/repository/memory"
	"github.com/dadifc/teamstats/internal/interfaces/httpapi"
	idgen "github.com/dadifc/teamstats/internal/platform/id"
	"github.com/dadifc/teamstats/internal/platform/logging"
	"github.com/dadifc/teamstats/internal/usecase"
)

// newAPIHandler wires a full server on in-memory repositories so the
// client talks to the real routes.
func newAPIHandler(t *testing.T) http.Handler {
	t.Helper()

	statRepo := memory.NewStatRepository()
	playerRepo := memory.NewPlayerRepository(statRepo)
	matchRepo := memory.NewMatchRepository(statRepo)
	seasonRepo := memory.NewSeasonRepository()
	teamRepo := memory.NewTeamRepository(playerRepo, matchRepo, seasonRepo)

	ids := idgen.NewRandomGenerator()
	logger := logging.NewNop()
	handler := httpapi.NewHandler(
		usecase.NewTeamService(teamRepo, ids),
		usecase.NewPlayerService(playerRepo, teamRepo, ids),
		usecase.NewMatchService(matchRepo, teamRepo, ids),
		usecase.NewMatchStatService(statRepo, matchRepo, ids),
		usecase.NewSeasonService(seasonRepo, teamRepo, ids),
		usecase.NewMigrationService(teamRepo, playerRepo, matchRepo, statRepo, seasonRepo, ids),
		logger,
	)

	return httpapi.NewRouter(handler, logger, []string{"*"})
}

func newTestClient(t *testing.T) *Client {
	t.Helper()

	srv := httptest.NewServer(newAPIHandler(t))
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Logger:  logging.NewNop(),
	})
}
