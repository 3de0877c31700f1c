package statsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/dadifc/teamstats/internal/platform/logging"
)

func TestTeamsClient_Lifecycle(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.Teams().Create(ctx, TeamCreate{Name: "Harbor FC", Coach: "Ma"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "#FF0000", created.Color)
	require.False(t, created.CreatedAt.IsZero())

	fetched, err := client.Teams().Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Harbor FC", fetched.Name)

	newCoach := "Lin"
	updated, err := client.Teams().Update(ctx, created.ID, TeamPatch{Coach: &newCoach})
	require.NoError(t, err)
	require.Equal(t, "Lin", updated.Coach)

	teams, err := client.Teams().List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)

	require.NoError(t, client.Teams().Delete(ctx, created.ID))

	_, err = client.Teams().Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestClient_MapsErrorStatuses(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Teams().Create(ctx, TeamCreate{Name: ""})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = client.Teams().Create(ctx, TeamCreate{Name: "Harbor FC"})
	require.NoError(t, err)
	_, err = client.Teams().Create(ctx, TeamCreate{Name: "Harbor FC"})
	require.ErrorIs(t, err, ErrConflict)

	_, err = client.Teams().Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.True(t, crerr.Is(err, ErrNotFound))
}

func TestMatchStatsClient_ReplaceAndBatch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	team, err := client.Teams().Create(ctx, TeamCreate{Name: "Harbor FC"})
	require.NoError(t, err)

	first, err := client.Matches().Create(ctx, MatchCreate{
		TeamID:      team.ID,
		Opponent:    "Dockside United",
		Date:        time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
		MatchType:   "home",
		MatchNature: "league",
		ScoreHome:   2,
		ScoreAway:   1,
	})
	require.NoError(t, err)

	second, err := client.Matches().Create(ctx, MatchCreate{
		TeamID:      team.ID,
		Opponent:    "River Town",
		Date:        time.Date(2026, 3, 21, 15, 0, 0, 0, time.UTC),
		MatchType:   "away",
		MatchNature: "friendly",
	})
	require.NoError(t, err)

	player, err := client.Players().Create(ctx, PlayerCreate{
		TeamID:   team.ID,
		Name:     "Chen Wei",
		Number:   9,
		Position: "forward",
		Birthday: time.Date(1998, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	saved, err := client.MatchStats().Replace(ctx, first.ID, []StatLine{
		{PlayerID: player.ID, PlayerName: player.Name, PlayerNumber: 9, IsPlaying: true, Goals: 2},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	require.Equal(t, 2, saved[0].Goals)

	byMatch, err := client.MatchStats().GetByMatches(ctx, []string{first.ID, second.ID})
	require.NoError(t, err)
	require.Len(t, byMatch[first.ID], 1)
	require.NotNil(t, byMatch[second.ID])
	require.Empty(t, byMatch[second.ID])
}

func TestClient_SurfacesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{BaseURL: srv.URL, Logger: logging.NewNop()})

	_, err := client.Teams().List(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "503")
	require.NotErrorIs(t, err, ErrNotFound)
	require.EqualValues(t, 1, calls.Load(), "a failed call is not retried")
}
