package statsapi

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dadifc/teamstats/internal/platform/logging"
)

func TestTeamBootstrap_CreatesDefaultTeamOnce(t *testing.T) {
	client := newTestClient(t)
	bootstrap := NewTeamBootstrap(client, logging.NewNop())
	ctx := context.Background()

	const callers = 8
	results := make([]Team, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = bootstrap.EnsureDefaultTeam(ctx)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, results[0].ID, results[i].ID)
	}
	require.Equal(t, DefaultTeamName, results[0].Name)
	require.Equal(t, defaultTeamColor, results[0].Color)
	require.Equal(t, defaultTeamFoundedYear, results[0].FoundedYear)

	teams, err := client.Teams().List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
}

func TestTeamBootstrap_AdoptsExistingTeam(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	existing, err := client.Teams().Create(ctx, TeamCreate{
		Name:        DefaultTeamName,
		Color:       "#123456",
		FoundedYear: 2020,
	})
	require.NoError(t, err)

	bootstrap := NewTeamBootstrap(client, logging.NewNop())
	team, err := bootstrap.EnsureDefaultTeam(ctx)
	require.NoError(t, err)
	require.Equal(t, existing.ID, team.ID)
	require.Equal(t, "#123456", team.Color)

	teams, err := client.Teams().List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
}

func TestTeamBootstrap_RecoversFromStaleID(t *testing.T) {
	client := newTestClient(t)
	bootstrap := NewTeamBootstrap(client, logging.NewNop())
	ctx := context.Background()

	first, err := bootstrap.EnsureDefaultTeam(ctx)
	require.NoError(t, err)

	require.NoError(t, client.Teams().Delete(ctx, first.ID))

	second, err := bootstrap.EnsureDefaultTeam(ctx)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, DefaultTeamName, second.Name)
}
