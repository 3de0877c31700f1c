package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dadifc/teamstats/internal/domain/team"
	"github.com/dadifc/teamstats/internal/infrastructure/repository/memory"
	"github.com/dadifc/teamstats/internal/platform/id"
)

func newTeamFixtures() (*TeamService, *memory.TeamRepository) {
	statRepo := memory.NewStatRepository()
	playerRepo := memory.NewPlayerRepository(statRepo)
	matchRepo := memory.NewMatchRepository(statRepo)
	seasonRepo := memory.NewSeasonRepository()
	teamRepo := memory.NewTeamRepository(playerRepo, matchRepo, seasonRepo)

	return NewTeamService(teamRepo, id.NewRandomGenerator()), teamRepo
}

func TestTeamService_CreateTeam_AppliesDefaults(t *testing.T) {
	svc, _ := newTeamFixtures()

	created, err := svc.CreateTeam(context.Background(), TeamCreateInput{Name: "  City Rovers  "})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "City Rovers", created.Name)
	require.Equal(t, team.DefaultColor, created.Color)
	require.Equal(t, team.DefaultFoundedYear, created.FoundedYear)
	require.False(t, created.CreatedAt.IsZero())
}

func TestTeamService_CreateTeam_RequiresName(t *testing.T) {
	svc, _ := newTeamFixtures()

	_, err := svc.CreateTeam(context.Background(), TeamCreateInput{Name: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamService_CreateTeam_DuplicateNameConflicts(t *testing.T) {
	svc, _ := newTeamFixtures()

	_, err := svc.CreateTeam(context.Background(), TeamCreateInput{Name: "City Rovers"})
	require.NoError(t, err)

	_, err = svc.CreateTeam(context.Background(), TeamCreateInput{Name: "City Rovers"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestTeamService_UpdateTeam_PartialUpdateKeepsOtherFields(t *testing.T) {
	svc, _ := newTeamFixtures()

	created, err := svc.CreateTeam(context.Background(), TeamCreateInput{
		Name:  "City Rovers",
		Coach: "A. Trainer",
	})
	require.NoError(t, err)

	newCoach := "B. Trainer"
	updated, err := svc.UpdateTeam(context.Background(), created.ID, team.Update{Coach: &newCoach})
	require.NoError(t, err)
	require.Equal(t, "City Rovers", updated.Name)
	require.Equal(t, newCoach, updated.Coach)
	require.Equal(t, created.Color, updated.Color)
}

func TestTeamService_UpdateTeam_EmptyUpdateRejected(t *testing.T) {
	svc, _ := newTeamFixtures()

	created, err := svc.CreateTeam(context.Background(), TeamCreateInput{Name: "City Rovers"})
	require.NoError(t, err)

	_, err = svc.UpdateTeam(context.Background(), created.ID, team.Update{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamService_GetTeam_NotFound(t *testing.T) {
	svc, _ := newTeamFixtures()

	_, err := svc.GetTeam(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_DeleteTeam(t *testing.T) {
	svc, _ := newTeamFixtures()

	created, err := svc.CreateTeam(context.Background(), TeamCreateInput{Name: "City Rovers"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTeam(context.Background(), created.ID))
	require.ErrorIs(t, svc.DeleteTeam(context.Background(), created.ID), ErrNotFound)
}
