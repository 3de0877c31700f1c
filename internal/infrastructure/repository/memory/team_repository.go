package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dadifc/teamstats/internal/domain/team"
)

type TeamRepository struct {
	mu      sync.RWMutex
	teams   map[string]team.Team
	players *PlayerRepository
	matches *MatchRepository
	seasons *SeasonRepository
}

// NewTeamRepository mirrors the relational cascades: deleting a team
// removes its players, matches (with stat sheets) and seasons.
func NewTeamRepository(players *PlayerRepository, matches *MatchRepository, seasons *SeasonRepository) *TeamRepository {
	return &TeamRepository{
		teams:   make(map[string]team.Team),
		players: players,
		matches: matches,
		seasons: seasons,
	}
}

func (r *TeamRepository) List(_ context.Context, filter team.ListFilter) ([]team.Team, error) {
	r.mu.RLock()
	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		out = append(out, item)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return paginate(out, filter.Limit, filter.Skip), nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]

	return item, ok, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teams {
		if item.Name == name {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

// Create enforces the unique team name the relational schema indexes.
func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.teams {
		if existing.Name == item.Name {
			return team.ErrDuplicateName
		}
	}
	r.teams[item.ID] = item

	return nil
}

func (r *TeamRepository) Update(_ context.Context, teamID string, update team.Update) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.teams[teamID]
	if !ok {
		return false, nil
	}

	if update.Name != nil {
		for id, existing := range r.teams {
			if id != teamID && existing.Name == *update.Name {
				return false, team.ErrDuplicateName
			}
		}
		item.Name = *update.Name
	}
	if update.Logo != nil {
		item.Logo = *update.Logo
	}
	if update.Color != nil {
		item.Color = *update.Color
	}
	if update.FoundedYear != nil {
		item.FoundedYear = *update.FoundedYear
	}
	if update.Coach != nil {
		item.Coach = *update.Coach
	}
	item.UpdatedAt = nowUTC()
	r.teams[teamID] = item

	return true, nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) (bool, error) {
	r.mu.Lock()
	_, ok := r.teams[teamID]
	delete(r.teams, teamID)
	r.mu.Unlock()

	if !ok {
		return false, nil
	}
	if r.players != nil {
		r.players.deleteByTeam(teamID)
	}
	if r.matches != nil {
		r.matches.deleteByTeam(ctx, teamID)
	}
	if r.seasons != nil {
		r.seasons.deleteByTeam(teamID)
	}

	return true, nil
}
