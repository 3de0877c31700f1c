package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dadifc/teamstats/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
	stats   *StatRepository
}

// NewPlayerRepository mirrors the relational cascade: deleting a player
// removes their stat lines from the injected stat repository.
func NewPlayerRepository(stats *StatRepository) *PlayerRepository {
	return &PlayerRepository{
		players: make(map[string]player.Player),
		stats:   stats,
	}
}

func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter) ([]player.Player, error) {
	r.mu.RLock()
	out := make([]player.Player, 0, len(r.players))
	for _, item := range r.players {
		if filter.TeamID != "" && item.TeamID != filter.TeamID {
			continue
		}
		if filter.Position != "" && item.Position != filter.Position {
			continue
		}
		out = append(out, item)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Number != out[j].Number {
			return out[i].Number < out[j].Number
		}
		return out[i].ID < out[j].ID
	})

	return paginate(out, filter.Limit, filter.Skip), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[playerID]

	return item, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players[item.ID] = item

	return nil
}

func (r *PlayerRepository) Update(_ context.Context, playerID string, update player.Update) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.players[playerID]
	if !ok {
		return false, nil
	}

	if update.TeamID != nil {
		item.TeamID = *update.TeamID
	}
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Number != nil {
		item.Number = *update.Number
	}
	if update.Position != nil {
		item.Position = *update.Position
	}
	if update.Birthday != nil {
		item.Birthday = *update.Birthday
	}
	if update.Height != nil {
		item.Height = update.Height
	}
	if update.Weight != nil {
		item.Weight = update.Weight
	}
	if update.IsCaptain != nil {
		item.IsCaptain = *update.IsCaptain
	}
	if update.Photo != nil {
		item.Photo = *update.Photo
	}
	item.UpdatedAt = nowUTC()
	r.players[playerID] = item

	return true, nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) (bool, error) {
	r.mu.Lock()
	_, ok := r.players[playerID]
	delete(r.players, playerID)
	r.mu.Unlock()

	if ok && r.stats != nil {
		r.stats.deleteByPlayer(playerID)
	}

	return ok, nil
}

func (r *PlayerRepository) deleteByTeam(teamID string) {
	r.mu.Lock()
	removed := make([]string, 0)
	for id, item := range r.players {
		if item.TeamID == teamID {
			delete(r.players, id)
			removed = append(removed, id)
		}
	}
	r.mu.Unlock()

	if r.stats == nil {
		return
	}
	for _, id := range removed {
		r.stats.deleteByPlayer(id)
	}
}
