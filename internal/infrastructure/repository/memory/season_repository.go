package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dadifc/teamstats/internal/domain/season"
)

type SeasonRepository struct {
	mu      sync.RWMutex
	seasons map[string]season.Season
}

func NewSeasonRepository() *SeasonRepository {
	return &SeasonRepository{seasons: make(map[string]season.Season)}
}

func (r *SeasonRepository) List(_ context.Context, filter season.ListFilter) ([]season.Season, error) {
	r.mu.RLock()
	out := make([]season.Season, 0, len(r.seasons))
	for _, item := range r.seasons {
		if filter.TeamID != "" && item.TeamID != filter.TeamID {
			continue
		}
		out = append(out, item)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.After(out[j].StartDate)
		}
		return out[i].ID < out[j].ID
	})

	return paginate(out, filter.Limit, filter.Skip), nil
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.seasons[seasonID]

	return item, ok, nil
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seasons[item.ID] = item

	return nil
}

func (r *SeasonRepository) Update(_ context.Context, seasonID string, update season.Update) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.seasons[seasonID]
	if !ok {
		return false, nil
	}

	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.StartDate != nil {
		item.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		item.EndDate = update.EndDate
	}
	item.UpdatedAt = nowUTC()
	r.seasons[seasonID] = item

	return true, nil
}

func (r *SeasonRepository) Delete(_ context.Context, seasonID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.seasons[seasonID]
	delete(r.seasons, seasonID)

	return ok, nil
}

func (r *SeasonRepository) deleteByTeam(teamID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.seasons {
		if item.TeamID == teamID {
			delete(r.seasons, id)
		}
	}
}
