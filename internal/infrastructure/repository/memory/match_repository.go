package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dadifc/teamstats/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
	stats   *StatRepository
}

// NewMatchRepository mirrors the relational cascade: deleting a match
// drops its stat sheet from the injected stat repository.
func NewMatchRepository(stats *StatRepository) *MatchRepository {
	return &MatchRepository{
		matches: make(map[string]match.Match),
		stats:   stats,
	}
}

func (r *MatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, error) {
	r.mu.RLock()
	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if filter.TeamID != "" && item.TeamID != filter.TeamID {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		out = append(out, item)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	return paginate(out, filter.Limit, filter.Skip), nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[matchID]

	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[item.ID] = item

	return nil
}

func (r *MatchRepository) Update(_ context.Context, matchID string, update match.Update) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.matches[matchID]
	if !ok {
		return false, nil
	}

	if update.TeamID != nil {
		item.TeamID = *update.TeamID
	}
	if update.Opponent != nil {
		item.Opponent = *update.Opponent
	}
	if update.Date != nil {
		item.Date = *update.Date
	}
	if update.MatchType != nil {
		item.MatchType = *update.MatchType
	}
	if update.MatchNature != nil {
		item.MatchNature = *update.MatchNature
	}
	if update.Location != nil {
		item.Location = *update.Location
	}
	if update.ScoreHome != nil {
		item.ScoreHome = *update.ScoreHome
	}
	if update.ScoreAway != nil {
		item.ScoreAway = *update.ScoreAway
	}
	if update.Status != nil {
		item.Status = *update.Status
	}
	if update.Videos != nil {
		item.Videos = append([]string(nil), (*update.Videos)...)
	}
	item.UpdatedAt = nowUTC()
	r.matches[matchID] = item

	return true, nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) (bool, error) {
	r.mu.Lock()
	_, ok := r.matches[matchID]
	delete(r.matches, matchID)
	r.mu.Unlock()

	if ok && r.stats != nil {
		if err := r.stats.DeleteByMatch(ctx, matchID); err != nil {
			return ok, err
		}
	}

	return ok, nil
}

func (r *MatchRepository) deleteByTeam(ctx context.Context, teamID string) {
	r.mu.Lock()
	removed := make([]string, 0)
	for id, item := range r.matches {
		if item.TeamID == teamID {
			delete(r.matches, id)
			removed = append(removed, id)
		}
	}
	r.mu.Unlock()

	if r.stats == nil {
		return
	}
	for _, id := range removed {
		_ = r.stats.DeleteByMatch(ctx, id)
	}
}
