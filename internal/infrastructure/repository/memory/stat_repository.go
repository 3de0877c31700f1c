package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dadifc/teamstats/internal/domain/matchstat"
)

type StatRepository struct {
	mu           sync.RWMutex
	statsByMatch map[string][]matchstat.Stat
}

func NewStatRepository() *StatRepository {
	return &StatRepository{statsByMatch: make(map[string][]matchstat.Stat)}
}

func (r *StatRepository) ListByMatch(_ context.Context, matchID string) ([]matchstat.Stat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortStats(append([]matchstat.Stat(nil), r.statsByMatch[matchID]...)), nil
}

func (r *StatRepository) ListByMatches(_ context.Context, matchIDs []string) ([]matchstat.Stat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchstat.Stat, 0)
	for _, matchID := range matchIDs {
		out = append(out, r.statsByMatch[matchID]...)
	}

	return sortStats(out), nil
}

func (r *StatRepository) ReplaceForMatch(_ context.Context, matchID string, stats []matchstat.Stat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(stats) == 0 {
		delete(r.statsByMatch, matchID)
		return nil
	}
	r.statsByMatch[matchID] = append([]matchstat.Stat(nil), stats...)

	return nil
}

func (r *StatRepository) DeleteByMatch(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.statsByMatch, matchID)

	return nil
}

func (r *StatRepository) deleteByPlayer(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for matchID, stats := range r.statsByMatch {
		kept := stats[:0]
		for _, item := range stats {
			if item.PlayerID != playerID {
				kept = append(kept, item)
			}
		}
		if len(kept) == 0 {
			delete(r.statsByMatch, matchID)
			continue
		}
		r.statsByMatch[matchID] = kept
	}
}

func sortStats(stats []matchstat.Stat) []matchstat.Stat {
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].MatchID != stats[j].MatchID {
			return stats[i].MatchID < stats[j].MatchID
		}
		return stats[i].PlayerNumber < stats[j].PlayerNumber
	})

	return stats
}
