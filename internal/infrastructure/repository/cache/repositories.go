// Package cache wraps repositories with read-through caching. Reads go
// through GetOrLoad so concurrent misses collapse into one backend
// call; writes invalidate the touched keys.
package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/dadifc/teamstats/internal/domain/match"
	"github.com/dadifc/teamstats/internal/domain/matchstat"
	"github.com/dadifc/teamstats/internal/domain/player"
	"github.com/dadifc/teamstats/internal/domain/season"
	"github.com/dadifc/teamstats/internal/domain/team"
	basecache "github.com/dadifc/teamstats/internal/platform/cache"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	key := "team:list:" + pageKey(filter.Limit, filter.Skip)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	key := "team:name:" + name
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, teamID string, update team.Update) (bool, error) {
	updated, err := r.next.Update(ctx, teamID, update)
	if err != nil {
		return updated, err
	}
	if updated {
		r.cache.DeletePrefix(ctx, "team:")
	}
	return updated, nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, teamID)
	if err != nil {
		return deleted, err
	}
	if deleted {
		// Team deletion cascades, so dependent caches go stale too.
		r.cache.DeletePrefix(ctx, "team:")
		r.cache.DeletePrefix(ctx, "player:")
		r.cache.DeletePrefix(ctx, "match:")
		r.cache.DeletePrefix(ctx, "match-stats:")
		r.cache.DeletePrefix(ctx, "season:")
	}
	return deleted, nil
}

type cachedTeam struct {
	value  team.Team
	exists bool
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	key := "player:list:" + filter.TeamID + ":" + string(filter.Position) + ":" + pageKey(filter.Limit, filter.Skip)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	key := "player:id:" + playerID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayer{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayer)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, playerID string, update player.Update) (bool, error) {
	updated, err := r.next.Update(ctx, playerID, update)
	if err != nil {
		return updated, err
	}
	if updated {
		r.cache.DeletePrefix(ctx, "player:")
	}
	return updated, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, playerID)
	if err != nil {
		return deleted, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, "player:")
		r.cache.DeletePrefix(ctx, "match-stats:")
	}
	return deleted, nil
}

type cachedPlayer struct {
	value  player.Player
	exists bool
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	key := "match:list:" + filter.TeamID + ":" + string(filter.Status) + ":" + pageKey(filter.Limit, filter.Skip)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		out := make([]match.Match, 0, len(items))
		for _, item := range items {
			out = append(out, cloneMatch(item))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		out = append(out, cloneMatch(item))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	key := "match:id:" + matchID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return cachedMatch{value: cloneMatch(item), exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatch)
	return cloneMatch(cached.value), cached.exists, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, matchID string, update match.Update) (bool, error) {
	updated, err := r.next.Update(ctx, matchID, update)
	if err != nil {
		return updated, err
	}
	if updated {
		r.cache.DeletePrefix(ctx, "match:")
	}
	return updated, nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, matchID)
	if err != nil {
		return deleted, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, "match:")
		r.cache.DeletePrefix(ctx, "match-stats:")
	}
	return deleted, nil
}

type cachedMatch struct {
	value  match.Match
	exists bool
}

func cloneMatch(item match.Match) match.Match {
	out := item
	out.Videos = append([]string(nil), item.Videos...)
	return out
}

type StatRepository struct {
	next  matchstat.Repository
	cache *basecache.Store
}

func NewStatRepository(next matchstat.Repository, cache *basecache.Store) *StatRepository {
	return &StatRepository{next: next, cache: cache}
}

func (r *StatRepository) ListByMatch(ctx context.Context, matchID string) ([]matchstat.Stat, error) {
	key := "match-stats:match:" + matchID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByMatch(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return append([]matchstat.Stat(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]matchstat.Stat)
	return append([]matchstat.Stat(nil), items...), nil
}

func (r *StatRepository) ListByMatches(ctx context.Context, matchIDs []string) ([]matchstat.Stat, error) {
	ids := append([]string(nil), matchIDs...)
	sort.Strings(ids)
	key := "match-stats:batch:" + strings.Join(ids, ",")
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByMatches(ctx, matchIDs)
		if err != nil {
			return nil, err
		}
		return append([]matchstat.Stat(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]matchstat.Stat)
	return append([]matchstat.Stat(nil), items...), nil
}

func (r *StatRepository) ReplaceForMatch(ctx context.Context, matchID string, stats []matchstat.Stat) error {
	if err := r.next.ReplaceForMatch(ctx, matchID, stats); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match-stats:")
	return nil
}

func (r *StatRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	if err := r.next.DeleteByMatch(ctx, matchID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match-stats:")
	return nil
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) List(ctx context.Context, filter season.ListFilter) ([]season.Season, error) {
	key := "season:list:" + filter.TeamID + ":" + pageKey(filter.Limit, filter.Skip)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]season.Season(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]season.Season)
	return append([]season.Season(nil), items...), nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	key := "season:id:" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return cachedSeason{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeason)
	return cached.value, cached.exists, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "season:")
	return nil
}

func (r *SeasonRepository) Update(ctx context.Context, seasonID string, update season.Update) (bool, error) {
	updated, err := r.next.Update(ctx, seasonID, update)
	if err != nil {
		return updated, err
	}
	if updated {
		r.cache.DeletePrefix(ctx, "season:")
	}
	return updated, nil
}

func (r *SeasonRepository) Delete(ctx context.Context, seasonID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, seasonID)
	if err != nil {
		return deleted, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, "season:")
	}
	return deleted, nil
}

type cachedSeason struct {
	value  season.Season
	exists bool
}

func pageKey(limit, skip int) string {
	return strconv.Itoa(limit) + ":" + strconv.Itoa(skip)
}
