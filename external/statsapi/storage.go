package statsapi

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/dadifc/teamstats/internal/platform/cache"
)

const (
	cacheKeyTeam    = "team:"
	cacheKeyPlayers = "players:team:"
	cacheKeyMatches = "matches:team:"
	cacheKeySeasons = "seasons:team:"
)

// Storage is a read-through cache over the API clients. Reads are
// cached per team with one shared TTL; writes go straight to the API
// and invalidate the affected prefix.
type Storage struct {
	client *Client
	store  *cache.Store
}

func NewStorage(client *Client, ttl time.Duration) *Storage {
	return &Storage{
		client: client,
		store:  cache.NewStore(ttl),
	}
}

// MatchWithStats is a match joined with its full stat sheet.
type MatchWithStats struct {
	Match
	PlayerStats []PlayerStat `json:"playerStats"`
}

// TeamOverview bundles everything the team dashboard renders.
type TeamOverview struct {
	Team    Team             `json:"team"`
	Players []Player         `json:"players"`
	Matches []MatchWithStats `json:"matches"`
	Seasons []Season         `json:"seasons"`
}

func (s *Storage) Team(ctx context.Context, teamID string) (Team, error) {
	value, err := s.store.GetOrLoad(ctx, cacheKeyTeam+teamID, func(ctx context.Context) (any, error) {
		return s.client.Teams().Get(ctx, teamID)
	})
	if err != nil {
		return Team{}, err
	}

	return castCached[Team](value)
}

func (s *Storage) PlayersByTeam(ctx context.Context, teamID string) ([]Player, error) {
	value, err := s.store.GetOrLoad(ctx, cacheKeyPlayers+teamID, func(ctx context.Context) (any, error) {
		return s.client.Players().ListByTeam(ctx, teamID)
	})
	if err != nil {
		return nil, err
	}

	return castCached[[]Player](value)
}

// MatchesByTeam returns a team's matches with stat sheets attached.
// The sheets for all matches come from a single batch request, so a
// cold read costs two round trips regardless of match count.
func (s *Storage) MatchesByTeam(ctx context.Context, teamID string) ([]MatchWithStats, error) {
	value, err := s.store.GetOrLoad(ctx, cacheKeyMatches+teamID, func(ctx context.Context) (any, error) {
		return s.loadMatchesWithStats(ctx, teamID)
	})
	if err != nil {
		return nil, err
	}

	return castCached[[]MatchWithStats](value)
}

func (s *Storage) loadMatchesWithStats(ctx context.Context, teamID string) ([]MatchWithStats, error) {
	matches, err := s.client.Matches().ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return []MatchWithStats{}, nil
	}

	matchIDs := make([]string, 0, len(matches))
	for _, item := range matches {
		matchIDs = append(matchIDs, item.ID)
	}

	statsByMatch, err := s.client.MatchStats().GetByMatches(ctx, matchIDs)
	if err != nil {
		return nil, err
	}

	out := make([]MatchWithStats, 0, len(matches))
	for _, item := range matches {
		stats := statsByMatch[item.ID]
		if stats == nil {
			stats = []PlayerStat{}
		}
		out = append(out, MatchWithStats{Match: item, PlayerStats: stats})
	}

	return out, nil
}

func (s *Storage) SeasonsByTeam(ctx context.Context, teamID string) ([]Season, error) {
	value, err := s.store.GetOrLoad(ctx, cacheKeySeasons+teamID, func(ctx context.Context) (any, error) {
		return s.client.Seasons().ListByTeam(ctx, teamID)
	})
	if err != nil {
		return nil, err
	}

	return castCached[[]Season](value)
}

// Overview fetches the four record families concurrently. Each branch
// still goes through the per-family cache.
func (s *Storage) Overview(ctx context.Context, teamID string) (TeamOverview, error) {
	var overview TeamOverview

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		team, err := s.Team(ctx, teamID)
		overview.Team = team
		return err
	})
	p.Go(func(ctx context.Context) error {
		players, err := s.PlayersByTeam(ctx, teamID)
		overview.Players = players
		return err
	})
	p.Go(func(ctx context.Context) error {
		matches, err := s.MatchesByTeam(ctx, teamID)
		overview.Matches = matches
		return err
	})
	p.Go(func(ctx context.Context) error {
		seasons, err := s.SeasonsByTeam(ctx, teamID)
		overview.Seasons = seasons
		return err
	})

	if err := p.Wait(); err != nil {
		return TeamOverview{}, err
	}

	return overview, nil
}

func (s *Storage) CreateMatch(ctx context.Context, input MatchCreate) (Match, error) {
	created, err := s.client.Matches().Create(ctx, input)
	if err != nil {
		return Match{}, err
	}
	s.store.DeletePrefix(ctx, cacheKeyMatches)

	return created, nil
}

func (s *Storage) UpdateMatch(ctx context.Context, matchID string, patch MatchPatch) (Match, error) {
	updated, err := s.client.Matches().Update(ctx, matchID, patch)
	if err != nil {
		return Match{}, err
	}
	s.store.DeletePrefix(ctx, cacheKeyMatches)

	return updated, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, matchID string) error {
	if err := s.client.Matches().Delete(ctx, matchID); err != nil {
		return err
	}
	s.store.DeletePrefix(ctx, cacheKeyMatches)

	return nil
}

// SaveMatchStats replaces a match's stat sheet and drops the cached
// match views that embedded the old sheet.
func (s *Storage) SaveMatchStats(ctx context.Context, matchID string, lines []StatLine) ([]PlayerStat, error) {
	stats, err := s.client.MatchStats().Replace(ctx, matchID, lines)
	if err != nil {
		return nil, err
	}
	s.store.DeletePrefix(ctx, cacheKeyMatches)

	return stats, nil
}

func (s *Storage) CreatePlayer(ctx context.Context, input PlayerCreate) (Player, error) {
	created, err := s.client.Players().Create(ctx, input)
	if err != nil {
		return Player{}, err
	}
	s.store.DeletePrefix(ctx, cacheKeyPlayers)

	return created, nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, playerID string, patch PlayerPatch) (Player, error) {
	updated, err := s.client.Players().Update(ctx, playerID, patch)
	if err != nil {
		return Player{}, err
	}
	s.store.DeletePrefix(ctx, cacheKeyPlayers)

	return updated, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, playerID string) error {
	if err := s.client.Players().Delete(ctx, playerID); err != nil {
		return err
	}
	s.store.DeletePrefix(ctx, cacheKeyPlayers)

	return nil
}

// InvalidateMatches drops every cached match view.
func (s *Storage) InvalidateMatches(ctx context.Context) {
	s.store.DeletePrefix(ctx, cacheKeyMatches)
}

// InvalidatePlayers drops every cached roster.
func (s *Storage) InvalidatePlayers(ctx context.Context) {
	s.store.DeletePrefix(ctx, cacheKeyPlayers)
}

// InvalidateAll drops the whole cache.
func (s *Storage) InvalidateAll(ctx context.Context) {
	s.store.Clear(ctx)
}

// SweepExpired eagerly evicts entries past their TTL.
func (s *Storage) SweepExpired(ctx context.Context) {
	s.store.ClearExpired(ctx)
}

func castCached[T any](value any) (T, error) {
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected cached value type %T", value)
	}

	return typed, nil
}
