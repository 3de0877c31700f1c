package statsapi

import (
	"context"
	"fmt"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/dadifc/teamstats/internal/platform/logging"
	"github.com/dadifc/teamstats/internal/platform/resilience"
)

// DefaultTeamName is the team every fresh install starts with.
const DefaultTeamName = "成都老爹队"

const (
	defaultTeamColor       = "#e53935"
	defaultTeamFoundedYear = 2024
)

// TeamBootstrap lazily creates the default team. Concurrent callers
// collapse into one lookup, so a cold start with parallel requests
// still ends up with exactly one team.
type TeamBootstrap struct {
	teams  *TeamsClient
	logger *logging.Logger
	flight resilience.SingleFlight

	mu     sync.RWMutex
	teamID string
}

func NewTeamBootstrap(client *Client, logger *logging.Logger) *TeamBootstrap {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamBootstrap{
		teams:  client.Teams(),
		logger: logger,
	}
}

// EnsureDefaultTeam returns the default team, creating it on first
// use. A stale cached id falls back to the full lookup.
func (b *TeamBootstrap) EnsureDefaultTeam(ctx context.Context) (Team, error) {
	if id := b.cachedID(); id != "" {
		team, err := b.teams.Get(ctx, id)
		if err == nil {
			return team, nil
		}
		if !crerr.Is(err, ErrNotFound) {
			return Team{}, err
		}
		b.setCachedID("")
	}

	value, err, _ := b.flight.Do("default-team", func() (any, error) {
		return b.findOrCreate(ctx)
	})
	if err != nil {
		return Team{}, err
	}

	team, ok := value.(Team)
	if !ok {
		return Team{}, fmt.Errorf("unexpected bootstrap result type %T", value)
	}
	b.setCachedID(team.ID)

	return team, nil
}

func (b *TeamBootstrap) findOrCreate(ctx context.Context) (Team, error) {
	if team, found, err := b.findByName(ctx); err != nil {
		return Team{}, err
	} else if found {
		return team, nil
	}

	team, err := b.teams.Create(ctx, TeamCreate{
		Name:        DefaultTeamName,
		Color:       defaultTeamColor,
		FoundedYear: defaultTeamFoundedYear,
	})
	if err == nil {
		b.logger.InfoContext(ctx, "default team created", "team_id", team.ID)
		return team, nil
	}
	if !crerr.Is(err, ErrConflict) {
		return Team{}, err
	}

	// A racing writer created it between our list and create.
	team, found, listErr := b.findByName(ctx)
	if listErr != nil {
		return Team{}, listErr
	}
	if !found {
		return Team{}, err
	}

	return team, nil
}

func (b *TeamBootstrap) findByName(ctx context.Context) (Team, bool, error) {
	teams, err := b.teams.List(ctx)
	if err != nil {
		return Team{}, false, err
	}

	for _, team := range teams {
		if team.Name == DefaultTeamName {
			return team, true, nil
		}
	}

	return Team{}, false, nil
}

func (b *TeamBootstrap) cachedID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.teamID
}

func (b *TeamBootstrap) setCachedID(id string) {
	b.mu.Lock()
	b.teamID = id
	b.mu.Unlock()
}
