package matchstat

import "context"

// Repository describes stat persistence needs from use cases. Stat
// sheets are replaced wholesale per match, never patched line by line.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Stat, error)
	ListByMatches(ctx context.Context, matchIDs []string) ([]Stat, error)
	ReplaceForMatch(ctx context.Context, matchID string, stats []Stat) error
	DeleteByMatch(ctx context.Context, matchID string) error
}
