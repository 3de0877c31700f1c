package match

import "context"

type ListFilter struct {
	TeamID string
	Status Status
	Limit  int
	Skip   int
}

// Repository describes match persistence needs from use cases.
// Deleting a match cascades to its player stat lines.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) error
	Update(ctx context.Context, matchID string, update Update) (bool, error)
	Delete(ctx context.Context, matchID string) (bool, error)
}
