package player

import "context"

type ListFilter struct {
	TeamID   string
	Position Position
	Limit    int
	Skip     int
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Create(ctx context.Context, item Player) error
	Update(ctx context.Context, playerID string, update Update) (bool, error)
	Delete(ctx context.Context, playerID string) (bool, error)
}
