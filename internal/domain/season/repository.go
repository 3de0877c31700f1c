package season

import "context"

type ListFilter struct {
	TeamID string
	Limit  int
	Skip   int
}

// Repository describes season persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Season, error)
	GetByID(ctx context.Context, seasonID string) (Season, bool, error)
	Create(ctx context.Context, item Season) error
	Update(ctx context.Context, seasonID string, update Update) (bool, error)
	Delete(ctx context.Context, seasonID string) (bool, error)
}
