package team

import "context"

type ListFilter struct {
	Limit int
	Skip  int
}

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	Create(ctx context.Context, item Team) error
	Update(ctx context.Context, teamID string, update Update) (bool, error)
	Delete(ctx context.Context, teamID string) (bool, error)
}
