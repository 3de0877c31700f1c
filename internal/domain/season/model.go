package season

import (
	"fmt"
	"time"
)

// Season is a labeled date range used to bucket matches for review.
// EndDate is nil while the season is still running.
type Season struct {
	ID        string
	TeamID    string
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.TeamID == "" {
		return fmt.Errorf("season team id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("season name is required")
	}
	if s.StartDate.IsZero() {
		return fmt.Errorf("season start date is required")
	}
	if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("season end date must not precede start date")
	}

	return nil
}

// Update is a partial mutation; nil fields keep their stored value.
type Update struct {
	Name      *string
	StartDate *time.Time
	EndDate   *time.Time
}

func (u Update) Empty() bool {
	return u.Name == nil && u.StartDate == nil && u.EndDate == nil
}
