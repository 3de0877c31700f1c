package team

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicateName surfaces the unique index on team names, whichever
// repository enforces it.
var ErrDuplicateName = errors.New("team name already exists")

// Defaults applied when a create omits the optional branding fields.
const (
	DefaultColor       = "#FF0000"
	DefaultFoundedYear = 2024
)

// Team is the club whose roster, matches and seasons the app tracks.
type Team struct {
	ID          string
	Name        string
	Logo        string
	Color       string
	FoundedYear int
	Coach       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// Update is a partial mutation; nil fields keep their stored value.
type Update struct {
	Name        *string
	Logo        *string
	Color       *string
	FoundedYear *int
	Coach       *string
}

func (u Update) Empty() bool {
	return u.Name == nil &&
		u.Logo == nil &&
		u.Color == nil &&
		u.FoundedYear == nil &&
		u.Coach == nil
}
