package player

import (
	"fmt"
	"time"
)

// Position is the single canonical position kept per player. Legacy
// records carried a two-slot positions array; importers collapse those
// to the first slot.
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Player is a rostered athlete on the tracked team.
type Player struct {
	ID        string
	TeamID    string
	Name      string
	Number    int
	Position  Position
	Birthday  time.Time
	Height    *int
	Weight    *int
	IsCaptain bool
	Photo     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Number < 0 {
		return fmt.Errorf("player number must not be negative")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}

// Update is a partial mutation; nil fields keep their stored value.
type Update struct {
	TeamID    *string
	Name      *string
	Number    *int
	Position  *Position
	Birthday  *time.Time
	Height    *int
	Weight    *int
	IsCaptain *bool
	Photo     *string
}

func (u Update) Empty() bool {
	return u.TeamID == nil &&
		u.Name == nil &&
		u.Number == nil &&
		u.Position == nil &&
		u.Birthday == nil &&
		u.Height == nil &&
		u.Weight == nil &&
		u.IsCaptain == nil &&
		u.Photo == nil
}
