package matchstat

import (
	"fmt"
	"time"
)

// Stat is one player's line for one match. Player name, number and
// position are denormalized so a stat sheet renders without a roster
// lookup, and survives later roster edits as played.
type Stat struct {
	ID             string
	MatchID        string
	PlayerID       string
	PlayerName     string
	PlayerNumber   int
	PlayerPosition string
	IsPlaying      bool
	Goals          int
	Assists        int
	CreatedAt      time.Time
}

func (s Stat) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("stat id is required")
	}
	if s.MatchID == "" {
		return fmt.Errorf("stat match id is required")
	}
	if s.PlayerID == "" {
		return fmt.Errorf("stat player id is required")
	}
	if s.Goals < 0 {
		return fmt.Errorf("stat goals must not be negative")
	}
	if s.Assists < 0 {
		return fmt.Errorf("stat assists must not be negative")
	}

	return nil
}
