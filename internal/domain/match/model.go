package match

import (
	"fmt"
	"time"
)

// Type says where the match is played relative to the tracked team.
type Type string

const (
	TypeHome Type = "home"
	TypeAway Type = "away"
)

// Nature is the competition class of the match.
type Nature string

const (
	NatureFriendly Nature = "friendly"
	NatureInternal Nature = "internal"
	NatureCup      Nature = "cup"
	NatureLeague   Nature = "league"
)

// Status tracks whether the final score is in.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

var (
	AllTypes = map[Type]struct{}{
		TypeHome: {},
		TypeAway: {},
	}
	AllNatures = map[Nature]struct{}{
		NatureFriendly: {},
		NatureInternal: {},
		NatureCup:      {},
		NatureLeague:   {},
	}
	AllStatuses = map[Status]struct{}{
		StatusCompleted: {},
		StatusPending:   {},
	}
)

// Match is one fixture played by the tracked team against an opponent.
type Match struct {
	ID          string
	TeamID      string
	Opponent    string
	Date        time.Time
	MatchType   Type
	MatchNature Nature
	Location    string
	ScoreHome   int
	ScoreAway   int
	Status      Status
	Videos      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.TeamID == "" {
		return fmt.Errorf("match team id is required")
	}
	if m.Opponent == "" {
		return fmt.Errorf("match opponent is required")
	}
	if _, ok := AllTypes[m.MatchType]; !ok {
		return fmt.Errorf("invalid match type: %s", m.MatchType)
	}
	if _, ok := AllNatures[m.MatchNature]; !ok {
		return fmt.Errorf("invalid match nature: %s", m.MatchNature)
	}
	if _, ok := AllStatuses[m.Status]; !ok {
		return fmt.Errorf("invalid match status: %s", m.Status)
	}
	if m.ScoreHome < 0 || m.ScoreAway < 0 {
		return fmt.Errorf("match scores must not be negative")
	}

	return nil
}

// Update is a partial mutation; nil fields keep their stored value.
type Update struct {
	TeamID      *string
	Opponent    *string
	Date        *time.Time
	MatchType   *Type
	MatchNature *Nature
	Location    *string
	ScoreHome   *int
	ScoreAway   *int
	Status      *Status
	Videos      *[]string
}

func (u Update) Empty() bool {
	return u.TeamID == nil &&
		u.Opponent == nil &&
		u.Date == nil &&
		u.MatchType == nil &&
		u.MatchNature == nil &&
		u.Location == nil &&
		u.ScoreHome == nil &&
		u.ScoreAway == nil &&
		u.Status == nil &&
		u.Videos == nil
}
