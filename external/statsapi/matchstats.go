package statsapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type PlayerStat struct {
	ID             string    `json:"id"`
	MatchID        string    `json:"matchId"`
	PlayerID       string    `json:"playerId"`
	PlayerName     string    `json:"playerName"`
	PlayerNumber   int       `json:"playerNumber"`
	PlayerPosition string    `json:"playerPosition"`
	IsPlaying      bool      `json:"isPlaying"`
	Goals          int       `json:"goals"`
	Assists        int       `json:"assists"`
	CreatedAt      time.Time `json:"createdAt"`
}

// StatLine is one row of a match's stat sheet as sent to the API.
type StatLine struct {
	PlayerID       string `json:"playerId"`
	PlayerName     string `json:"playerName,omitempty"`
	PlayerNumber   int    `json:"playerNumber"`
	PlayerPosition string `json:"playerPosition,omitempty"`
	IsPlaying      bool   `json:"isPlaying"`
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
}

type MatchStatsClient struct {
	client *Client
}

func (s *MatchStatsClient) Get(ctx context.Context, matchID string) ([]PlayerStat, error) {
	var out []PlayerStat
	if err := s.client.getJSON(ctx, "/api/match-stats/"+url.PathEscape(matchID), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetByMatches fetches the stat sheets for every given match in one
// request. Matches without a sheet come back with an empty slice.
func (s *MatchStatsClient) GetByMatches(ctx context.Context, matchIDs []string) (map[string][]PlayerStat, error) {
	query := url.Values{}
	query.Set("matchIds", strings.Join(matchIDs, ","))

	var out map[string][]PlayerStat
	if err := s.client.getJSON(ctx, "/api/match-stats", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Replace swaps the whole stat sheet for a match.
func (s *MatchStatsClient) Replace(ctx context.Context, matchID string, lines []StatLine) ([]PlayerStat, error) {
	payload := struct {
		Stats []StatLine `json:"stats"`
	}{Stats: lines}

	var out []PlayerStat
	if err := s.client.sendJSON(ctx, http.MethodPost, "/api/match-stats/"+url.PathEscape(matchID), payload, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *MatchStatsClient) Delete(ctx context.Context, matchID string) error {
	return s.client.sendJSON(ctx, http.MethodDelete, "/api/match-stats/"+url.PathEscape(matchID), nil, nil)
}
