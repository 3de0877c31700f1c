package statsapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Match struct {
	ID          string    `json:"id"`
	TeamID      string    `json:"teamId"`
	Opponent    string    `json:"opponent"`
	Date        time.Time `json:"date"`
	MatchType   string    `json:"matchType"`
	MatchNature string    `json:"matchNature"`
	Location    string    `json:"location"`
	ScoreHome   int       `json:"scoreHome"`
	ScoreAway   int       `json:"scoreAway"`
	Status      string    `json:"status"`
	Videos      []string  `json:"videos"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MatchCreate struct {
	TeamID      string    `json:"teamId"`
	Opponent    string    `json:"opponent"`
	Date        time.Time `json:"date"`
	MatchType   string    `json:"matchType"`
	MatchNature string    `json:"matchNature"`
	Location    string    `json:"location,omitempty"`
	ScoreHome   int       `json:"scoreHome"`
	ScoreAway   int       `json:"scoreAway"`
	Status      string    `json:"status,omitempty"`
	Videos      []string  `json:"videos,omitempty"`
}

type MatchPatch struct {
	TeamID      *string    `json:"teamId,omitempty"`
	Opponent    *string    `json:"opponent,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	MatchType   *string    `json:"matchType,omitempty"`
	MatchNature *string    `json:"matchNature,omitempty"`
	Location    *string    `json:"location,omitempty"`
	ScoreHome   *int       `json:"scoreHome,omitempty"`
	ScoreAway   *int       `json:"scoreAway,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Videos      *[]string  `json:"videos,omitempty"`
}

type MatchListOptions struct {
	TeamID string
	Status string
	Limit  int
	Skip   int
}

type MatchesClient struct {
	client *Client
}

func (m *MatchesClient) List(ctx context.Context, opts MatchListOptions) ([]Match, error) {
	query := url.Values{}
	if opts.TeamID != "" {
		query.Set("teamId", opts.TeamID)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Skip > 0 {
		query.Set("skip", strconv.Itoa(opts.Skip))
	}

	var out []Match
	if err := m.client.getJSON(ctx, "/api/matches", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (m *MatchesClient) ListByTeam(ctx context.Context, teamID string) ([]Match, error) {
	var out []Match
	if err := m.client.getJSON(ctx, "/api/matches/by-team/"+url.PathEscape(teamID), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (m *MatchesClient) Get(ctx context.Context, matchID string) (Match, error) {
	var out Match
	if err := m.client.getJSON(ctx, "/api/matches/"+url.PathEscape(matchID), nil, &out); err != nil {
		return Match{}, err
	}

	return out, nil
}

func (m *MatchesClient) Create(ctx context.Context, input MatchCreate) (Match, error) {
	var out Match
	if err := m.client.sendJSON(ctx, http.MethodPost, "/api/matches", input, &out); err != nil {
		return Match{}, err
	}

	return out, nil
}

func (m *MatchesClient) Update(ctx context.Context, matchID string, patch MatchPatch) (Match, error) {
	var out Match
	if err := m.client.sendJSON(ctx, http.MethodPut, "/api/matches/"+url.PathEscape(matchID), patch, &out); err != nil {
		return Match{}, err
	}

	return out, nil
}

func (m *MatchesClient) Delete(ctx context.Context, matchID string) error {
	return m.client.sendJSON(ctx, http.MethodDelete, "/api/matches/"+url.PathEscape(matchID), nil, nil)
}
