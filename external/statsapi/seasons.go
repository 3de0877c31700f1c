package statsapi

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

type Season struct {
	ID        string     `json:"id"`
	TeamID    string     `json:"teamId"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type SeasonCreate struct {
	TeamID    string     `json:"teamId"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

type SeasonPatch struct {
	Name      *string    `json:"name,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

type SeasonsClient struct {
	client *Client
}

func (s *SeasonsClient) ListByTeam(ctx context.Context, teamID string) ([]Season, error) {
	query := url.Values{}
	query.Set("teamId", teamID)

	var out []Season
	if err := s.client.getJSON(ctx, "/api/seasons", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *SeasonsClient) Get(ctx context.Context, seasonID string) (Season, error) {
	var out Season
	if err := s.client.getJSON(ctx, "/api/seasons/"+url.PathEscape(seasonID), nil, &out); err != nil {
		return Season{}, err
	}

	return out, nil
}

func (s *SeasonsClient) Create(ctx context.Context, input SeasonCreate) (Season, error) {
	var out Season
	if err := s.client.sendJSON(ctx, http.MethodPost, "/api/seasons", input, &out); err != nil {
		return Season{}, err
	}

	return out, nil
}

func (s *SeasonsClient) Update(ctx context.Context, seasonID string, patch SeasonPatch) (Season, error) {
	var out Season
	if err := s.client.sendJSON(ctx, http.MethodPut, "/api/seasons/"+url.PathEscape(seasonID), patch, &out); err != nil {
		return Season{}, err
	}

	return out, nil
}

func (s *SeasonsClient) Delete(ctx context.Context, seasonID string) error {
	return s.client.sendJSON(ctx, http.MethodDelete, "/api/seasons/"+url.PathEscape(seasonID), nil, nil)
}
