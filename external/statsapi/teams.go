package statsapi

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Logo        string    `json:"logo"`
	Color       string    `json:"color"`
	FoundedYear int       `json:"foundedYear"`
	Coach       string    `json:"coach"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TeamCreate struct {
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Color       string `json:"color,omitempty"`
	FoundedYear int    `json:"foundedYear,omitempty"`
	Coach       string `json:"coach,omitempty"`
}

// TeamPatch updates only the fields that are set.
type TeamPatch struct {
	Name        *string `json:"name,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Color       *string `json:"color,omitempty"`
	FoundedYear *int    `json:"foundedYear,omitempty"`
	Coach       *string `json:"coach,omitempty"`
}

type TeamsClient struct {
	client *Client
}

func (t *TeamsClient) List(ctx context.Context) ([]Team, error) {
	var out []Team
	if err := t.client.getJSON(ctx, "/api/teams", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (t *TeamsClient) Get(ctx context.Context, teamID string) (Team, error) {
	var out Team
	if err := t.client.getJSON(ctx, "/api/teams/"+url.PathEscape(teamID), nil, &out); err != nil {
		return Team{}, err
	}

	return out, nil
}

func (t *TeamsClient) Create(ctx context.Context, input TeamCreate) (Team, error) {
	var out Team
	if err := t.client.sendJSON(ctx, http.MethodPost, "/api/teams", input, &out); err != nil {
		return Team{}, err
	}

	return out, nil
}

func (t *TeamsClient) Update(ctx context.Context, teamID string, patch TeamPatch) (Team, error) {
	var out Team
	if err := t.client.sendJSON(ctx, http.MethodPut, "/api/teams/"+url.PathEscape(teamID), patch, &out); err != nil {
		return Team{}, err
	}

	return out, nil
}

func (t *TeamsClient) Delete(ctx context.Context, teamID string) error {
	return t.client.sendJSON(ctx, http.MethodDelete, "/api/teams/"+url.PathEscape(teamID), nil, nil)
}
