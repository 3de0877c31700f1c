package statsapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Player struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"teamId"`
	Name      string    `json:"name"`
	Number    int       `json:"number"`
	Position  string    `json:"position"`
	Birthday  time.Time `json:"birthday"`
	Height    *int      `json:"height,omitempty"`
	Weight    *int      `json:"weight,omitempty"`
	IsCaptain bool      `json:"isCaptain"`
	Photo     string    `json:"photo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PlayerCreate struct {
	TeamID    string    `json:"teamId"`
	Name      string    `json:"name"`
	Number    int       `json:"number"`
	Position  string    `json:"position"`
	Birthday  time.Time `json:"birthday"`
	Height    *int      `json:"height,omitempty"`
	Weight    *int      `json:"weight,omitempty"`
	IsCaptain bool      `json:"isCaptain"`
	Photo     string    `json:"photo,omitempty"`
}

type PlayerPatch struct {
	TeamID    *string    `json:"teamId,omitempty"`
	Name      *string    `json:"name,omitempty"`
	Number    *int       `json:"number,omitempty"`
	Position  *string    `json:"position,omitempty"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Height    *int       `json:"height,omitempty"`
	Weight    *int       `json:"weight,omitempty"`
	IsCaptain *bool      `json:"isCaptain,omitempty"`
	Photo     *string    `json:"photo,omitempty"`
}

// PlayerListOptions narrow the /api/players listing. Zero values are
// omitted from the query.
type PlayerListOptions struct {
	TeamID   string
	Position string
	Limit    int
	Skip     int
}

type PlayersClient struct {
	client *Client
}

func (p *PlayersClient) List(ctx context.Context, opts PlayerListOptions) ([]Player, error) {
	query := url.Values{}
	if opts.TeamID != "" {
		query.Set("teamId", opts.TeamID)
	}
	if opts.Position != "" {
		query.Set("position", opts.Position)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Skip > 0 {
		query.Set("skip", strconv.Itoa(opts.Skip))
	}

	var out []Player
	if err := p.client.getJSON(ctx, "/api/players", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (p *PlayersClient) ListByTeam(ctx context.Context, teamID string) ([]Player, error) {
	var out []Player
	if err := p.client.getJSON(ctx, "/api/players/by-team/"+url.PathEscape(teamID), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (p *PlayersClient) Get(ctx context.Context, playerID string) (Player, error) {
	var out Player
	if err := p.client.getJSON(ctx, "/api/players/"+url.PathEscape(playerID), nil, &out); err != nil {
		return Player{}, err
	}

	return out, nil
}

func (p *PlayersClient) Create(ctx context.Context, input PlayerCreate) (Player, error) {
	var out Player
	if err := p.client.sendJSON(ctx, http.MethodPost, "/api/players", input, &out); err != nil {
		return Player{}, err
	}

	return out, nil
}

func (p *PlayersClient) Update(ctx context.Context, playerID string, patch PlayerPatch) (Player, error) {
	var out Player
	if err := p.client.sendJSON(ctx, http.MethodPut, "/api/players/"+url.PathEscape(playerID), patch, &out); err != nil {
		return Player{}, err
	}

	return out, nil
}

func (p *PlayersClient) Delete(ctx context.Context, playerID string) error {
	return p.client.sendJSON(ctx, http.MethodDelete, "/api/players/"+url.PathEscape(playerID), nil, nil)
}
