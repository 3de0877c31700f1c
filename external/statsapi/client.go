// Package statsapi is the Go client for the team stats HTTP API. It
// wraps every resource route with typed calls, collapses duplicate
// in-flight reads, and retries transient transport failures.
package statsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dadifc/teamstats/internal/platform/logging"
	"github.com/dadifc/teamstats/internal/platform/resilience"
)

const (
	defaultTimeout   = 15 * time.Second
	maxResponseBytes = 6 << 20
)

// Sentinels mirror the API's error statuses so callers can branch with
// errors.Is instead of parsing messages.
var (
	ErrNotFound     = crerr.New("statsapi: resource not found")
	ErrInvalidInput = crerr.New("statsapi: invalid input")
	ErrConflict     = crerr.New("statsapi: conflict")
	ErrUnauthorized = crerr.New("statsapi: unauthorized")
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
	flight     resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		logger:     logger,
	}
}

func (c *Client) Teams() *TeamsClient           { return &TeamsClient{client: c} }
func (c *Client) Players() *PlayersClient       { return &PlayersClient{client: c} }
func (c *Client) Matches() *MatchesClient       { return &MatchesClient{client: c} }
func (c *Client) MatchStats() *MatchStatsClient { return &MatchStatsClient{client: c} }
func (c *Client) Seasons() *SeasonsClient       { return &SeasonsClient{client: c} }

// getJSON runs a GET and decodes the envelope's data field into
// target. Concurrent calls for the same path and query share one
// round trip.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	key := http.MethodGet + " " + path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}

	value, err, _ := c.flight.Do(key, func() (any, error) {
		return c.execute(ctx, http.MethodGet, path, query, nil)
	})
	if err != nil {
		return err
	}

	raw, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", value)
	}

	return decodePayload(raw, target)
}

// sendJSON runs a mutating request with an optional JSON body.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, target any) error {
	var body []byte
	if payload != nil {
		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)
		if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = append([]byte(nil), buf.Bytes()...)
	}

	raw, err := c.execute(ctx, method, path, nil, body)
	if err != nil {
		return err
	}

	return decodePayload(raw, target)
}

// execute issues exactly one attempt; callers own any retry policy.
func (c *Client) execute(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "request failed",
			"method", method,
			"path", path,
			"error", err,
		)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	return unwrapResponse(resp.StatusCode, raw)
}

// unwrapResponse splits the {"data": ..., "error": ...} envelope and
// maps non-2xx statuses to the package sentinels.
func unwrapResponse(status int, raw []byte) ([]byte, error) {
	var env struct {
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}
	if err := sonic.Unmarshal(raw, &env); err != nil {
		if status >= 200 && status < 300 {
			return nil, fmt.Errorf("decode response envelope: %w", err)
		}
		return nil, fmt.Errorf("server returned status %d", status)
	}

	if status >= 200 && status < 300 {
		return env.Data, nil
	}

	message := strings.TrimSpace(env.Error)
	if message == "" {
		message = http.StatusText(status)
	}

	switch status {
	case http.StatusBadRequest:
		return nil, crerr.Wrap(ErrInvalidInput, message)
	case http.StatusUnauthorized:
		return nil, crerr.Wrap(ErrUnauthorized, message)
	case http.StatusNotFound:
		return nil, crerr.Wrap(ErrNotFound, message)
	case http.StatusConflict:
		return nil, crerr.Wrap(ErrConflict, message)
	default:
		return nil, crerr.Newf("server returned status %d: %s", status, message)
	}
}

func decodePayload(raw []byte, target any) error {
	if target == nil || len(raw) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode response payload: %w", err)
	}

	return nil
}
