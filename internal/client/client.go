package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

// Config holds the configuration for the backend API client
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:5000/api",
		Timeout: 30 * time.Second,
	}
}

// Client is the typed HTTP client over the dashboard backend API.
// It never retries on its own; retry policy belongs to the caller.
type Client struct {
	httpClient *http.Client
	config     Config
}

// NewClient creates a new backend API client
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultConfig().BaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: Config{
			BaseURL: strings.TrimRight(config.BaseURL, "/"),
			Timeout: config.Timeout,
		},
	}
}

// Stats calls GET /dashboard/stats
func (c *Client) Stats(ctx context.Context) (*domain.StatsSnapshot, error) {
	var stats domain.StatsSnapshot
	if err := c.get(ctx, "/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Activity calls GET /dashboard/activity
func (c *Client) Activity(ctx context.Context, days int) ([]domain.ActivityDay, error) {
	path := "/dashboard/activity"
	if days > 0 {
		path += "?days=" + strconv.Itoa(days)
	}
	var activity []domain.ActivityDay
	if err := c.get(ctx, path, &activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Detections calls GET /detecciones. A non-positive limit leaves the
// choice to the server.
func (c *Client) Detections(ctx context.Context, limit int) ([]domain.Detection, error) {
	path := "/detecciones"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var detections []domain.Detection
	if err := c.get(ctx, path, &detections); err != nil {
		return nil, err
	}
	return detections, nil
}

// Events calls GET /eventos. Only unresolved events are returned;
// ordering is most recent first. A non-positive limit leaves the
// choice to the server.
func (c *Client) Events(ctx context.Context, limit int) ([]domain.Event, error) {
	path := "/eventos"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var events []domain.Event
	if err := c.get(ctx, path, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// People calls GET /personas
func (c *Client) People(ctx context.Context) ([]domain.Person, error) {
	var people []domain.Person
	if err := c.get(ctx, "/personas", &people); err != nil {
		return nil, err
	}
	return people, nil
}

// Config calls GET /configuracion
func (c *Client) Config(ctx context.Context) (*domain.SystemConfig, error) {
	var cfg domain.SystemConfig
	if err := c.get(ctx, "/configuracion", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveEvent calls POST /eventos/{id}/resolver, transitioning the
// event's resuelto flag server-side.
func (c *Client) ResolveEvent(ctx context.Context, id int64, notes string) error {
	path := fmt.Sprintf("/eventos/%d/resolver", id)
	return c.post(ctx, path, resolveRequest{Notes: notes}, nil)
}

// CreatePerson calls POST /personas with the captured photo and metadata.
func (c *Client) CreatePerson(ctx context.Context, req CreatePersonRequest) (*CreatePersonResult, error) {
	var result CreatePersonResult
	if err := c.post(ctx, "/personas", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateConfig calls POST /configuracion with a partial key/value update.
func (c *Client) UpdateConfig(ctx context.Context, updates map[string]any) error {
	return c.post(ctx, "/configuracion", updates, nil)
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, result)
}

// doRequest executes a single HTTP request and decodes the response
// envelope, normalizing every failure mode into *FetchError.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return &FetchError{Kind: KindDecode, Err: fmt.Errorf("marshal request: %w", err)}
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	url := c.config.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return &FetchError{Kind: KindTransport, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Kind: KindTransport, Err: fmt.Errorf("do request: %w", err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Kind: KindTransport, Err: fmt.Errorf("read response: %w", err)}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &FetchError{Kind: KindStatus, StatusCode: resp.StatusCode}
		}
		return &FetchError{Kind: KindDecode, Err: fmt.Errorf("decode envelope: %w", err)}
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" && resp.StatusCode >= 400 {
			return &FetchError{Kind: KindStatus, StatusCode: resp.StatusCode}
		}
		return &FetchError{Kind: KindRejected, StatusCode: resp.StatusCode, Message: msg}
	}

	if result != nil {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return &FetchError{Kind: KindDecode, Err: fmt.Errorf("decode data: %w", err)}
		}
	}

	return nil
}
