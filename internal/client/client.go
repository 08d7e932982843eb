// Package client is the request layer for the incident API: a typed HTTP
// client that mirrors the server's validation gate before dispatching, plus
// the view model the terminal frontend renders from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bissquit/incident-desk/internal/domain"
	"github.com/bissquit/incident-desk/internal/incidents"
)

// Client talks to the incident API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope mirrors the server's uniform response wrapper.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// Create validates the input locally with the same gate the server runs,
// then posts it. Invalid input never leaves the client.
func (c *Client) Create(ctx context.Context, input incidents.CreateIncidentInput) (*domain.Incident, error) {
	if v := incidents.ValidateCreate(input); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}

	var incident domain.Incident
	if err := c.do(ctx, http.MethodPost, "/api/incidents", input, &incident); err != nil {
		return nil, err
	}
	return &incident, nil
}

// List fetches all incidents, newest first. Status filtering is a view
// concern; see StatusFilter.
func (c *Client) List(ctx context.Context) ([]domain.Incident, error) {
	var list []domain.Incident
	if err := c.do(ctx, http.MethodGet, "/api/incidents", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Get fetches a single incident by id.
func (c *Client) Get(ctx context.Context, id string) (*domain.Incident, error) {
	var incident domain.Incident
	if err := c.do(ctx, http.MethodGet, "/api/incidents/"+id, nil, &incident); err != nil {
		return nil, err
	}
	return &incident, nil
}

// Update validates the provided fields locally, then patches the record.
// Only non-nil fields are sent and applied.
func (c *Client) Update(ctx context.Context, id string, input incidents.UpdateIncidentInput) (*domain.Incident, error) {
	if v := incidents.ValidateUpdate(input); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}

	var incident domain.Incident
	if err := c.do(ctx, http.MethodPatch, "/api/incidents/"+id, input, &incident); err != nil {
		return nil, err
	}
	return &incident, nil
}

// Close marks an incident closed. A nil endDate lets the server pick the
// close time.
func (c *Client) Close(ctx context.Context, id string, endDate *time.Time) (*domain.Incident, error) {
	body := map[string]string{}
	if endDate != nil {
		body["incidentEndDate"] = endDate.Format(time.RFC3339)
	}

	var incident domain.Incident
	if err := c.do(ctx, http.MethodPatch, "/api/incidents/"+id+"/close", body, &incident); err != nil {
		return nil, err
	}
	return &incident, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Message:     env.Message,
			FieldErrors: env.Errors,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
