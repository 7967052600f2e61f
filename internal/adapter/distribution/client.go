// Package distribution is the HTTP client for the external
// prize-distribution service. The service periodically draws rewards from
// the handed-off pool; this client only queries its state and pushes
// updates.
package distribution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dreamfund/internal/core/domain"
)

// Client is a distribution service API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. timeout bounds every
// request; zero means 30 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type stateResponse struct {
	State string `json:"state"`
}

type updateRequest struct {
	Amount   int64    `json:"amount"`
	Pledgers []string `json:"pledgers"`
}

// request performs an HTTP request against the distribution service.
func (c *Client) request(ctx context.Context, method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// State queries the service's open/calculating state.
func (c *Client) State(ctx context.Context) (domain.DistributionState, error) {
	var resp stateResponse
	if err := c.request(ctx, http.MethodGet, "/api/v1/state", nil, &resp); err != nil {
		return "", err
	}
	st, ok := domain.ParseDistributionState(resp.State)
	if !ok {
		return "", fmt.Errorf("unknown distribution state %q", resp.State)
	}
	return st, nil
}

// Update transfers the prize pool value and the full pledger registry.
func (c *Client) Update(ctx context.Context, amount int64, pledgers []string) error {
	return c.request(ctx, http.MethodPost, "/api/v1/update", updateRequest{
		Amount:   amount,
		Pledgers: pledgers,
	}, nil)
}
