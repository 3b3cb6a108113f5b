package articles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/verte-zerg/runcals/internal/model"
)

// DefaultBaseURL is the article service endpoint.
const DefaultBaseURL = "https://api-articles.runcals.com"

// DefaultTimeout bounds a single feed request.
const DefaultTimeout = 15 * time.Second

// ErrFetch reports that the remote feed could not be retrieved.
var ErrFetch = errors.New("failed to fetch articles")

// Fetcher retrieves the full remote article list.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.Article, error)
}

// Client reads the article service over HTTP.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient returns a client for baseURL. Empty values select the defaults.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type feedResponse struct {
	Articles []model.Article `json:"articles"`
}

// Fetch returns every article the service publishes.
func (c *Client) Fetch(ctx context.Context) ([]model.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/all-articles", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrFetch, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", ErrFetch, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status: %s", ErrFetch, resp.Status)
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", ErrFetch, err)
	}
	if payload.Articles == nil {
		payload.Articles = []model.Article{}
	}
	return payload.Articles, nil
}
