package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quizren/internal/quiz"
)

// defaultTimeout matches the upstream service's own client timeout.
const defaultTimeout = 30 * time.Second

// HTTPDoer abstracts HTTP clients so tests can intercept requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportError reports a non-success response from the quiz endpoint.
type TransportError struct {
	StatusCode int
	Body       string
}

// Error renders the failing status.
func (e *TransportError) Error() string {
	return fmt.Sprintf("quiz endpoint returned status %d", e.StatusCode)
}

// Client fetches quiz envelopes by item id from a fixed endpoint.
type Client struct {
	BaseURL string
	Client  HTTPDoer
}

// NewClient constructs a fetch client. A nil HTTP client falls back to a
// default with the upstream timeout.
func NewClient(baseURL string, client HTTPDoer) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}, nil
}

// Fetch retrieves the raw envelope for an item. The call is a plain
// idempotent GET; failures are terminal for the view and never retried here.
func (c *Client) Fetch(ctx context.Context, itemID string) (quiz.Envelope, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, fmt.Errorf("item id is required")
	}
	endpoint := c.BaseURL + "?nid=" + url.QueryEscape(itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quiz data: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read quiz response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var envelope quiz.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("malformed envelope: %w", err)
	}
	return envelope, nil
}
