package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/merchlab/storefront-modal-api/internal/catalog"
)

// LineItem is a (variant id, quantity) pair as the cart endpoint expects it.
type LineItem struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// Submitter is the write surface the session service depends on.
type Submitter interface {
	AddItems(ctx context.Context, items []LineItem) error
}

// SubmissionError reports a non-success response from the cart endpoint. The
// body is surfaced for diagnostics only and never parsed for structure.
type SubmissionError struct {
	Status int
	Body   string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("cart submission rejected with status %d: %s", e.Status, e.Body)
}

// Client submits line items to the platform cart endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a cart client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("cart base url required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type addRequest struct {
	Items []LineItem `json:"items"`
}

// AddItems posts the full line-item list in one request. Either every item is
// submitted or none are; there is no partial success.
func (c *Client) AddItems(ctx context.Context, items []LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("no line items to submit")
	}

	payload, err := json.Marshal(addRequest{Items: items})
	if err != nil {
		return fmt.Errorf("encoding cart payload: %w", err)
	}

	endpoint := c.baseURL + "/cart/add.js"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building cart request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &catalog.TransportError{Op: "cart submit", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if readErr != nil {
		body = []byte(fmt.Sprintf("<unreadable body: %v>", readErr))
	}
	return &SubmissionError{Status: resp.StatusCode, Body: string(body)}
}
