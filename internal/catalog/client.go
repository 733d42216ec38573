package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/merchlab/storefront-modal-api/pkg/logger"
)

// Fetcher is the read surface the rest of the service depends on.
type Fetcher interface {
	FetchByHandle(ctx context.Context, handle string) (*Product, error)
}

// cache is the optional read-through layer in front of the catalog endpoint.
// Satisfied by pkg/redis.Client.
type cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ProductKey(handle string) string
}

// missChecker lets the client distinguish cache misses from cache failures
// without importing the redis package.
type missChecker func(error) bool

// Client fetches product documents from the platform catalog by handle.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logg       *logger.Logger

	cache    cache
	cacheTTL time.Duration
	isMiss   missChecker
}

// ClientOption configures optional client behavior.
type ClientOption func(*Client)

// WithCache enables the read-through product cache.
func WithCache(c cache, ttl time.Duration, isMiss func(error) bool) ClientOption {
	return func(client *Client) {
		client.cache = c
		client.cacheTTL = ttl
		client.isMiss = isMiss
	}
}

// NewClient builds a catalog client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logg *logger.Logger, opts ...ClientOption) (*Client, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("catalog base url required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: timeout},
		logg:       logg,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FetchByHandle performs a single catalog read. Non-success responses map to
// ErrNotFound, network failures to TransportError; neither is retried.
func (c *Client) FetchByHandle(ctx context.Context, handle string) (*Product, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, fmt.Errorf("handle required: %w", ErrNotFound)
	}

	if raw, ok := c.cacheLookup(ctx, handle); ok {
		if product, err := ParseProduct(handle, raw); err == nil {
			return product, nil
		}
		// A stale or corrupt cache entry falls through to the catalog.
	}

	endpoint := fmt.Sprintf("%s/products/%s.js", c.baseURL, url.PathEscape(handle))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "catalog fetch", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "catalog read", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog returned status %d for %q: %w", resp.StatusCode, handle, ErrNotFound)
	}

	product, err := ParseProduct(handle, body)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrNotFound)
	}

	c.cacheStore(ctx, handle, body)
	return product, nil
}

func (c *Client) cacheLookup(ctx context.Context, handle string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	raw, err := c.cache.Get(ctx, c.cache.ProductKey(handle))
	if err != nil {
		if c.isMiss == nil || !c.isMiss(err) {
			c.warn(ctx, handle, "product cache read failed", err)
		}
		return nil, false
	}
	return []byte(raw), true
}

func (c *Client) cacheStore(ctx context.Context, handle string, raw []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, c.cache.ProductKey(handle), string(raw), c.cacheTTL); err != nil {
		c.warn(ctx, handle, "product cache write failed", err)
	}
}

func (c *Client) warn(ctx context.Context, handle, msg string, err error) {
	if c.logg == nil {
		return
	}
	ctx = c.logg.WithHandle(ctx, handle)
	ctx = c.logg.WithField(ctx, "cache_error", err.Error())
	c.logg.Warn(ctx, msg)
}
