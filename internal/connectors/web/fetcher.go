// Package web implements a DocumentFetcher for plain http and https locators.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
)

// DefaultUserAgent is sent with every request.
const DefaultUserAgent = "flowpack/1.0"

// Config configures the fetcher.
type Config struct {
	// MaxBytes caps the response body. Default: domain.DefaultMaxBytes.
	MaxBytes int64

	// RequestsPerSecond throttles requests. Zero disables throttling.
	RequestsPerSecond float64

	// UserAgent sent with requests.
	UserAgent string

	// HTTPClient performs the requests. Default: a new http.Client.
	// Request deadlines come from the context, not the client.
	HTTPClient *http.Client
}

func (c *Config) defaults() {
	if c.MaxBytes <= 0 {
		c.MaxBytes = domain.DefaultMaxBytes
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
}

// Ensure Fetcher implements the interface.
var _ driven.SchemeFetcher = (*Fetcher)(nil)

// Fetcher retrieves JSON documents with HTTP GET.
type Fetcher struct {
	client      *http.Client
	config      Config
	rateLimiter *RateLimiter
}

// New creates a Fetcher.
func New(cfg Config) *Fetcher {
	cfg.defaults()
	return &Fetcher{
		client:      cfg.HTTPClient,
		config:      cfg,
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond),
	}
}

// Schemes returns the locator schemes handled by this fetcher.
func (f *Fetcher) Schemes() []string {
	return []string{"http", "https"}
}

// Fetch retrieves the JSON document at locator.
// Non-2xx responses, oversized bodies and bodies that are not valid JSON
// are errors.
func (f *Fetcher) Fetch(ctx context.Context, locator string) (json.RawMessage, error) {
	if err := f.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: locator}
	}

	// Read one byte past the limit to detect oversized bodies
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.config.MaxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", domain.ErrBodyTooLarge, f.config.MaxBytes)
	}

	if !json.Valid(body) {
		return nil, domain.ErrNotJSON
	}
	return json.RawMessage(body), nil
}
