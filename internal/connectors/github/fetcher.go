package github

import (
	"context"
	"encoding/json"

	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.SchemeFetcher = (*Fetcher)(nil)

// Fetcher retrieves JSON documents addressed by github:// locators.
type Fetcher struct {
	client   *Client
	maxBytes int64
}

// NewFetcher creates a fetcher using client.
// A non-positive maxBytes uses domain.DefaultMaxBytes.
func NewFetcher(client *Client, maxBytes int64) *Fetcher {
	if maxBytes <= 0 {
		maxBytes = domain.DefaultMaxBytes
	}
	return &Fetcher{
		client:   client,
		maxBytes: maxBytes,
	}
}

// Schemes returns the locator schemes handled by this fetcher.
func (f *Fetcher) Schemes() []string {
	return []string{Scheme}
}

// Fetch retrieves the JSON document at a github:// locator.
func (f *Fetcher) Fetch(ctx context.Context, locator string) (json.RawMessage, error) {
	loc, err := ParseLocator(locator)
	if err != nil {
		return nil, err
	}

	content, err := f.client.GetFile(ctx, loc, f.maxBytes)
	if err != nil {
		return nil, err
	}

	if !json.Valid(content) {
		return nil, domain.ErrNotJSON
	}
	return json.RawMessage(content), nil
}
