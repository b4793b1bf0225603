package connectors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
)

// Ensure Router implements the interface.
var _ driven.SchemeFetcher = (*Router)(nil)

// Router dispatches locators to the fetcher registered for their scheme.
type Router struct {
	mu       sync.RWMutex
	fetchers map[string]driven.DocumentFetcher
}

// NewRouter creates a router with the given fetchers registered.
func NewRouter(fetchers ...driven.SchemeFetcher) *Router {
	r := &Router{
		fetchers: make(map[string]driven.DocumentFetcher),
	}
	for _, f := range fetchers {
		r.Register(f)
	}
	return r
}

// Register binds a fetcher to each of its schemes.
// A later registration for the same scheme replaces the earlier one.
func (r *Router) Register(f driven.SchemeFetcher) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, scheme := range f.Schemes() {
		r.fetchers[strings.ToLower(scheme)] = f
	}
}

// Schemes returns the registered schemes in sorted order.
func (r *Router) Schemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schemes := make([]string, 0, len(r.fetchers))
	for scheme := range r.fetchers {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)
	return schemes
}

// Fetch retrieves the document using the fetcher for the locator's scheme.
func (r *Router) Fetch(ctx context.Context, locator string) (json.RawMessage, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return nil, fmt.Errorf("parse locator: %w", err)
	}

	scheme := strings.ToLower(u.Scheme)

	r.mu.RLock()
	f, ok := r.fetchers[scheme]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedScheme, scheme)
	}
	return f.Fetch(ctx, locator)
}
