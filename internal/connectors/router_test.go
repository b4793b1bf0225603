package connectors

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/flowpack/internal/core/domain"
)

// stubFetcher implements driven.SchemeFetcher for testing.
type stubFetcher struct {
	schemes []string
	body    string
	calls   []string
}

func (s *stubFetcher) Schemes() []string { return s.schemes }

func (s *stubFetcher) Fetch(_ context.Context, locator string) (json.RawMessage, error) {
	s.calls = append(s.calls, locator)
	return json.RawMessage(s.body), nil
}

func TestRouter_Fetch_DispatchesByScheme(t *testing.T) {
	web := &stubFetcher{schemes: []string{"http", "https"}, body: `{"from":"web"}`}
	gh := &stubFetcher{schemes: []string{"github"}, body: `{"from":"github"}`}
	router := NewRouter(web, gh)

	body, err := router.Fetch(context.Background(), "https://example.com/a.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"web"}`, string(body))

	body, err = router.Fetch(context.Background(), "github://owner/repo/flow.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"github"}`, string(body))

	assert.Equal(t, []string{"https://example.com/a.json"}, web.calls)
	assert.Equal(t, []string{"github://owner/repo/flow.json"}, gh.calls)
}

func TestRouter_Fetch_SchemeCaseInsensitive(t *testing.T) {
	web := &stubFetcher{schemes: []string{"https"}, body: `[]`}
	router := NewRouter(web)

	_, err := router.Fetch(context.Background(), "HTTPS://example.com/a.json")
	require.NoError(t, err)
	assert.Len(t, web.calls, 1)
}

func TestRouter_Fetch_UnsupportedScheme(t *testing.T) {
	router := NewRouter(&stubFetcher{schemes: []string{"https"}})

	tests := []string{
		"ftp://example.com/a.json",
		"relative/path.json",
	}
	for _, locator := range tests {
		t.Run(locator, func(t *testing.T) {
			_, err := router.Fetch(context.Background(), locator)
			assert.ErrorIs(t, err, domain.ErrUnsupportedScheme)
		})
	}
}

func TestRouter_Fetch_ParseError(t *testing.T) {
	router := NewRouter()

	_, err := router.Fetch(context.Background(), "://bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse locator")
}

func TestRouter_Schemes(t *testing.T) {
	router := NewRouter(
		&stubFetcher{schemes: []string{"https", "http"}},
		&stubFetcher{schemes: []string{"GitHub"}},
	)

	assert.Equal(t, []string{"github", "http", "https"}, router.Schemes())
}

func TestRouter_Register_Replaces(t *testing.T) {
	first := &stubFetcher{schemes: []string{"https"}, body: `1`}
	second := &stubFetcher{schemes: []string{"https"}, body: `2`}
	router := NewRouter(first)
	router.Register(second)

	body, err := router.Fetch(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "2", string(body))
}
