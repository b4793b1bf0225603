package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func githubResolver(locator string) string {
	if rest, ok := strings.CutPrefix(locator, "github://"); ok {
		return "https://github.com/" + rest
	}
	return ""
}

func TestLinkService_WebURL(t *testing.T) {
	s := NewLinkService(nil, githubResolver)

	tests := []struct {
		name    string
		locator string
		want    string
	}{
		{"resolver handles", "github://owner/repo/flow.json", "https://github.com/owner/repo/flow.json"},
		{"https passes through", "https://example.com/a.json", "https://example.com/a.json"},
		{"file uri", "file:///tmp/a.json", "/tmp/a.json"},
		{"plain path", "/tmp/a.json", "/tmp/a.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.WebURL(tt.locator))
		})
	}
}

func TestLinkService_Open(t *testing.T) {
	s := NewLinkService(githubResolver)
	var opened []string
	s.open = func(url string) error {
		opened = append(opened, url)
		return nil
	}

	require.NoError(t, s.Open(context.Background(), "github://o/r/f.json"))
	require.NoError(t, s.Open(context.Background(), "https://docs.example.com"))

	assert.Equal(t, []string{"https://github.com/o/r/f.json", "https://docs.example.com"}, opened)
}

func TestLinkService_Open_Errors(t *testing.T) {
	s := NewLinkService()
	s.open = func(string) error { return errors.New("no browser") }

	assert.Error(t, s.Open(context.Background(), "  "))
	assert.EqualError(t, s.Open(context.Background(), "https://x"), "no browser")
}

func TestLinkService_CopyToClipboard(t *testing.T) {
	s := NewLinkService()
	var copied string
	s.copy = func(text string) error {
		copied = text
		return nil
	}

	require.NoError(t, s.CopyToClipboard(context.Background(), "/tmp/pack.zip"))
	assert.Equal(t, "/tmp/pack.zip", copied)
	assert.Error(t, s.CopyToClipboard(context.Background(), ""))
}
