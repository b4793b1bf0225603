package github

import (
	"fmt"
	"net/url"
	"strings"
)

// Scheme is the locator scheme handled by this package.
const Scheme = "github"

// Locator identifies one file in a GitHub repository.
type Locator struct {
	Owner string
	Repo  string
	// Ref is a branch, tag or commit SHA. Empty means the default branch.
	Ref  string
	Path string
}

// ParseLocator parses a github:// locator of the form
// github://owner/repo/path?ref=branch. Every path segment after the
// repository belongs to the file path.
func ParseLocator(raw string) (Locator, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Locator{}, fmt.Errorf("%w: %w", ErrInvalidLocator, err)
	}
	if !strings.EqualFold(u.Scheme, Scheme) {
		return Locator{}, fmt.Errorf("%w: scheme %q", ErrInvalidLocator, u.Scheme)
	}
	if u.Host == "" {
		return Locator{}, fmt.Errorf("%w: missing owner", ErrInvalidLocator)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" {
		return Locator{}, fmt.Errorf("%w: expected github://owner/repo/path", ErrInvalidLocator)
	}

	query := u.Query()
	if refs, ok := query["ref"]; ok && (len(refs) != 1 || refs[0] == "") {
		return Locator{}, fmt.Errorf("%w: ref must be given once and be non-empty", ErrInvalidLocator)
	}

	loc := Locator{
		Owner: u.Host,
		Repo:  parts[0],
		Ref:   query.Get("ref"),
		Path:  strings.Join(parts[1:], "/"),
	}
	if loc.Path == "" {
		return Locator{}, fmt.Errorf("%w: missing file path", ErrInvalidLocator)
	}
	return loc, nil
}

// String returns the canonical github:// form of the locator.
func (l Locator) String() string {
	s := fmt.Sprintf("%s://%s/%s/%s", Scheme, l.Owner, l.Repo, escapePath(l.Path))
	if l.Ref != "" {
		s += "?ref=" + url.QueryEscape(l.Ref)
	}
	return s
}

// WebURL returns the github.com page for the file.
func (l Locator) WebURL() string {
	ref := l.Ref
	if ref == "" {
		ref = "HEAD"
	}
	return fmt.Sprintf("https://github.com/%s/%s/blob/%s/%s", l.Owner, l.Repo, ref, escapePath(l.Path))
}

func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
