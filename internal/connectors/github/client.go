package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/flowpack/internal/core/domain"
)

// Client wraps the go-github client with helper methods.
type Client struct {
	gh          *gh.Client
	http        *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates an unauthenticated GitHub API client.
// A nil httpClient uses a new http.Client without a timeout; request
// deadlines come from the context.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		gh:          gh.NewClient(httpClient),
		http:        httpClient,
		rateLimiter: NewRateLimiter(),
	}
}

// NewClientWithBaseURL creates a client against a different API root,
// such as GitHub Enterprise or a test server.
func NewClientWithBaseURL(httpClient *http.Client, baseURL string) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	c := NewClient(httpClient)
	c.gh.BaseURL = u
	return c, nil
}

// GitHub returns the underlying go-github client.
func (c *Client) GitHub() *gh.Client {
	return c.gh
}

// HTTPClient returns the HTTP client used for API calls and downloads.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// RateLimiter returns the client's rate limiter.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// GetFile returns the raw content of the file at loc. Files larger than
// maxBytes fail with domain.ErrBodyTooLarge.
func (c *Client) GetFile(ctx context.Context, loc Locator, maxBytes int64) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.RepositoryContentGetOptions{Ref: loc.Ref}
	file, _, resp, err := c.gh.Repositories.GetContents(ctx, loc.Owner, loc.Repo, loc.Path, opts)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, c.wrapError(err, "get contents")
	}
	if file == nil || file.GetType() != "file" {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, loc)
	}
	if int64(file.GetSize()) > maxBytes {
		return nil, tooLarge(maxBytes)
	}

	// Files over 1 MB come back without inline content
	if file.GetEncoding() == "none" || (file.Content == nil && file.GetDownloadURL() != "") {
		return c.download(ctx, file.GetDownloadURL(), maxBytes)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode contents: %w", err)
	}
	if int64(len(content)) > maxBytes {
		return nil, tooLarge(maxBytes)
	}
	return []byte(content), nil
}

// download fetches a file from its raw download URL, reading at most
// maxBytes of it.
func (c *Client) download(ctx context.Context, downloadURL string, maxBytes int64) ([]byte, error) {
	if downloadURL == "" {
		return nil, errors.New("github: file has no download URL")
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			URL:        downloadURL,
		}
	}

	// Read one byte past the limit to detect oversized bodies
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read download: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, tooLarge(maxBytes)
	}
	return data, nil
}

func tooLarge(maxBytes int64) error {
	return fmt.Errorf("%w: limit is %d bytes", domain.ErrBodyTooLarge, maxBytes)
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}
