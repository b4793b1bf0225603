package driving

import "context"

// LinkService opens the web pages associated with a flow pack.
// This is used by TUI, CLI, and MCP adapters.
type LinkService interface {
	// WebURL converts a locator to a browser-openable URL.
	WebURL(locator string) string

	// Open opens a URL or locator in the default browser.
	Open(ctx context.Context, target string) error

	// CopyToClipboard copies text to the system clipboard.
	CopyToClipboard(ctx context.Context, text string) error
}
