package services

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
	"github.com/custodia-labs/flowpack/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure LinkService implements the interface.
var _ driving.LinkService = (*LinkService)(nil)

// LinkService opens documentation and flow pages in the browser.
type LinkService struct {
	resolvers []driven.WebURLResolver

	open func(url string) error
	copy func(text string) error
}

// NewLinkService creates a link service.
// Resolvers are tried in order; the first non-empty result wins.
func NewLinkService(resolvers ...driven.WebURLResolver) *LinkService {
	return &LinkService{
		resolvers: resolvers,
		open:      openURL,
		copy:      copyToClipboard,
	}
}

// WebURL converts a locator to a browser-openable URL.
func (s *LinkService) WebURL(locator string) string {
	for _, resolve := range s.resolvers {
		if resolve == nil {
			continue
		}
		if resolved := resolve(locator); resolved != "" {
			return resolved
		}
	}
	return convertToOpenableURL(locator)
}

// Open opens a URL or locator in the default browser.
func (s *LinkService) Open(_ context.Context, target string) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("target is empty")
	}
	return s.open(s.WebURL(target))
}

// CopyToClipboard copies text to the system clipboard.
func (s *LinkService) CopyToClipboard(_ context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("nothing to copy")
	}
	return s.copy(text)
}

// openURL opens a URL/path using the system default handler.
func openURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("open", url)
	case osLinux:
		cmd = exec.Command("xdg-open", url)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// convertToOpenableURL converts locators no resolver handled.
func convertToOpenableURL(locator string) string {
	// File URIs: file:///path/to/file -> /path/to/file (for local opening)
	if strings.HasPrefix(locator, "file://") {
		return strings.TrimPrefix(locator, "file://")
	}

	// HTTP/HTTPS URLs and local paths pass through as-is
	return locator
}

// copyToClipboard copies text to the system clipboard using OS-specific commands.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("pbcopy")
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("no clipboard utility found (install xclip or xsel)")
		}
	case osWindows:
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
