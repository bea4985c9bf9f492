package ui

import (
	"fmt"
	"sort"

	"github.com/toqueteos/webbrowser"

	"hello/internal/system"
)

// OpenLink resolves a named URL from preferences and opens it in the
// user's default browser.
func OpenLink(name string, urls map[string]string) error {
	url, ok := urls[name]
	if !ok {
		return fmt.Errorf("unknown link %q", name)
	}

	system.Debug("Opening URL:", url)
	if err := webbrowser.Open(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

// LinkNames lists the configured link names, sorted.
func LinkNames(urls map[string]string) []string {
	names := make([]string, 0, len(urls))
	for name := range urls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
