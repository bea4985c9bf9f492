package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/leonelquinteros/gotext"
)

// Store serves translated page bodies laid out as <root>/<locale>/<page>.
// It performs no caching: pages only reload on a locale switch, so every
// call re-reads from storage.
type Store struct {
	root          string
	defaultLocale string
	read          func(path string) ([]byte, error)
}

// NewStore creates a page store over a content root
func NewStore(root, defaultLocale string) *Store {
	return &Store{
		root:          root,
		defaultLocale: defaultLocale,
		read:          os.ReadFile,
	}
}

// List enumerates the page identifiers shipped for the default locale.
// The set is fixed at startup; other locales may translate any subset.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, s.defaultLocale))
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	var pages []string
	for _, entry := range entries {
		if !entry.IsDir() {
			pages = append(pages, entry.Name())
		}
	}

	sort.Strings(pages)
	return pages, nil
}

// Load returns a page body for a locale. It never fails: a missing
// translation falls back to the default locale's copy, and a missing
// default falls back to a translated placeholder message.
func (s *Store) Load(localeID, page string) string {
	if body, err := s.read(filepath.Join(s.root, localeID, page)); err == nil {
		return string(body)
	}

	if body, err := s.read(filepath.Join(s.root, s.defaultLocale, page)); err == nil {
		return string(body)
	}

	return gotext.Get("Can't load page.")
}
