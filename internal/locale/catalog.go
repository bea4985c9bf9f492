package locale

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Catalog locates and activates compiled translation catalogs laid out as
// <root>/<locale>/LC_MESSAGES/<domain>.mo.
type Catalog struct {
	root   string
	domain string
}

// NewCatalog creates a catalog over a locale root directory
func NewCatalog(root, domain string) *Catalog {
	return &Catalog{
		root:   root,
		domain: domain,
	}
}

// HasLocale reports whether a compiled catalog is installed for the locale.
// Both separator spellings of a territory-qualified identifier are probed.
func (c *Catalog) HasLocale(id string) bool {
	return c.dirFor(id) != ""
}

// Activate configures the process-wide gettext domain for the locale.
// Activating a locale without a catalog leaves gotext serving untranslated
// strings, which is the degraded behavior the resolver already guards.
func (c *Catalog) Activate(id string) {
	dir := c.dirFor(id)
	if dir == "" {
		dir = id
	}
	gotext.Configure(c.root, dir, c.domain)
}

// Available enumerates the locales that actually ship a catalog, sorted.
func (c *Catalog) Available() []string {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil
	}

	var locales []string
	for _, entry := range entries {
		if entry.IsDir() && c.HasLocale(entry.Name()) {
			locales = append(locales, entry.Name())
		}
	}

	sort.Strings(locales)
	return locales
}

// dirFor returns the on-disk directory name holding the locale's catalog,
// or "" when none is installed.
func (c *Catalog) dirFor(id string) string {
	if id == "" {
		return ""
	}

	for _, dir := range separatorForms(id) {
		path := filepath.Join(c.root, dir, "LC_MESSAGES", c.domain+".mo")
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return dir
		}
	}

	return ""
}

// separatorForms lists the candidate directory spellings of an identifier
func separatorForms(id string) []string {
	hyphen := strings.ReplaceAll(id, "_", "-")
	underscore := strings.ReplaceAll(id, "-", "_")
	if hyphen == underscore {
		return []string{id}
	}
	return []string{hyphen, underscore}
}

// DisplayName returns the locale's self-described language name for the
// language selector, falling back to the raw identifier.
func DisplayName(id string) string {
	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return id
	}
	return display.Self.Name(tag)
}
