package locale

import "strings"

// AssetCheck reports whether a translation catalog is installed for a locale.
type AssetCheck func(id string) bool

// Resolve picks the single locale to activate, in strict precedence order:
// an explicit saved choice backed by an installed catalog, the default
// locale when it was the saved choice, the territory-qualified system
// locale, the bare language code of the system locale, and finally the
// default locale, which is assumed to always ship a catalog.
//
// An empty or unusable system locale is not an error; resolution just
// falls through to the default.
func Resolve(saved, sysLocale, defaultLocale string, exists AssetCheck) string {
	if saved != "" && exists(saved) {
		return saved
	}

	if saved == defaultLocale {
		return defaultLocale
	}

	// Territory-qualified system locale (ex: en_US -> en-US)
	if candidate := Normalize(sysLocale); candidate != "" && exists(candidate) {
		return candidate
	}

	// Bare language code of the system locale (ex: en_US -> en)
	if len(sysLocale) >= 2 {
		if lang := sysLocale[:2]; exists(lang) {
			return lang
		}
	}

	return defaultLocale
}

// Normalize converts a locale identifier to the persisted hyphen form.
// Hyphen and underscore territory separators are equivalent on lookup, but
// only the hyphen form is ever saved or returned.
func Normalize(id string) string {
	return strings.ReplaceAll(id, "_", "-")
}
