package locale

import (
	"os"
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// SystemLocale detects the user's locale. It returns "" when no usable
// locale can be determined, which the resolver treats as "skip the system
// locale steps", never as an error.
func SystemLocale() string {
	raw, err := golocale.GetLocale()
	if err != nil || raw == "" {
		raw = envLocale()
	}
	return canonical(raw)
}

// envLocale reads the locale from the POSIX environment, highest
// precedence variable first.
func envLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(key)
		if value == "" {
			continue
		}

		// Strip codeset and modifier (ex: de_DE.UTF-8@euro -> de_DE)
		if i := strings.Index(value, "."); i >= 0 {
			value = value[:i]
		}
		if i := strings.Index(value, "@"); i >= 0 {
			value = value[:i]
		}

		if value == "C" || value == "POSIX" {
			return ""
		}
		return value
	}

	return ""
}

// canonical normalizes a detected locale to a well-formed BCP 47 tag when
// possible. Identifiers the parser rejects are passed through unchanged so
// the resolver's own fallback steps still apply.
func canonical(id string) string {
	if id == "" {
		return ""
	}

	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return id
	}

	return tag.String()
}
