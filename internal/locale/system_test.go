package locale

import "testing"

func TestEnvLocaleStripsCodesetAndModifier(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8@euro")

	if got := envLocale(); got != "de_DE" {
		t.Errorf("envLocale() = %q, want de_DE", got)
	}
}

func TestEnvLocalePrecedence(t *testing.T) {
	t.Setenv("LC_ALL", "fr_FR.UTF-8")
	t.Setenv("LC_MESSAGES", "it_IT")
	t.Setenv("LANG", "de_DE")

	if got := envLocale(); got != "fr_FR" {
		t.Errorf("envLocale() = %q, want fr_FR", got)
	}
}

func TestEnvLocaleCLocaleIsUnset(t *testing.T) {
	// The C locale carries no language; LANG further down must not win
	// over an explicit LC_ALL=C.
	t.Setenv("LC_ALL", "C")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE")

	if got := envLocale(); got != "" {
		t.Errorf("envLocale() = %q, want empty", got)
	}
}

func TestEnvLocaleEmptyEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")

	if got := envLocale(); got != "" {
		t.Errorf("envLocale() = %q, want empty", got)
	}
}

func TestCanonical(t *testing.T) {
	cases := map[string]string{
		"en_US": "en-US",
		"en-US": "en-US",
		"de":    "de",
		"":      "",
	}
	for in, want := range cases {
		if got := canonical(in); got != want {
			t.Errorf("canonical(%q) = %q, want %q", in, got, want)
		}
	}
}
