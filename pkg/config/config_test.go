package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validPrefs = `{
	"default_locale": "en",
	"data_path": "/usr/share/hello/data/",
	"locale_path": "/usr/share/locale/",
	"save_path": "~/.config/hello.json",
	"autostart_path": "~/.config/autostart/hello.desktop",
	"desktop_path": "/usr/share/applications/hello.desktop",
	"live_path": "/run/miso/bootmnt",
	"installer_path": "/usr/bin/calamares",
	"urls": {"forum": "https://forum.example.org"}
}`

func writePrefs(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preferences.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPreferences(t *testing.T) {
	prefs, err := LoadPreferences(writePrefs(t, validPrefs))
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}

	if prefs.DefaultLocale != "en" {
		t.Errorf("DefaultLocale = %q", prefs.DefaultLocale)
	}
	if prefs.URLs["forum"] != "https://forum.example.org" {
		t.Errorf("URLs = %v", prefs.URLs)
	}
	if got := prefs.PagesPath(); got != "/usr/share/hello/data/pages" {
		t.Errorf("PagesPath() = %q", got)
	}
}

func TestLoadPreferencesMissingFileIsFatal(t *testing.T) {
	if _, err := LoadPreferences(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing preferences file")
	}
}

func TestLoadPreferencesMissingKey(t *testing.T) {
	body := strings.Replace(validPrefs, `"default_locale": "en",`, "", 1)
	_, err := LoadPreferences(writePrefs(t, body))
	if err == nil || !strings.Contains(err.Error(), "default_locale") {
		t.Errorf("err = %v, want missing default_locale", err)
	}
}

func TestApplyDevOverrides(t *testing.T) {
	prefs, err := LoadPreferences(writePrefs(t, validPrefs))
	if err != nil {
		t.Fatal(err)
	}

	prefs.ApplyDevOverrides()

	if prefs.DataPath != "data/" {
		t.Errorf("DataPath = %q", prefs.DataPath)
	}
	if prefs.LocalePath != "locale/" {
		t.Errorf("LocalePath = %q", prefs.LocalePath)
	}
	if !strings.HasSuffix(prefs.DesktopPath, AppName+".desktop") {
		t.Errorf("DesktopPath = %q", prefs.DesktopPath)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save", "hello.json")

	save := &SaveRecord{Locale: "de"}
	if err := save.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got := ReadSave(path)
	if got.Locale != "de" {
		t.Errorf("round trip Locale = %q, want de", got.Locale)
	}
}

func TestReadSaveMissingFile(t *testing.T) {
	save := ReadSave(filepath.Join(t.TempDir(), "absent.json"))
	if save == nil || save.Locale != "" {
		t.Errorf("missing save file should yield an empty record, got %+v", save)
	}
}

func TestReadSaveMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	save := ReadSave(path)
	if save == nil || save.Locale != "" {
		t.Errorf("malformed save file should yield an empty record, got %+v", save)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandHome("~/.config/hello.json"); got != filepath.Join(home, ".config/hello.json") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/etc/lsb-release"); got != "/etc/lsb-release" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := ExpandHome(""); got != "" {
		t.Errorf("empty path changed: %q", got)
	}
}
