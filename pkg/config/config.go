package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppName is the installed name of the application, used for the gettext
// domain, the desktop entry and the window manager launch directive.
const AppName = "hello"

// Preferences is the read-only configuration record loaded once at startup.
// All fields are required; a missing preferences file is a fatal startup
// condition for the host command.
type Preferences struct {
	DefaultLocale string            `json:"default_locale"`
	DataPath      string            `json:"data_path"`
	LocalePath    string            `json:"locale_path"`
	SavePath      string            `json:"save_path"`
	AutostartPath string            `json:"autostart_path"`
	DesktopPath   string            `json:"desktop_path"`
	LivePath      string            `json:"live_path"`
	InstallerPath string            `json:"installer_path"`
	URLs          map[string]string `json:"urls"`
}

// SystemPreferencesPath is where an installed system ships the preferences file.
func SystemPreferencesPath() string {
	return fmt.Sprintf("/usr/share/%s/data/preferences.json", AppName)
}

// LoadPreferences reads and validates the preferences file
func LoadPreferences(path string) (*Preferences, error) {
	data, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	prefs := &Preferences{}
	if err := json.Unmarshal(data, prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}

	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preferences: %w", err)
	}

	return prefs, nil
}

// ApplyDevOverrides redirects all paths to a project-relative layout
// so the application can run from a source checkout.
func (p *Preferences) ApplyDevOverrides() {
	cwd, _ := os.Getwd()

	p.DataPath = "data/"
	p.LocalePath = "locale/"
	p.DesktopPath = filepath.Join(cwd, AppName+".desktop")
}

// Validate checks that every required preference key is present
func (p *Preferences) Validate() error {
	required := map[string]string{
		"default_locale": p.DefaultLocale,
		"data_path":      p.DataPath,
		"locale_path":    p.LocalePath,
		"save_path":      p.SavePath,
		"autostart_path": p.AutostartPath,
		"desktop_path":   p.DesktopPath,
		"live_path":      p.LivePath,
		"installer_path": p.InstallerPath,
	}

	for key, value := range required {
		if value == "" {
			return fmt.Errorf("missing required preference %q", key)
		}
	}

	return nil
}

// PagesPath returns the root directory of translated page content.
func (p *Preferences) PagesPath() string {
	return filepath.Join(p.DataPath, "pages")
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
