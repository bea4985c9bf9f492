package autostart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OpError reports a failed registration mutation. After receiving one the
// caller must re-query IsEnabled rather than assume the toggle applied.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("autostart %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Manager toggles the start-on-login registration: a symlink in the
// desktop environment's autostart directory pointing at the desktop entry,
// mirrored best-effort by a launch directive in the i3 config file.
type Manager struct {
	desktopPath string
	linkPath    string
	i3Config    string
	directive   string
}

// NewManager creates an autostart manager. i3ConfigPath may be empty to
// skip the directive rewrite entirely.
func NewManager(desktopPath, linkPath, i3ConfigPath, appName string) *Manager {
	return &Manager{
		desktopPath: desktopPath,
		linkPath:    linkPath,
		i3Config:    i3ConfigPath,
		directive:   "exec --no-startup-id " + appName,
	}
}

// IsEnabled derives the registration state from the filesystem at call
// time. Nothing is cached between calls, so registrations added or removed
// behind the application's back are picked up on the next query.
func (m *Manager) IsEnabled() bool {
	_, err := os.Lstat(m.linkPath)
	return err == nil
}

// Set drives the registration to the desired state. Applying the same
// state twice is a no-op and never an error.
func (m *Manager) Set(desired bool) error {
	enabled := m.IsEnabled()

	switch {
	case desired && !enabled:
		if err := os.MkdirAll(filepath.Dir(m.linkPath), 0755); err != nil {
			return &OpError{Op: "register", Path: m.linkPath, Err: err}
		}
		if err := os.Symlink(m.desktopPath, m.linkPath); err != nil {
			return &OpError{Op: "register", Path: m.linkPath, Err: err}
		}
	case !desired && enabled:
		if err := os.Remove(m.linkPath); err != nil {
			return &OpError{Op: "unregister", Path: m.linkPath, Err: err}
		}
	}

	return m.rewriteI3(desired)
}

// rewriteI3 toggles the launch directive in the i3 config between its
// commented and uncommented form. A missing config file is not an error;
// the rewrite is a secondary, best-effort effect.
func (m *Manager) rewriteI3(desired bool) error {
	if m.i3Config == "" {
		return nil
	}

	data, err := os.ReadFile(m.i3Config)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &OpError{Op: "rewrite", Path: m.i3Config, Err: err}
	}

	updated := toggleDirective(string(data), m.directive, desired)
	if updated == string(data) {
		return nil
	}

	if err := writeFileAtomic(m.i3Config, []byte(updated)); err != nil {
		return &OpError{Op: "rewrite", Path: m.i3Config, Err: err}
	}

	return nil
}

// toggleDirective comments or uncomments every config line holding exactly
// the launch directive. Lines already in the desired state are left alone,
// so repeated toggles cannot stack comment markers.
func toggleDirective(content, directive string, enable bool) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case enable && trimmed == "#"+directive:
			lines[i] = strings.Replace(line, "#"+directive, directive, 1)
		case !enable && trimmed == directive:
			lines[i] = strings.Replace(line, directive, "#"+directive, 1)
		}
	}
	return strings.Join(lines, "\n")
}

// writeFileAtomic writes via a temp file in the same directory and renames
// it into place, so a failed write never leaves a truncated config behind.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}

	return nil
}
