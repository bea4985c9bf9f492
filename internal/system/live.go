package system

import "os"

// IsLiveSession reports whether the system is running from install media
// with a system installer available to launch.
func IsLiveSession(livePath, installerPath string) bool {
	if _, err := os.Stat(livePath); err != nil {
		return false
	}

	info, err := os.Stat(installerPath)
	return err == nil && info.Mode().IsRegular()
}
