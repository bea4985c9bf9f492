package system

import (
	"os"
	"strings"
)

// LSBInfo holds the distribution fields read from an lsb-release file.
type LSBInfo struct {
	Codename string
	Release  string
}

// ReadLSBRelease parses an lsb-release file into codename and release.
// A missing or unparsable file yields placeholder values, never an error.
func ReadLSBRelease(path string) LSBInfo {
	info := LSBInfo{Codename: "unknown", Release: "0.0"}

	data, err := os.ReadFile(path)
	if err != nil {
		return info
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}

		key = strings.TrimPrefix(key, "DISTRIB_")
		value = strings.Trim(value, `"`)
		if value == "" {
			continue
		}

		switch key {
		case "CODENAME":
			info.Codename = value
		case "RELEASE":
			info.Release = value
		}
	}

	return info
}
