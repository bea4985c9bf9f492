package process

import (
	"fmt"
	"os/exec"

	"hello/internal/system"
)

// LaunchInstaller starts the system installer detached from this process.
// The installer owns its own lifecycle; we only report that the launch
// itself succeeded.
func LaunchInstaller(installerPath string) error {
	system.Info("Launching system installer:", installerPath)

	cmd := exec.Command(installerPath)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch installer: %w", err)
	}

	system.Info("Installer started, PID:", cmd.Process.Pid)
	return cmd.Process.Release()
}
