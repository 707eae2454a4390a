//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillTree kills a process and all its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	cmd := exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid))
	HideWindow(cmd)
	// Best-effort cleanup; Wait reports the outcome.
	_ = cmd.Run()
}
