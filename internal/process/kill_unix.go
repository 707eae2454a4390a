//go:build !windows

package process

import "syscall"

// KillTree kills a process and all its children by sending SIGKILL to the
// process group (negative PID). Start puts children in their own group.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort cleanup; Wait reports the outcome.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
