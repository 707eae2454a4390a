//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// HideWindow starts cmd in its own process group so KillTree reaches its
// children. There is no console window to hide outside Windows.
func HideWindow(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}
