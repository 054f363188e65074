//go:build !windows

package alias

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setProcessGroup starts the shell in a new process group and makes
// cancellation kill the whole group, so nothing the startup file spawned
// outlives the discovery.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		// Negative pid targets the group.
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
}
