//go:build windows

package alias

import "os/exec"

// setProcessGroup is a no-op on Windows; exec.CommandContext kills the
// shell process itself on cancellation.
func setProcessGroup(*exec.Cmd) {}
