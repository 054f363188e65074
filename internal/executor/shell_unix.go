//go:build !windows

package executor

import (
	"context"
	"os/exec"
)

const defaultShell = "/bin/sh"

func shellCommand(ctx context.Context, shell, command string) *exec.Cmd {
	//nolint:gosec // G204: the user picked this command from their own history
	return exec.CommandContext(ctx, shell, "-c", command)
}
