//go:build windows

package executor

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
)

const defaultShell = "cmd.exe"

func shellCommand(ctx context.Context, shell, command string) *exec.Cmd {
	if strings.EqualFold(filepath.Base(shell), "cmd.exe") {
		// #nosec G204 -- the user picked this command from their own history.
		return exec.CommandContext(ctx, shell, "/C", command)
	}
	// #nosec G204 -- the user picked this command from their own history.
	return exec.CommandContext(ctx, shell, "-c", command)
}
