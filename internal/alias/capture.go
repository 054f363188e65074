package alias

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/javiplav/terminal-command-menu/internal/history"
)

// DefaultTimeout bounds one alias discovery. A broken startup file must not
// hang the menu.
const DefaultTimeout = 10 * time.Second

// waitDelay bounds how long Wait blocks on output pipes held open by
// grandchildren after the shell itself has been killed.
const waitDelay = time.Second

// ErrUnsupportedShell is returned by Discover for unknown shell kinds.
var ErrUnsupportedShell = errors.New("unsupported shell")

// listingArgs returns the arguments that make an interactive shell source
// its startup file and print its aliases.
func listingArgs(kind history.ShellKind) ([]string, bool) {
	switch kind {
	case history.Bash:
		return []string{"-ic", "alias -p"}, true
	case history.Zsh:
		return []string{"-ic", "alias -L"}, true
	case history.Fish:
		return []string{"-ic", "alias; abbr --show"}, true
	default:
		return nil, false
	}
}

// Discover runs binary as an interactive shell of the given kind and parses
// its alias listing. The child runs in its own process group; when ctx ends
// or timeout expires, the whole group is killed.
func Discover(ctx context.Context, kind history.ShellKind, binary string, timeout time.Duration) (Table, error) {
	args, ok := listingArgs(kind)
	if !ok {
		return make(Table), fmt.Errorf("%w: %q", ErrUnsupportedShell, kind)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := runShellCommand(ctx, binary, args...)
	if err != nil {
		return make(Table), fmt.Errorf("%s alias discovery: %w", kind, err)
	}
	return Parse(kind, out), nil
}

// runShellCommand executes a command and returns its stdout output.
func runShellCommand(ctx context.Context, name string, args ...string) (string, error) {
	//nolint:gosec // G204: binary is the user's own shell, args come from listingArgs
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("exec %s: %w", name, ctxErr)
		}
		return "", fmt.Errorf("exec %s: %w (stderr: %s)", name, err, lastLine(stderr.String()))
	}
	return stdout.String(), nil
}

// lastLine returns the last non-empty line of s, which for a failing shell
// is usually the actual error.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
