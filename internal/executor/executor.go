// Package executor runs a command chosen from the menu: aliases are
// expanded, the safety gate is consulted, the run is recorded and the
// command is handed to the user's shell.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/javiplav/terminal-command-menu/internal/alias"
	"github.com/javiplav/terminal-command-menu/internal/history"
	"github.com/javiplav/terminal-command-menu/internal/sanitize"
	"github.com/javiplav/terminal-command-menu/internal/storage"
)

// AliasSource supplies the alias table for a shell.
type AliasSource interface {
	Resolve(ctx context.Context, kind history.ShellKind) alias.Table
}

// Recorder stores executions and their outcome.
type Recorder interface {
	RecordExecution(ctx context.Context, e *storage.Execution) (int64, error)
	UpdateExitCode(ctx context.Context, id int64, exitCode int, durationMs int64) error
}

// Executor runs selected commands. The zero value runs commands through
// $SHELL (or /bin/sh) with the built-in deny-list and no alias expansion.
type Executor struct {
	Aliases   AliasSource // nil disables alias expansion
	ShellKind history.ShellKind
	Gate      *sanitize.Gate // nil uses the built-in deny-list
	Recorder  Recorder       // nil disables recording
	SessionID string
	Shell     string // Shell binary; empty uses $SHELL, then /bin/sh
	Dir       string // Working directory; empty inherits
	Logger    *slog.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Result describes a finished execution.
type Result struct {
	Command  string // As selected
	Expanded string // What the shell ran
	ExitCode int
	Duration time.Duration
}

// Prepare expands aliases in cmd and runs the safety gate over both the
// selected and the expanded text. A denied command yields a
// *sanitize.DeniedError.
func (e *Executor) Prepare(ctx context.Context, cmd string) (string, error) {
	cmd = strings.TrimSpace(cmd)
	expanded := cmd
	if e.Aliases != nil && cmd != "" {
		expanded = alias.Expand(cmd, e.Aliases.Resolve(ctx, e.ShellKind))
	}

	gate := e.Gate
	if gate == nil {
		gate = sanitize.NewGate()
	}
	verdict, checked := gate.CheckExpanded(cmd, expanded)
	if err := verdict.Err(checked); err != nil {
		e.logger().Warn("command blocked",
			"command", sanitize.Redact(checked),
			"error", err,
		)
		return "", err
	}
	return expanded, nil
}

// Execute prepares cmd and runs it, returning the child's exit code in
// Result. A non-zero exit is not an error; failing to start the shell is.
func (e *Executor) Execute(ctx context.Context, cmd string) (*Result, error) {
	expanded, err := e.Prepare(ctx, cmd)
	if err != nil {
		return nil, err
	}
	cmd = strings.TrimSpace(cmd)
	logger := e.logger()

	var execID int64
	if e.Recorder != nil {
		cwd := e.Dir
		if cwd == "" {
			cwd, _ = os.Getwd()
		}
		execID, err = e.Recorder.RecordExecution(ctx, &storage.Execution{
			SessionID: e.SessionID,
			Command:   cmd,
			Expanded:  expanded,
			CWD:       cwd,
		})
		if err != nil {
			logger.Warn("failed to record execution", "error", err)
		}
	}

	logger.Info("executing command", "command", sanitize.Redact(expanded))

	child := shellCommand(ctx, e.shell(), expanded)
	child.Dir = e.Dir
	child.Stdin = orReader(e.Stdin, os.Stdin)
	child.Stdout = orWriter(e.Stdout, os.Stdout)
	child.Stderr = orWriter(e.Stderr, os.Stderr)

	start := time.Now()
	runErr := child.Run()
	result := &Result{
		Command:  cmd,
		Expanded: expanded,
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case runErr == nil:
	case errors.As(runErr, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return nil, fmt.Errorf("failed to run command: %w", runErr)
	}

	if execID != 0 {
		if err := e.Recorder.UpdateExitCode(ctx, execID, result.ExitCode, result.Duration.Milliseconds()); err != nil {
			logger.Warn("failed to update execution", "id", execID, "error", err)
		}
	}
	logger.Debug("command finished",
		"exit_code", result.ExitCode,
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}

func (e *Executor) shell() string {
	if e.Shell != "" {
		return e.Shell
	}
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return defaultShell
}

func (e *Executor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

func orReader(r, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
