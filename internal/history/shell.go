// Package history locates, reads, and decodes shell history files.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ShellKind identifies a supported shell family.
type ShellKind string

const (
	Zsh  ShellKind = "zsh"
	Bash ShellKind = "bash"
	Fish ShellKind = "fish"
)

// probeOrder is the order history files are checked in when $SHELL does not
// identify a supported shell.
var probeOrder = []ShellKind{Zsh, Bash, Fish}

// ParseShellKind converts a shell name to a ShellKind.
// Paths (/bin/zsh), login-shell names (-zsh) and versioned names (bash-5.2,
// zsh5) are accepted. Other names that merely contain a shell name, such as
// rbash or zshell, are not.
func ParseShellKind(name string) (ShellKind, error) {
	if kind, ok := extractShellKind(name); ok {
		return kind, nil
	}
	return "", fmt.Errorf("unsupported shell %q (must be zsh, bash, or fish)", name)
}

// SupportedShells returns the list of supported shell names.
func SupportedShells() []string {
	return []string{string(Zsh), string(Bash), string(Fish)}
}

// extractShellKind extracts the shell kind from a process path or name.
func extractShellKind(name string) (ShellKind, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	base := filepath.Base(name)
	base = strings.TrimPrefix(base, "-")
	if idx := strings.Index(base, "-"); idx > 0 {
		base = base[:idx]
	}
	base = strings.TrimRight(base, "0123456789.")
	switch ShellKind(base) {
	case Zsh, Bash, Fish:
		return ShellKind(base), true
	}
	return "", false
}

// Source resolves history file locations for one pipeline run.
// The zero value is not usable; create one with NewSource.
type Source struct {
	home     string
	getenv   func(string) string
	override ShellKind
	file     string
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithShell forces the shell kind instead of detecting it.
func WithShell(kind ShellKind) SourceOption {
	return func(s *Source) { s.override = kind }
}

// WithFile reads history from an explicit path instead of the shell's default.
func WithFile(path string) SourceOption {
	return func(s *Source) { s.file = path }
}

// WithHome sets the home directory used to resolve history paths.
func WithHome(home string) SourceOption {
	return func(s *Source) { s.home = home }
}

// WithEnv sets the environment lookup used for $SHELL and $XDG_DATA_HOME.
func WithEnv(getenv func(string) string) SourceOption {
	return func(s *Source) { s.getenv = getenv }
}

// NewSource creates a Source. By default it uses the user's home directory
// and the process environment.
func NewSource(opts ...SourceOption) *Source {
	s := &Source{getenv: os.Getenv}
	for _, opt := range opts {
		opt(s)
	}
	if s.home == "" {
		if home, err := os.UserHomeDir(); err == nil {
			s.home = home
		} else {
			s.home = s.getenv("HOME")
		}
	}
	return s
}

// Detect returns the shell kind to read history for.
// An explicit override wins; then $SHELL; then the first existing history
// file in zsh, bash, fish order; then bash.
func (s *Source) Detect() ShellKind {
	if s.override != "" {
		return s.override
	}
	if kind, ok := extractShellKind(s.getenv("SHELL")); ok {
		return kind
	}
	for _, kind := range probeOrder {
		if fileExists(s.defaultPath(kind)) {
			return kind
		}
	}
	return Bash
}

// Locate returns the history file path for kind and whether it exists.
// A missing file is the normal state for shells the user never ran.
func (s *Source) Locate(kind ShellKind) (string, bool) {
	path := s.file
	if path == "" {
		path = s.defaultPath(kind)
	}
	if path == "" || !fileExists(path) {
		return path, false
	}
	return path, true
}

// defaultPath returns the fixed home-relative history path for kind.
func (s *Source) defaultPath(kind ShellKind) string {
	if s.home == "" {
		return ""
	}
	switch kind {
	case Zsh:
		return filepath.Join(s.home, ".zsh_history")
	case Bash:
		return filepath.Join(s.home, ".bash_history")
	case Fish:
		if dataHome := s.getenv("XDG_DATA_HOME"); dataHome != "" {
			return filepath.Join(dataHome, "fish", "fish_history")
		}
		return filepath.Join(s.home, ".local", "share", "fish", "fish_history")
	default:
		return ""
	}
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
