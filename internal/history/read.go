package history

import (
	"log/slog"
	"os"
)

// Result is the outcome of reading one shell's history.
type Result struct {
	Shell   ShellKind
	Path    string // Empty when no history file exists
	Entries []Entry
}

// Read locates and decodes the history file for kind. A missing file yields
// an empty result; an unreadable one yields an empty result and a warning.
// The file is read exactly once.
func (s *Source) Read(kind ShellKind, logger *slog.Logger) Result {
	if logger == nil {
		logger = slog.Default()
	}
	result := Result{Shell: kind}

	path, ok := s.Locate(kind)
	if !ok {
		logger.Debug("no history file", "shell", string(kind), "path", path)
		return result
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's own history file
	if err != nil {
		logger.Warn("history file unreadable",
			"shell", string(kind),
			"path", path,
			"error", err,
		)
		return result
	}

	result.Path = path
	result.Entries = Decode(kind, data)
	logger.Debug("history decoded",
		"shell", string(kind),
		"path", path,
		"entries", len(result.Entries),
	)
	return result
}
