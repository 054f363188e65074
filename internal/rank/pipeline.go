package rank

import (
	"log/slog"
	"time"

	"github.com/javiplav/terminal-command-menu/internal/history"
)

// DefaultLimit is the number of commands a pipeline returns when Limit is
// not set.
const DefaultLimit = 100

// Pipeline runs one ranking pass: locate and read the history file, decode
// it, normalize, rank, categorize, filter, and order the result.
// A Pipeline holds no state between runs.
type Pipeline struct {
	Source *history.Source
	// Limit caps the returned commands. Zero means DefaultLimit; negative
	// means no limit.
	Limit    int
	Filters  []Filter
	Sort     SortMethod
	LastUsed map[string]time.Time // Consulted by SortRecency
	Logger   *slog.Logger
}

// Ranking is the outcome of one pass.
type Ranking struct {
	Shell    history.ShellKind
	Path     string    // History file read; empty if none was found
	Commands []Command // Filtered, limited and ordered
	Matched  int       // Commands that passed the filters, before the limit
	Entries  int       // Raw entries decoded from the file
}

// Run executes the pipeline. It never fails: an absent or unreadable history
// file produces an empty ranking.
func (p *Pipeline) Run() Ranking {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	source := p.Source
	if source == nil {
		source = history.NewSource()
	}

	kind := source.Detect()
	result := source.Read(kind, logger)

	commands := Apply(Rank(result.Entries), p.Filters...)
	matched := len(commands)

	limit := p.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > 0 && len(commands) > limit {
		commands = commands[:limit]
	}
	commands = SortBy(commands, p.Sort, p.LastUsed)

	logger.Debug("ranking pass complete",
		"shell", string(kind),
		"entries", len(result.Entries),
		"matched", matched,
		"returned", len(commands),
	)
	return Ranking{
		Shell:    kind,
		Path:     result.Path,
		Commands: commands,
		Matched:  matched,
		Entries:  len(result.Entries),
	}
}
