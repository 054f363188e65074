// Package storage persists menu sessions and the commands run from the menu
// in SQLite. Ranking never depends on it: history files remain the source
// of truth and stored records only feed recency sorting and usage stats.
package storage

import (
	"context"
	"time"
)

// Store defines the interface for all storage operations.
type Store interface {
	// Sessions
	CreateSession(ctx context.Context, s *Session) error
	EndSession(ctx context.Context, sessionID string, endTime int64) error
	LastSession(ctx context.Context) (*Session, error)
	CountSessions(ctx context.Context) (int64, error)

	// Executions
	RecordExecution(ctx context.Context, e *Execution) (int64, error)
	UpdateExitCode(ctx context.Context, id int64, exitCode int, durationMs int64) error
	ExecutionRecords(ctx context.Context, limit int) ([]ExecutionRecord, error)
	LastUsed(ctx context.Context) (map[string]time.Time, error)
	TotalExecutions(ctx context.Context) (int64, error)

	// Lifecycle
	Close() error
}

// Session is one interactive invocation of the menu.
type Session struct {
	SessionID       string
	StartedAtUnixMs int64
	EndedAtUnixMs   *int64
	Shell           string
	OS              string
	Hostname        string
	Username        string
	InitialCWD      string
}

// Execution is a single command launched from the menu.
type Execution struct {
	ID            int64
	SessionID     string // Optional
	Command       string // As selected from the ranked list
	Expanded      string // After alias expansion; what actually ran
	CWD           string
	TsStartUnixMs int64
	DurationMs    *int64
	ExitCode      *int
}

// ExecutionRecord aggregates the executions of one command text.
type ExecutionRecord struct {
	Command  string
	Count    int64
	LastUsed time.Time
}
