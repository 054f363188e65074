package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrExecutionNotFound is returned when updating an unknown execution.
var ErrExecutionNotFound = errors.New("execution not found")

// RecordExecution stores a command about to be run and returns its row id.
func (s *SQLiteStore) RecordExecution(ctx context.Context, e *Execution) (int64, error) {
	if e == nil {
		return 0, errors.New("execution cannot be nil")
	}
	if e.Command == "" {
		return 0, errors.New("command is required")
	}
	expanded := e.Expanded
	if expanded == "" {
		expanded = e.Command
	}
	ts := e.TsStartUnixMs
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO executions (
			session_id, command, expanded, cwd,
			ts_start_unix_ms, duration_ms, exit_code
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		nullableString(e.SessionID),
		e.Command,
		expanded,
		e.CWD,
		ts,
		e.DurationMs,
		e.ExitCode,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record execution: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get execution id: %w", err)
	}
	e.ID = id
	return id, nil
}

// UpdateExitCode stores the outcome of a finished execution.
func (s *SQLiteStore) UpdateExitCode(ctx context.Context, id int64, exitCode int, durationMs int64) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE executions SET exit_code = ?, duration_ms = ? WHERE id = ?
	`, exitCode, durationMs, id)
	if err != nil {
		return fmt.Errorf("failed to update execution: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrExecutionNotFound
	}
	return nil
}

// ExecutionRecords aggregates executions per command, most executed first
// (ties: most recent first). A limit <= 0 returns every command.
func (s *SQLiteStore) ExecutionRecords(ctx context.Context, limit int) ([]ExecutionRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT command, COUNT(*) AS n, MAX(ts_start_unix_ms) AS last
		FROM executions
		GROUP BY command
		ORDER BY n DESC, last DESC, command ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query executions: %w", err)
	}
	defer rows.Close()

	var records []ExecutionRecord
	for rows.Next() {
		var r ExecutionRecord
		var lastMs int64
		if err := rows.Scan(&r.Command, &r.Count, &lastMs); err != nil {
			return nil, fmt.Errorf("failed to scan execution: %w", err)
		}
		r.LastUsed = time.UnixMilli(lastMs)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate executions: %w", err)
	}
	return records, nil
}

// LastUsed maps each executed command to when it was last run.
func (s *SQLiteStore) LastUsed(ctx context.Context) (map[string]time.Time, error) {
	records, err := s.ExecutionRecords(ctx, 0)
	if err != nil {
		return nil, err
	}
	out := make(map[string]time.Time, len(records))
	for _, r := range records {
		out[r.Command] = r.LastUsed
	}
	return out, nil
}

// TotalExecutions returns the number of commands run from the menu.
func (s *SQLiteStore) TotalExecutions(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM executions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count executions: %w", err)
	}
	return n, nil
}
