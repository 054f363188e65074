package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session is not found.
var ErrSessionNotFound = errors.New("session not found")

const errSessionIDRequired = "session_id is required"

// CreateSession creates a new session record.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *Session) error {
	if session == nil {
		return errors.New("session cannot be nil")
	}
	if session.SessionID == "" {
		return errors.New(errSessionIDRequired)
	}
	if session.Shell == "" {
		return errors.New("shell is required")
	}
	if session.OS == "" {
		return errors.New("os is required")
	}
	if session.InitialCWD == "" {
		return errors.New("initial_cwd is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (
			session_id, started_at_unix_ms, ended_at_unix_ms,
			shell, os, hostname, username, initial_cwd
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		session.SessionID,
		session.StartedAtUnixMs,
		session.EndedAtUnixMs,
		session.Shell,
		session.OS,
		nullableString(session.Hostname),
		nullableString(session.Username),
		session.InitialCWD,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("session with id %s already exists", session.SessionID)
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// EndSession records a session's end time.
func (s *SQLiteStore) EndSession(ctx context.Context, sessionID string, endTime int64) error {
	if sessionID == "" {
		return errors.New(errSessionIDRequired)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE sessions SET ended_at_unix_ms = ? WHERE session_id = ?
	`, endTime, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// LastSession returns the most recently started session, or
// ErrSessionNotFound when none was recorded.
func (s *SQLiteStore) LastSession(ctx context.Context) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT session_id, started_at_unix_ms, ended_at_unix_ms,
		       shell, os, hostname, username, initial_cwd
		FROM sessions
		ORDER BY started_at_unix_ms DESC, rowid DESC
		LIMIT 1
	`)

	var session Session
	var endedAt sql.NullInt64
	var hostname, username sql.NullString
	if err := row.Scan(
		&session.SessionID, &session.StartedAtUnixMs, &endedAt,
		&session.Shell, &session.OS, &hostname, &username, &session.InitialCWD,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load last session: %w", err)
	}

	if endedAt.Valid {
		session.EndedAtUnixMs = &endedAt.Int64
	}
	session.Hostname = hostname.String
	session.Username = username.String
	return &session, nil
}

// CountSessions returns the number of sessions ever started.
func (s *SQLiteStore) CountSessions(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}
