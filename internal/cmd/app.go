package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/javiplav/terminal-command-menu/internal/alias"
	"github.com/javiplav/terminal-command-menu/internal/config"
	"github.com/javiplav/terminal-command-menu/internal/executor"
	"github.com/javiplav/terminal-command-menu/internal/history"
	"github.com/javiplav/terminal-command-menu/internal/logging"
	"github.com/javiplav/terminal-command-menu/internal/menu"
	"github.com/javiplav/terminal-command-menu/internal/rank"
	"github.com/javiplav/terminal-command-menu/internal/sanitize"
	"github.com/javiplav/terminal-command-menu/internal/storage"
)

// app is the per-invocation wiring: config with flag overrides applied,
// the logger, and constructors for the core components.
type app struct {
	cfg        *config.Config
	paths      *config.Paths
	configPath string
	logger     *slog.Logger
	closeLog   func() error
	out        io.Writer
	errOut     io.Writer
	styles     menu.Styles
}

func (o *rootOptions) load(cmd *cobra.Command) (*app, error) {
	paths := config.DefaultPaths()
	configPath := o.configPath
	if configPath == "" {
		configPath = paths.ConfigFile()
	}

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := o.applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(logging.Config{
		Output: cmd.ErrOrStderr(),
		File:   cfg.Log.File,
		Level:  cfg.Log.Level,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:        cfg,
		paths:      paths,
		configPath: configPath,
		logger:     logger,
		closeLog:   closeLog,
		out:        cmd.OutOrStdout(),
		errOut:     cmd.ErrOrStderr(),
		styles:     newStyles(cmd.OutOrStdout(), cfg.Menu.Theme),
	}, nil
}

func (o *rootOptions) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if o.shell != "" {
		kind, err := history.ParseShellKind(o.shell)
		if err != nil {
			return err
		}
		cfg.History.Shell = string(kind)
	}
	if cmd.Flags().Changed("max-commands") {
		if o.maxCommands < 1 {
			return errors.New("--max-commands must be positive")
		}
		cfg.Menu.MaxCommands = o.maxCommands
	}
	if o.noConfirm {
		cfg.Menu.ConfirmExecution = false
	}
	return nil
}

func (a *app) Close() {
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}

func (a *app) source() *history.Source {
	var opts []history.SourceOption
	if a.cfg.History.Shell != "" {
		opts = append(opts, history.WithShell(history.ShellKind(a.cfg.History.Shell)))
	}
	if a.cfg.History.File != "" {
		opts = append(opts, history.WithFile(a.cfg.History.File))
	}
	return history.NewSource(opts...)
}

// filters turns the configured exclusions and category filters into
// ranking predicates.
func (a *app) filters() []rank.Filter {
	return []rank.Filter{
		rank.ExcludePatterns(a.cfg.History.ExcludedPatterns),
		rank.OnlyCategories(a.cfg.History.CategoryFilters),
	}
}

func (a *app) pipeline(limit int, sort rank.SortMethod, lastUsed map[string]time.Time) *rank.Pipeline {
	return &rank.Pipeline{
		Source:   a.source(),
		Limit:    limit,
		Filters:  a.filters(),
		Sort:     sort,
		LastUsed: lastUsed,
		Logger:   a.logger,
	}
}

// openStore opens the state database. Failure is logged and yields nil:
// the menu works without it.
func (a *app) openStore() *storage.SQLiteStore {
	store, err := storage.NewSQLiteStore(a.paths.DatabaseFile())
	if err != nil {
		a.logger.Warn("state database unavailable", "path", a.paths.DatabaseFile(), "error", err)
		return nil
	}
	return store
}

// lastUsed loads per-command last-run times for recency sorting.
func (a *app) lastUsed(ctx context.Context, store *storage.SQLiteStore, sort rank.SortMethod) map[string]time.Time {
	if store == nil || sort != rank.SortRecency {
		return nil
	}
	m, err := store.LastUsed(ctx)
	if err != nil {
		a.logger.Warn("failed to load execution times", "error", err)
		return nil
	}
	return m
}

func (a *app) resolver() *alias.Resolver {
	return alias.NewResolver(
		alias.WithLogger(a.logger),
		alias.WithTimeout(time.Duration(a.cfg.Alias.TimeoutMs)*time.Millisecond),
	)
}

func (a *app) executor(kind history.ShellKind, store *storage.SQLiteStore, sessionID string) *executor.Executor {
	e := &executor.Executor{
		ShellKind: kind,
		Gate:      sanitize.NewGate(a.cfg.Safety.ExtraPatterns...),
		SessionID: sessionID,
		Logger:    a.logger,
		Stdout:    a.out,
		Stderr:    a.errOut,
	}
	if a.cfg.Alias.Enabled {
		e.Aliases = a.resolver()
	}
	if store != nil {
		e.Recorder = store
	}
	return e
}

// startSession records the start of an interactive run. It returns "" when
// nothing could be recorded.
func (a *app) startSession(ctx context.Context, store *storage.SQLiteStore, kind history.ShellKind) string {
	if store == nil {
		return ""
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "/"
	}
	hostname, _ := os.Hostname()
	var username string
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	session := &storage.Session{
		SessionID:       uuid.NewString(),
		StartedAtUnixMs: time.Now().UnixMilli(),
		Shell:           string(kind),
		OS:              runtime.GOOS,
		Hostname:        hostname,
		Username:        username,
		InitialCWD:      cwd,
	}
	if err := store.CreateSession(ctx, session); err != nil {
		a.logger.Warn("failed to start session", "error", err)
		return ""
	}
	a.logger.Debug("session started", "session_id", session.SessionID)
	return session.SessionID
}

func (a *app) endSession(ctx context.Context, store *storage.SQLiteStore, sessionID string) {
	if store == nil || sessionID == "" {
		return
	}
	if err := store.EndSession(ctx, sessionID, time.Now().UnixMilli()); err != nil {
		a.logger.Warn("failed to end session", "session_id", sessionID, "error", err)
	}
}

func sortMethod(name string) rank.SortMethod {
	m, err := rank.ParseSortMethod(name)
	if err != nil {
		return rank.SortFrequency
	}
	return m
}
