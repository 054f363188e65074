package alias

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/javiplav/terminal-command-menu/internal/history"
)

// Resolver discovers and caches alias tables for one run. Each shell kind
// is discovered at most once; concurrent callers share that discovery.
// It is safe for concurrent use.
type Resolver struct {
	logger   *slog.Logger
	timeout  time.Duration
	getenv   func(string) string
	binaries map[history.ShellKind]string

	mu    sync.Mutex
	cache map[history.ShellKind]Table
	group singleflight.Group
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for discovery warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// WithTimeout bounds each discovery. Zero or negative uses DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.timeout = d }
}

// WithEnv sets the environment lookup used to find $SHELL.
func WithEnv(getenv func(string) string) Option {
	return func(r *Resolver) { r.getenv = getenv }
}

// WithBinary pins the shell binary run for kind.
func WithBinary(kind history.ShellKind, path string) Option {
	return func(r *Resolver) { r.binaries[kind] = path }
}

// NewResolver creates a Resolver with an empty cache.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		timeout:  DefaultTimeout,
		getenv:   os.Getenv,
		binaries: make(map[history.ShellKind]string),
		cache:    make(map[history.ShellKind]Table),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Resolve returns the alias table for kind, discovering it on first use.
// The result is always a valid table: any discovery failure is logged and
// yields an empty one, which is cached like any other result. The returned
// table is shared and must not be modified.
func (r *Resolver) Resolve(ctx context.Context, kind history.ShellKind) Table {
	r.mu.Lock()
	if table, ok := r.cache[kind]; ok {
		r.mu.Unlock()
		return table
	}
	r.mu.Unlock()

	v, _, _ := r.group.Do(string(kind), func() (any, error) {
		table := r.discover(ctx, kind)
		r.mu.Lock()
		r.cache[kind] = table
		r.mu.Unlock()
		return table, nil
	})
	return v.(Table)
}

func (r *Resolver) discover(ctx context.Context, kind history.ShellKind) Table {
	binary := r.binary(kind)
	start := time.Now()
	table, err := Discover(ctx, kind, binary, r.timeout)
	if err != nil {
		r.logger.Warn("alias discovery failed",
			"shell", string(kind),
			"binary", binary,
			"error", err,
		)
		return make(Table)
	}
	r.logger.Debug("aliases discovered",
		"shell", string(kind),
		"count", len(table),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return table
}

// binary picks the shell executable for kind: an explicit WithBinary path,
// then $SHELL when it is a shell of that kind, then the kind's name looked
// up on PATH.
func (r *Resolver) binary(kind history.ShellKind) string {
	if path, ok := r.binaries[kind]; ok && path != "" {
		return path
	}
	if shell := r.getenv("SHELL"); shell != "" {
		if k, err := history.ParseShellKind(filepath.Base(shell)); err == nil && k == kind {
			return shell
		}
	}
	return string(kind)
}
