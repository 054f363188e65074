package history

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRead_MissingFileIsEmpty(t *testing.T) {
	var buf bytes.Buffer
	s := NewSource(WithHome(t.TempDir()), WithEnv(envMap(nil)))

	result := s.Read(Zsh, testLogger(&buf))
	assert.Equal(t, Zsh, result.Shell)
	assert.Empty(t, result.Path)
	assert.Empty(t, result.Entries)
	assert.NotContains(t, buf.String(), "level=WARN")
}

func TestRead_DecodesFile(t *testing.T) {
	home := t.TempDir()
	writeTempFile(t, home, ".bash_history", "git status\nls -la\ngit status\n")
	s := NewSource(WithHome(home), WithEnv(envMap(nil)))

	result := s.Read(Bash, nil)
	assert.Equal(t, filepath.Join(home, ".bash_history"), result.Path)
	assert.Equal(t, []string{"git status", "ls -la", "git status"}, commands(result.Entries))
}

func TestRead_UnreadableFileWarns(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	home := t.TempDir()
	path := writeTempFile(t, home, ".zsh_history", "ls\n")
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() { _ = os.Chmod(path, 0o600) })

	var buf bytes.Buffer
	s := NewSource(WithHome(home), WithEnv(envMap(nil)))
	result := s.Read(Zsh, testLogger(&buf))

	assert.Empty(t, result.Entries)
	assert.Contains(t, buf.String(), "history file unreadable")
}

func TestRead_InvalidBytesTolerated(t *testing.T) {
	home := t.TempDir()
	writeTempFile(t, home, ".zsh_history", ": 1706000001:0;echo \xff\n: 1706000002:0;git status\n")
	s := NewSource(WithHome(home), WithEnv(envMap(nil)))

	result := s.Read(Zsh, nil)
	assert.Equal(t, []string{"echo �", "git status"}, commands(result.Entries))
}
