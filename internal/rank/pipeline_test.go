package rank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiplav/terminal-command-menu/internal/history"
)

func bashHome(t *testing.T, content string) string {
	t.Helper()
	home := t.TempDir()
	err := os.WriteFile(filepath.Join(home, ".bash_history"), []byte(content), 0o644)
	require.NoError(t, err)
	return home
}

func noEnv(string) string { return "" }

func TestPipeline_EndToEndBash(t *testing.T) {
	t.Parallel()

	home := bashHome(t, "git status\nls -la\ngit status\n")
	p := &Pipeline{
		Source: history.NewSource(history.WithHome(home), history.WithShell(history.Bash), history.WithEnv(noEnv)),
	}

	got := p.Run()
	want := []Command{
		{Text: "git status", Count: 2, Category: "Git"},
		{Text: "ls -la", Count: 1, Category: "System"},
	}
	if diff := cmp.Diff(want, got.Commands); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, history.Bash, got.Shell)
	assert.Equal(t, filepath.Join(home, ".bash_history"), got.Path)
	assert.Equal(t, 3, got.Entries)
	assert.Equal(t, 2, got.Matched)
}

func TestPipeline_DetectsByProbe(t *testing.T) {
	t.Parallel()

	home := bashHome(t, "make build\n")
	p := &Pipeline{Source: history.NewSource(history.WithHome(home), history.WithEnv(noEnv))}

	got := p.Run()
	assert.Equal(t, history.Bash, got.Shell)
	assert.Equal(t, []string{"make build"}, texts(got.Commands))
}

func TestPipeline_MissingHistoryIsEmpty(t *testing.T) {
	t.Parallel()

	p := &Pipeline{
		Source: history.NewSource(history.WithHome(t.TempDir()), history.WithShell(history.Zsh), history.WithEnv(noEnv)),
	}
	got := p.Run()
	assert.Empty(t, got.Commands)
	assert.Empty(t, got.Path)
}

func TestPipeline_LimitAndFilters(t *testing.T) {
	t.Parallel()

	home := bashHome(t, "ls\nls\nls\ngit status\ngit status\ndocker ps\nmake build\ncd ..\n")
	p := &Pipeline{
		Source:  history.NewSource(history.WithHome(home), history.WithShell(history.Bash), history.WithEnv(noEnv)),
		Limit:   2,
		Filters: []Filter{ExcludePatterns([]string{"ls", "cd"})},
		Sort:    SortAlphabetical,
	}

	got := p.Run()
	assert.Equal(t, []string{"docker ps", "git status"}, texts(got.Commands))
	assert.Equal(t, 3, got.Matched)
}

func TestPipeline_NegativeLimitReturnsAll(t *testing.T) {
	t.Parallel()

	var content string
	for i := 0; i < DefaultLimit+20; i++ {
		content += "echo " + string(rune('a'+i%26)) + string(rune('a'+i/26)) + "\n"
	}
	home := bashHome(t, content)
	src := history.NewSource(history.WithHome(home), history.WithShell(history.Bash), history.WithEnv(noEnv))

	assert.Len(t, (&Pipeline{Source: src}).Run().Commands, DefaultLimit)
	assert.Len(t, (&Pipeline{Source: src, Limit: -1}).Run().Commands, DefaultLimit+20)
}
