package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiplav/terminal-command-menu/internal/rank"
)

func TestModel_Paging(t *testing.T) {
	t.Parallel()

	m := NewModel(sampleCommands(12), 5)
	assert.Equal(t, 3, m.Pages())

	rows, first := m.Page()
	assert.Len(t, rows, 5)
	assert.Equal(t, 1, first)

	assert.True(t, m.Next())
	assert.True(t, m.Next())
	assert.False(t, m.Next())
	rows, first = m.Page()
	assert.Len(t, rows, 2)
	assert.Equal(t, 11, first)

	assert.True(t, m.Prev())
	assert.Equal(t, 1, m.PageIndex())
}

func TestModel_EmptyHasOnePage(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, 10)
	assert.Equal(t, 1, m.Pages())
	rows, _ := m.Page()
	assert.Empty(t, rows)
	assert.False(t, m.Next())
	assert.False(t, m.Prev())
}

func TestModel_QueryResetsPage(t *testing.T) {
	t.Parallel()

	items := []rank.Command{
		{Text: "git status", Category: "Git"},
		{Text: "docker ps", Category: "Docker"},
		{Text: "vim main.go", Category: "Editor"},
	}
	m := NewModel(items, 1)
	require.True(t, m.Next())

	m.SetQuery("EDITOR")
	assert.Equal(t, 0, m.PageIndex())
	assert.Equal(t, 1, m.Len())
	got, ok := m.Select(1)
	require.True(t, ok)
	assert.Equal(t, "vim main.go", got.Text)

	m.SetQuery("")
	assert.Equal(t, 3, m.Len())
}

func TestModel_SelectBounds(t *testing.T) {
	t.Parallel()

	m := NewModel(sampleCommands(2), 5)
	_, ok := m.Select(0)
	assert.False(t, ok)
	_, ok = m.Select(3)
	assert.False(t, ok)
	c, ok := m.Select(2)
	assert.True(t, ok)
	assert.Equal(t, "echo 02", c.Text)
}
