package rank

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatistics(t *testing.T) {
	t.Parallel()

	commands := []Command{
		{Text: "git status", Count: 4, Category: "Git"},
		{Text: "git push", Count: 2, Category: "Git"},
		{Text: "ls -la", Count: 2, Category: "System"},
		{Text: "make build", Count: 1, Category: Other},
	}

	s := Statistics(commands)
	assert.Equal(t, 9, s.TotalCommands)
	assert.Equal(t, 4, s.UniqueCommands)
	assert.Equal(t, map[string]int{"Git": 6, "System": 2, Other: 1}, s.Categories)
	assert.Equal(t, commands, s.Top)

	assert.Equal(t, []CategoryCount{
		{Category: "Git", Count: 6},
		{Category: "System", Count: 2},
		{Category: Other, Count: 1},
	}, s.SortedCategories())
}

func TestStatistics_TopCapped(t *testing.T) {
	t.Parallel()

	var commands []Command
	for i := 0; i < 25; i++ {
		commands = append(commands, Command{Text: fmt.Sprintf("cmd-%02d", i), Count: 25 - i, Category: Other})
	}
	s := Statistics(commands)
	assert.Len(t, s.Top, 10)
	assert.Equal(t, "cmd-00", s.Top[0].Text)
}

func TestStatistics_Empty(t *testing.T) {
	t.Parallel()

	s := Statistics(nil)
	assert.Zero(t, s.TotalCommands)
	assert.Zero(t, s.UniqueCommands)
	assert.Empty(t, s.Top)
	assert.Empty(t, s.SortedCategories())
}
