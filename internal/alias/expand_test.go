package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	table := Table{
		"k":   "kubectl",
		"gco": "git checkout",
		"ll":  "ls -la",
		"g":   "gco",
		"gl":  "git log | head",
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single token alias", input: "k get pods", expected: "kubectl get pods"},
		{name: "no matching alias", input: "kubectl get pods", expected: "kubectl get pods"},
		{name: "multi token expansion", input: "gco main", expected: "git checkout main"},
		{name: "alias alone", input: "ll", expected: "ls -la"},
		{name: "not recursive", input: "g main", expected: "gco main"},
		{name: "only first token", input: "echo k", expected: "echo k"},
		{name: "metacharacters split on whitespace", input: "gl -5", expected: "git log | head -5"},
		{name: "extra whitespace collapses on expansion", input: "  k   get  pods", expected: "kubectl get pods"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace", input: "   ", expected: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Expand(tt.input, table))
		})
	}
}

func TestExpand_EmptyTable(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "k get pods", Expand("k get pods", nil))
	assert.Equal(t, "k get pods", Expand("k get pods", Table{}))
}

func TestTable_Names(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "b", "c"}, Table{"c": "3", "a": "1", "b": "2"}.Names())
	assert.Empty(t, Table{}.Names())
}
