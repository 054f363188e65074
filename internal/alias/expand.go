// Package alias discovers a user's interactive-shell aliases and expands
// the leading token of a command through them.
package alias

import (
	"sort"
	"strings"
)

// Table maps alias names to their expansions.
type Table map[string]string

// Names returns the alias names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Expand rewrites the leading token of cmd when it names an alias.
// The command is split on whitespace; a matching first token is replaced by
// the whitespace tokens of its expansion and the remaining tokens follow
// unchanged. Expansion is a single pass: the result is never re-expanded.
// Expansions containing shell metacharacters are still split on whitespace
// only; the result is run through a full shell anyway.
//
// Example: with {"k": "kubectl"}, "k get pods" -> "kubectl get pods".
func Expand(cmd string, table Table) string {
	if len(table) == 0 {
		return cmd
	}
	tokens := strings.Fields(cmd)
	if len(tokens) == 0 {
		return cmd
	}
	expansion, ok := table[tokens[0]]
	if !ok {
		return cmd
	}
	out := append(strings.Fields(expansion), tokens[1:]...)
	return strings.Join(out, " ")
}
