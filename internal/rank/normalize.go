// Package rank turns decoded shell history into a ranked, categorized
// command list.
package rank

import (
	"strings"
	"unicode/utf8"
)

const sudoPrefix = "sudo "

// Normalize canonicalizes a raw history entry for counting and
// categorization: surrounding whitespace is trimmed, runs of whitespace
// collapse to a single space, and leading "sudo " prefixes are dropped.
// The result may be empty.
//
// Examples:
//   - "  sudo   rm   -rf   /tmp  " -> "rm -rf /tmp"
//   - "git    status" -> "git status"
//   - "sudo sudo ls" -> "ls"
func Normalize(raw string) string {
	cmd := strings.Join(strings.Fields(raw), " ")
	for strings.HasPrefix(cmd, sudoPrefix) {
		cmd = cmd[len(sudoPrefix):]
	}
	return cmd
}

// Meaningful reports whether a normalized command is worth ranking.
// Empty and single-character commands are not.
func Meaningful(text string) bool {
	return utf8.RuneCountInString(text) > 1
}

// LeadingToken returns the first whitespace-delimited token of cmd.
func LeadingToken(cmd string) string {
	cmd = strings.TrimSpace(cmd)
	if idx := strings.IndexAny(cmd, " \t"); idx != -1 {
		return cmd[:idx]
	}
	return cmd
}
