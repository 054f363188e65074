package menu

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiplav/terminal-command-menu/internal/history"
)

// ansiRE matches CSI, OSC, charset and other two-byte escape sequences.
var ansiRE = regexp.MustCompile(`\x1b(?:` +
	`\[[0-9;]*[A-Za-z]` +
	`|` +
	`\].*?(?:\x1b\\|\x07)` +
	`|` +
	`[()][A-B0-2]` +
	`|` +
	`[#()*+\-./][A-Za-z0-9]` +
	`)`)

// StripANSI removes ANSI escape sequences from s.
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// escapeLiterals makes literal escape spellings such as "\033[" readable.
var escapeLiterals = strings.NewReplacer(
	"\\033[", "<ESC>[",
	"\\033]", "<ESC>]",
	"\\x1b[", "<ESC>[",
	"\\x1B[", "<ESC>[",
	"\\e[", "<ESC>[",
)

// DisplayText prepares a history command for printing. The result is for
// display only and must never be executed.
func DisplayText(s string) string {
	s = history.ToLossyUTF8([]byte(StripANSI(s)))
	s = escapeLiterals.Replace(s)
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}

// MiddleTruncate shortens s to maxWidth display columns by replacing its
// middle with an ellipsis. Wide runes count as two columns.
func MiddleTruncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return truncateLeft(s, maxWidth)
	}

	remaining := maxWidth - 1
	head := truncateLeft(s, (remaining+1)/2)
	tail := truncateRight(s, remaining/2)
	return head + "…" + tail
}

// truncateLeft returns the longest prefix of s at most maxWidth wide.
func truncateLeft(s string, maxWidth int) string {
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxWidth {
			return s[:i]
		}
		w += rw
	}
	return s
}

// truncateRight returns the longest suffix of s at most maxWidth wide.
func truncateRight(s string, maxWidth int) string {
	runes := []rune(s)
	w := 0
	start := len(runes)
	for i := len(runes) - 1; i >= 0; i-- {
		rw := runewidth.RuneWidth(runes[i])
		if w+rw > maxWidth {
			break
		}
		w += rw
		start = i
	}
	return string(runes[start:])
}

// PadRight pads s with spaces to width display columns.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
