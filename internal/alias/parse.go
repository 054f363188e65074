package alias

import (
	"bufio"
	"strings"

	"github.com/google/shlex"

	"github.com/javiplav/terminal-command-menu/internal/history"
)

// Parse converts a shell's alias listing into a Table. Lines that do not
// look like alias definitions are skipped.
func Parse(kind history.ShellKind, raw string) Table {
	switch kind {
	case history.Bash, history.Zsh:
		return parsePosixAliases(raw)
	case history.Fish:
		return parseFishAliases(raw)
	default:
		return make(Table)
	}
}

// parsePosixAliases parses `alias -p` (bash) and `alias -L` (zsh) output.
// Format: [alias [-g] ]name=value, where value may be quoted.
func parsePosixAliases(output string) Table {
	aliases := make(Table)
	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "alias ") {
			var ok bool
			if line, ok = stripAliasFlags(line[len("alias "):]); !ok {
				continue
			}
		}

		eqIdx := strings.IndexByte(line, '=')
		if eqIdx < 1 {
			continue
		}
		name := line[:eqIdx]
		if strings.ContainsAny(name, " \t'\"") {
			continue
		}
		aliases[name] = unquote(line[eqIdx+1:])
	}
	return aliases
}

// stripAliasFlags drops leading flags from a zsh `alias -L` line.
// Suffix aliases (-s) name file extensions, not commands, and are rejected.
func stripAliasFlags(rest string) (string, bool) {
	for {
		rest = strings.TrimSpace(rest)
		if !strings.HasPrefix(rest, "-") {
			return rest, true
		}
		flag, remainder := splitFirstWord(rest)
		if flag == "--" {
			return remainder, true
		}
		if strings.Contains(flag, "s") {
			return "", false
		}
		rest = remainder
	}
}

// parseFishAliases parses the output of `alias; abbr --show` in fish.
// Formats:
//
//	alias name 'expansion'
//	abbr -a -- name expansion
//	abbr -a --position anywhere -- name expansion
//	abbr name expansion
func parseFishAliases(output string) Table {
	aliases := make(Table)
	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "alias "):
			addFishEntry(aliases, line[len("alias "):])
		case strings.HasPrefix(line, "abbr "):
			rest := line[len("abbr "):]
			if dashIdx := strings.Index(rest, "-- "); dashIdx >= 0 {
				rest = rest[dashIdx+len("-- "):]
			} else {
				rest = strings.TrimPrefix(strings.TrimSpace(rest), "-a ")
			}
			addFishEntry(aliases, rest)
		}
	}
	return aliases
}

func addFishEntry(aliases Table, text string) {
	name, expansion := splitFirstWord(text)
	if name == "" || strings.HasPrefix(name, "-") || expansion == "" {
		return
	}
	aliases[name] = unquote(expansion)
}

// unquote resolves shell quoting in an alias value using POSIX word rules,
// falling back to removing one pair of matching surrounding quotes when the
// value does not split cleanly.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if words, err := shlex.Split(s); err == nil && len(words) > 0 {
		return strings.Join(words, " ")
	}
	if len(s) < 2 {
		return s
	}
	if (s[0] == '\'' && s[len(s)-1] == '\'') ||
		(s[0] == '"' && s[len(s)-1] == '"') {
		return s[1 : len(s)-1]
	}
	return s
}

// splitFirstWord splits a string into the first whitespace-delimited word
// and the remaining text.
func splitFirstWord(s string) (first, rest string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}
	idx := strings.IndexAny(s, " \t")
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx+1:])
}
