package rank

import "strings"

// Filter reports whether a ranked command should be kept.
type Filter func(Command) bool

// ExcludePatterns drops commands matched by any pattern. A pattern matches
// when it equals the whole command, equals its leading token, or is a
// prefix of the command followed by a space ("git push" excludes
// "git push origin main" but not "git pushd").
func ExcludePatterns(patterns []string) Filter {
	var cleaned []string
	for _, p := range patterns {
		if p = Normalize(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return func(c Command) bool {
		for _, p := range cleaned {
			if excludes(p, c.Text) {
				return false
			}
		}
		return true
	}
}

func excludes(pattern, text string) bool {
	return text == pattern ||
		LeadingToken(text) == pattern ||
		strings.HasPrefix(text, pattern+" ")
}

// OnlyCategories keeps commands whose category is in names, compared
// case-insensitively. An empty list keeps everything.
func OnlyCategories(names []string) Filter {
	if len(names) == 0 {
		return func(Command) bool { return true }
	}
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
	}
	return func(c Command) bool {
		_, ok := want[strings.ToLower(c.Category)]
		return ok
	}
}

// Search keeps commands whose text or category contains query,
// case-insensitively. An empty query keeps everything.
func Search(query string) Filter {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(c Command) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(c.Text), q) ||
			strings.Contains(strings.ToLower(c.Category), q)
	}
}

// Apply returns the commands every filter keeps, preserving order.
func Apply(commands []Command, filters ...Filter) []Command {
	if len(filters) == 0 {
		return commands
	}
	out := make([]Command, 0, len(commands))
next:
	for _, c := range commands {
		for _, f := range filters {
			if f != nil && !f(c) {
				continue next
			}
		}
		out = append(out, c)
	}
	return out
}
