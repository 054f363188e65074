package rank

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SortMethod orders a ranked list for display.
type SortMethod string

const (
	SortFrequency    SortMethod = "frequency"
	SortRecency      SortMethod = "recency"
	SortAlphabetical SortMethod = "alphabetical"
)

// ParseSortMethod validates a sort method name. Empty means frequency.
func ParseSortMethod(s string) (SortMethod, error) {
	switch m := SortMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return SortFrequency, nil
	case SortFrequency, SortRecency, SortAlphabetical:
		return m, nil
	default:
		return "", fmt.Errorf("invalid sort method %q (must be frequency, recency, or alphabetical)", s)
	}
}

// SortBy returns commands reordered by method. Frequency order is the order
// produced by Rank and is returned as is. For recency, lastUsed (when the
// command was last run from the menu) takes precedence over the history
// timestamp; commands with no known time sort last. Ties keep the incoming
// order.
func SortBy(commands []Command, method SortMethod, lastUsed map[string]time.Time) []Command {
	out := make([]Command, len(commands))
	copy(out, commands)

	switch method {
	case SortRecency:
		when := func(c Command) time.Time {
			if t, ok := lastUsed[c.Text]; ok && !t.IsZero() {
				return t
			}
			return c.LastSeen
		}
		sort.SliceStable(out, func(i, j int) bool {
			return when(out[i]).After(when(out[j]))
		})
	case SortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Text < out[j].Text
		})
	}
	return out
}
