package rank

import "sort"

const topCommandsInStats = 10

// Stats summarizes a full ranked list.
type Stats struct {
	TotalCommands  int            // Sum of all counts
	UniqueCommands int            // Number of distinct commands
	Categories     map[string]int // Category label -> summed count
	Top            []Command      // Most frequent commands, at most 10
}

// Statistics computes Stats over commands, which must be in frequency order.
func Statistics(commands []Command) Stats {
	s := Stats{
		UniqueCommands: len(commands),
		Categories:     make(map[string]int),
	}
	for _, c := range commands {
		s.TotalCommands += c.Count
		s.Categories[c.Category] += c.Count
	}
	top := commands
	if len(top) > topCommandsInStats {
		top = top[:topCommandsInStats]
	}
	s.Top = append([]Command(nil), top...)
	return s
}

// CategoryCount is a category and its summed count.
type CategoryCount struct {
	Category string
	Count    int
}

// SortedCategories returns the category breakdown ordered by count
// descending, then label.
func (s Stats) SortedCategories() []CategoryCount {
	out := make([]CategoryCount, 0, len(s.Categories))
	for cat, n := range s.Categories {
		out = append(out, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}
