package rank

import (
	"sort"
	"time"

	"github.com/javiplav/terminal-command-menu/internal/history"
)

// Count is a deduplicated command text with its number of occurrences.
type Count struct {
	Text  string
	Count int
}

// Command is one entry of a ranked result set.
type Command struct {
	Text     string
	Count    int
	Category string
	LastSeen time.Time // Most recent recorded timestamp; zero if unknown
}

// RankTexts deduplicates normalized texts by exact equality and orders them
// by descending count. Equal counts keep first-seen order.
func RankTexts(texts []string) []Count {
	index := make(map[string]int, len(texts))
	var counts []Count
	for _, text := range texts {
		if i, ok := index[text]; ok {
			counts[i].Count++
			continue
		}
		index[text] = len(counts)
		counts = append(counts, Count{Text: text, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Rank normalizes decoded entries, drops ones that are not meaningful, then
// ranks and categorizes the rest.
func Rank(entries []history.Entry) []Command {
	texts := make([]string, 0, len(entries))
	lastSeen := make(map[string]time.Time)
	for _, e := range entries {
		text := Normalize(e.Command)
		if !Meaningful(text) {
			continue
		}
		texts = append(texts, text)
		if e.Timestamp.After(lastSeen[text]) {
			lastSeen[text] = e.Timestamp
		}
	}

	counts := RankTexts(texts)
	commands := make([]Command, len(counts))
	for i, c := range counts {
		commands[i] = Command{
			Text:     c.Text,
			Count:    c.Count,
			Category: Categorize(c.Text),
			LastSeen: lastSeen[c.Text],
		}
	}
	return commands
}
