package rank

import (
	"sort"

	"github.com/cognicore/wordfreq/pkg/wordfreq/analytics"
)

// Entry is one row of the ranked list.
type Entry struct {
	Word  string
	Count int
}

// Rank orders the counter's words by count, highest first. Words with equal
// counts stay in first-occurrence order; there is no alphabetical tiebreak.
func Rank(c *analytics.Counter) []Entry {
	words := c.Words()
	entries := make([]Entry, len(words))
	for i, w := range words {
		entries[i] = Entry{Word: w, Count: c.Count(w)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Top returns the first n entries. n <= 0 returns all of them.
func Top(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
