package rank

import (
	"testing"

	"github.com/cognicore/wordfreq/pkg/wordfreq/analytics"
)

func counterFor(words ...string) *analytics.Counter {
	c := analytics.NewCounter()
	c.Process(words, nil)
	return c
}

func TestRankOrdersByCountDescending(t *testing.T) {
	entries := Rank(counterFor("cat", "sat", "cat", "ran", "mat", "mat", "mat"))

	expected := []Entry{{"mat", 3}, {"cat", 2}, {"sat", 1}, {"ran", 1}}
	if len(entries) != len(expected) {
		t.Fatalf("Expected %d entries, got %v", len(expected), entries)
	}
	for i := range expected {
		if entries[i] != expected[i] {
			t.Errorf("position %d: got %+v, want %+v", i, entries[i], expected[i])
		}
	}
}

func TestRankTiesKeepFirstOccurrence(t *testing.T) {
	// zebra precedes apple in the input, so it stays first despite sorting
	// after it alphabetically.
	entries := Rank(counterFor("zebra", "apple", "mango", "apple", "zebra", "mango"))

	expected := []string{"zebra", "apple", "mango"}
	for i, w := range expected {
		if entries[i].Word != w {
			t.Errorf("position %d: got %q, want %q", i, entries[i].Word, w)
		}
	}
}

func TestRankNonIncreasing(t *testing.T) {
	entries := Rank(counterFor("a", "b", "c", "b", "c", "c", "d", "e", "e", "f"))

	for i := 1; i < len(entries); i++ {
		if entries[i].Count > entries[i-1].Count {
			t.Errorf("entry %d (%+v) ranks above %+v", i, entries[i], entries[i-1])
		}
	}
}

func TestRankEmpty(t *testing.T) {
	entries := Rank(analytics.NewCounter())
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %v", entries)
	}
}

func TestTop(t *testing.T) {
	entries := []Entry{{"a", 3}, {"b", 2}, {"c", 1}}

	if got := Top(entries, 2); len(got) != 2 || got[1].Word != "b" {
		t.Errorf("Top(2) = %v", got)
	}
	if got := Top(entries, 0); len(got) != 3 {
		t.Errorf("Top(0) should return all, got %v", got)
	}
	if got := Top(entries, 10); len(got) != 3 {
		t.Errorf("Top(10) should return all, got %v", got)
	}
}
