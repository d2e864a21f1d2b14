package analytics

// StopChecker is the stopword membership test the counter needs.
type StopChecker interface {
	Contains(token string) bool
}

// Counter accumulates word occurrences, remembering the order in which
// each word was first seen.
type Counter struct {
	counts  map[string]int
	order   []string
	total   int
	skipped int
}

// NewCounter creates an empty counter
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add records one occurrence of word. Empty words are ignored.
func (c *Counter) Add(word string) {
	if word == "" {
		return
	}
	if _, ok := c.counts[word]; !ok {
		c.order = append(c.order, word)
	}
	c.counts[word]++
}

// Process counts every word that is neither empty nor a stopword.
// stops may be nil.
func (c *Counter) Process(words []string, stops StopChecker) {
	for _, w := range words {
		c.total++
		if w == "" || (stops != nil && stops.Contains(w)) {
			c.skipped++
			continue
		}
		c.Add(w)
	}
}

// Count returns the occurrences recorded for word.
func (c *Counter) Count(word string) int {
	return c.counts[word]
}

// Len returns the number of unique words.
func (c *Counter) Len() int {
	return len(c.order)
}

// Words returns the unique words in first-occurrence order.
func (c *Counter) Words() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Total returns how many words Process has seen, kept or not.
func (c *Counter) Total() int {
	return c.total
}

// Skipped returns how many words Process dropped as empty or stopwords.
func (c *Counter) Skipped() int {
	return c.skipped
}

// Sum returns the sum of all counts.
func (c *Counter) Sum() int {
	sum := 0
	for _, n := range c.counts {
		sum += n
	}
	return sum
}
