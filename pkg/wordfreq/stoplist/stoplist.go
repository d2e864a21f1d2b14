package stoplist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordfreq/pkg/wordfreq/textio"
)

// Set is a read-only collection of normalized stopwords.
type Set struct {
	stops map[string]struct{}
}

// New builds a set from raw words, normalizing each one.
func New(words []string) *Set {
	stops := make(map[string]struct{}, len(words))
	for _, w := range words {
		stops[Normalize(w)] = struct{}{}
	}
	return &Set{stops: stops}
}

// Normalize lowercases w and drops every byte outside a-z.
// The result may be empty.
func Normalize(w string) string {
	w = strings.ToLower(w)
	var b strings.Builder
	b.Grow(len(w))
	for i := 0; i < len(w); i++ {
		if c := w[i]; c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Contains checks if a token is a stopword
func (s *Set) Contains(token string) bool {
	if s == nil {
		return false
	}
	_, ok := s.stops[token]
	return ok
}

// Len returns the number of distinct stopwords.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.stops)
}

// All returns all stopwords, sorted.
func (s *Set) All() []string {
	if s == nil {
		return nil
	}
	result := make([]string, 0, len(s.stops))
	for w := range s.stops {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}

// Load reads a stopword file. Files ending in .yaml or .yml use the
// `terms:` list format; anything else is one word per line.
func Load(path string) (*Set, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return set, nil
}

// Read parses one stopword per line from r.
func Read(r io.Reader) (*Set, error) {
	set := &Set{stops: make(map[string]struct{})}

	err := textio.EachLine(r, func(line string) bool {
		set.stops[Normalize(line)] = struct{}{}
		return true
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func loadYAML(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl struct {
		Terms []string `yaml:"terms"`
	}
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return New(sl.Terms), nil
}
