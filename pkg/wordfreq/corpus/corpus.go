package corpus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cognicore/wordfreq/pkg/wordfreq/ingest"
	"github.com/cognicore/wordfreq/pkg/wordfreq/textio"
)

// Editorial annotations such as stage directions are wrapped in these.
const (
	annotationOpen  = "<<"
	annotationClose = ">>"
)

// Options controls which part of the file counts as corpus text.
type Options struct {
	// SkipLines is the number of leading boilerplate lines to drop.
	SkipLines int
	// EndMarker starts the trailing license block. Empty disables the cut.
	EndMarker string
}

// Load opens path and returns the kept corpus lines in file order.
func Load(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// Read applies the header skip, footer cut and annotation filter to r.
// A reader shorter than SkipLines yields an empty result.
func Read(r io.Reader, opts Options) ([]string, error) {
	lines := []string{}
	seen := 0
	err := textio.EachLine(r, func(raw string) bool {
		seen++
		if seen <= opts.SkipLines {
			return true
		}
		if opts.EndMarker != "" && strings.HasPrefix(raw, opts.EndMarker) {
			return false
		}
		line := strings.TrimFunc(raw, ingest.IsSpace)
		if !IsAnnotation(line) {
			lines = append(lines, line)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// IsAnnotation reports whether a trimmed line is an editorial marker like
// "<<THIS ELECTRONIC VERSION ...>>".
func IsAnnotation(line string) bool {
	return strings.HasPrefix(line, annotationOpen) && strings.HasSuffix(line, annotationClose)
}
