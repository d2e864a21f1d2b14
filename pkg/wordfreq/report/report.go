package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
	"github.com/cognicore/wordfreq/pkg/wordfreq/rank"
)

// Header is the first record of every report.
var Header = []string{"word", "count"}

// WriteCSV writes entries to path, creating parent directories and
// replacing any existing file.
func WriteCSV(path string, entries []rank.Entry) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Write emits the header and one record per entry to w. Records end in
// "\r\n" like most spreadsheet-oriented CSV producers.
func Write(w io.Writer, entries []rank.Entry) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Word, strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a report written by WriteCSV.
func ReadCSV(path string) ([]rank.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return entries, nil
}

// Read parses report records from r, checking the header and that every
// count is a non-negative integer.
func Read(r io.Reader) ([]rank.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header", internalerr.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidInput, err)
	}
	if header[0] != Header[0] || header[1] != Header[1] {
		return nil, fmt.Errorf("%w: unexpected header %q", internalerr.ErrInvalidInput, header)
	}

	entries := []rank.Entry{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidInput, err)
		}
		n, err := strconv.Atoi(rec[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad count %q for %q", internalerr.ErrInvalidInput, rec[1], rec[0])
		}
		entries = append(entries, rank.Entry{Word: rec[0], Count: n})
	}
	return entries, nil
}
