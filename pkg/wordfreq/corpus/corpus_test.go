package corpus

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const marker = "End of this Etext"

func TestReadSkipsHeaderAndFooter(t *testing.T) {
	text := strings.Join([]string{
		"HEADER ONE",
		"HEADER TWO",
		"  The cat sat.  ",
		"<<THIS ELECTRONIC VERSION IS COPYRIGHT>>",
		"",
		"A cat ran.",
		"End of this Etext of The Complete Works",
		"after the footer",
	}, "\n")

	lines, err := Read(strings.NewReader(text), Options{SkipLines: 2, EndMarker: marker})
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"The cat sat.", "", "A cat ran."}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %q", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], expected[i])
		}
	}
}

func TestReadShortFile(t *testing.T) {
	lines, err := Read(strings.NewReader("one\ntwo\n"), Options{SkipLines: 246, EndMarker: marker})
	if err != nil {
		t.Fatalf("short file should not error: %v", err)
	}
	if lines == nil || len(lines) != 0 {
		t.Errorf("Expected empty non-nil result, got %q", lines)
	}
}

func TestReadExactlyHeader(t *testing.T) {
	lines, err := Read(strings.NewReader("one\ntwo"), Options{SkipLines: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected no lines, got %q", lines)
	}
}

func TestReadMarkerMustStartLine(t *testing.T) {
	// Indented marker does not match since the prefix test runs before trimming.
	text := "keep\n  End of this Etext\nstill here\nEnd of this Etext\ngone\n"

	lines, err := Read(strings.NewReader(text), Options{EndMarker: marker})
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"keep", "End of this Etext", "still here"}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %q", len(expected), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], expected[i])
		}
	}
}

func TestReadEmptyMarkerKeepsEverything(t *testing.T) {
	lines, err := Read(strings.NewReader("a\nEnd of this Etext\nb\n"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 3 {
		t.Errorf("Expected 3 lines, got %q", lines)
	}
}

func TestReadNeverReturnsAnnotationsOrFooter(t *testing.T) {
	text := strings.Join([]string{
		"<<a>>",
		"  <<indented annotation>>\t",
		"<<open only",
		"close only>>",
		"<<>>",
		"plain",
		"End of this Etext",
		"<<after>>",
		"tail",
	}, "\r\n")

	lines, err := Read(strings.NewReader(text), Options{EndMarker: marker})
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range lines {
		if IsAnnotation(line) {
			t.Errorf("annotation %q leaked", line)
		}
		if strings.HasPrefix(line, marker) || line == "tail" {
			t.Errorf("footer line %q leaked", line)
		}
	}
	if len(lines) != 3 {
		t.Errorf("Expected 3 kept lines, got %q", lines)
	}
}

func TestIsAnnotation(t *testing.T) {
	if !IsAnnotation("<<STAGE>>") {
		t.Error("<<STAGE>> should be an annotation")
	}
	if IsAnnotation("<<STAGE") {
		t.Error("unterminated marker is not an annotation")
	}
	if IsAnnotation("plain") {
		t.Error("plain text is not an annotation")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("skip\nThe cat sat.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := Load(path, Options{SkipLines: 1, EndMarker: marker})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lines) != 1 || lines[0] != "The cat sat." {
		t.Errorf("unexpected lines %q", lines)
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	_, err := Load("/nonexistent/corpus.txt", Options{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestReadVeryLongLine(t *testing.T) {
	long := strings.Repeat("word ", 300000)
	text := "hdr\n" + long + "\nnext\n"

	lines, err := Read(strings.NewReader(text), Options{SkipLines: 1, EndMarker: marker})
	if err != nil {
		t.Fatalf("long line should be read: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != strings.TrimSpace(long) {
		t.Errorf("long line not preserved, got %d bytes", len(lines[0]))
	}
	if lines[1] != "next" {
		t.Errorf("Expected 'next', got %q", lines[1])
	}
}

func TestReadTrimsInformationSeparators(t *testing.T) {
	lines, err := Read(strings.NewReader("\x1c<<aside>>\x1f\n\x1dkeep\x1e\n"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0] != "keep" {
		t.Errorf("unexpected lines %q", lines)
	}
}
