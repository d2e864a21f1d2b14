package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
)

// Defaults for the Project Gutenberg Shakespeare edition the tool was built for.
const (
	DefaultInputDir   = "data/shakespeare"
	DefaultOutputDir  = "artifacts"
	DefaultSkipLines  = 246
	DefaultEndMarker  = "End of this Etext"
	defaultStopwords  = "stopwords.txt"
	defaultCorpus     = "shakespeare.txt"
	defaultReportName = "shakespeare_report.csv"
)

// Config describes where a run reads its inputs and writes its report.
//
// SkipLines is the exact length of the corpus' boilerplate header. It is not
// detected from the text, so a different edition needs a different value.
type Config struct {
	StopwordsPath string `yaml:"stopwords_path"`
	CorpusPath    string `yaml:"corpus_path"`
	OutputPath    string `yaml:"output_path"`
	SkipLines     int    `yaml:"skip_lines"`
	EndMarker     string `yaml:"end_marker"`

	// ArchivePath is an optional SQLite file that keeps every run's ranked list.
	ArchivePath string `yaml:"archive_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StopwordsPath: filepath.Join(DefaultInputDir, defaultStopwords),
		CorpusPath:    filepath.Join(DefaultInputDir, defaultCorpus),
		OutputPath:    filepath.Join(DefaultOutputDir, defaultReportName),
		SkipLines:     DefaultSkipLines,
		EndMarker:     DefaultEndMarker,
	}
}

// Load reads a YAML file on top of Default. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports missing paths or a negative skip count.
func (c Config) Validate() error {
	if c.StopwordsPath == "" {
		return fmt.Errorf("%w: stopwords_path is empty", internalerr.ErrInvalidConfig)
	}
	if c.CorpusPath == "" {
		return fmt.Errorf("%w: corpus_path is empty", internalerr.ErrInvalidConfig)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output_path is empty", internalerr.ErrInvalidConfig)
	}
	if c.SkipLines < 0 {
		return fmt.Errorf("%w: skip_lines must be >= 0, got %d", internalerr.ErrInvalidConfig, c.SkipLines)
	}
	return nil
}
