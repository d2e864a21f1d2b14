package wordfreq

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/wordfreq/pkg/wordfreq/analytics"
	"github.com/cognicore/wordfreq/pkg/wordfreq/config"
	"github.com/cognicore/wordfreq/pkg/wordfreq/corpus"
	"github.com/cognicore/wordfreq/pkg/wordfreq/ingest"
	"github.com/cognicore/wordfreq/pkg/wordfreq/rank"
	"github.com/cognicore/wordfreq/pkg/wordfreq/report"
	"github.com/cognicore/wordfreq/pkg/wordfreq/stoplist"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store"
)

// Runner executes the word-frequency pipeline
type Runner struct {
	store     store.Store
	logger    *log.Logger
	tokenizer *ingest.Tokenizer
	entropy   *ulid.MonotonicEntropy
	now       func() time.Time
}

// Options configures a Runner
type Options struct {
	// Store archives each finished run. Optional.
	Store store.Store
	// Logger receives progress messages. Nil uses the standard logger.
	Logger *log.Logger
	// Now overrides the clock used for run timestamps.
	Now func() time.Time
}

// New creates a Runner with the given dependencies
func New(opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Runner{
		store:     opts.Store,
		logger:    logger,
		tokenizer: ingest.NewTokenizer(),
		entropy:   ulid.Monotonic(rand.Reader, 0),
		now:       now,
	}
}

// Result summarizes one run
type Result struct {
	RunID      string
	Stopwords  int
	Lines      int
	Words      int
	Skipped    int
	Entries    []rank.Entry
	OutputPath string
}

// Run loads, tokenizes, counts, ranks and writes the report described by
// cfg. Each stage finishes before the next starts; the first I/O error ends
// the run.
func (r *Runner) Run(ctx context.Context, cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.now()
	res := &Result{
		RunID:      ulid.MustNew(ulid.Timestamp(createdAt), r.entropy).String(),
		OutputPath: cfg.OutputPath,
	}

	r.logger.Printf("Loading stopwords...")
	stops, err := stoplist.Load(cfg.StopwordsPath)
	if err != nil {
		return nil, fmt.Errorf("load stopwords: %w", err)
	}
	res.Stopwords = stops.Len()
	r.logger.Printf("Loaded %d stopwords.", res.Stopwords)

	r.logger.Printf("Loading corpus lines...")
	lines, err := corpus.Load(cfg.CorpusPath, corpus.Options{
		SkipLines: cfg.SkipLines,
		EndMarker: cfg.EndMarker,
	})
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	res.Lines = len(lines)
	r.logger.Printf("Loaded %d lines from %s.", res.Lines, cfg.CorpusPath)

	r.logger.Printf("Processing words...")
	words := r.tokenizer.TokenizeLines(lines)
	res.Words = len(words)
	r.logger.Printf("Processed %d words.", res.Words)

	r.logger.Printf("Counting words...")
	counter := analytics.NewCounter()
	counter.Process(words, stops)
	res.Skipped = counter.Skipped()
	r.logger.Printf("Counted %d unique words.", counter.Len())

	r.logger.Printf("Sorting word counts...")
	res.Entries = rank.Rank(counter)
	r.logger.Printf("Word counts sorted.")

	r.logger.Printf("Writing word counts to CSV...")
	if err := report.WriteCSV(cfg.OutputPath, res.Entries); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	r.logger.Printf("CSV file written to %s.", cfg.OutputPath)

	if r.store != nil {
		run := store.Run{
			ID:            res.RunID,
			CreatedAt:     createdAt,
			CorpusPath:    cfg.CorpusPath,
			StopwordsPath: cfg.StopwordsPath,
			OutputPath:    cfg.OutputPath,
			Stopwords:     res.Stopwords,
			Lines:         res.Lines,
			Words:         res.Words,
			UniqueWords:   len(res.Entries),
		}
		if err := r.store.SaveRun(ctx, run, res.Entries); err != nil {
			return nil, fmt.Errorf("archive run: %w", err)
		}
		r.logger.Printf("Run %s archived.", res.RunID)
	}

	return res, nil
}
