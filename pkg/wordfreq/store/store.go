package store

import (
	"context"
	"time"

	"github.com/cognicore/wordfreq/pkg/wordfreq/rank"
)

// Store archives finished runs and their ranked lists.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run, entries []rank.Entry) error
	GetRun(ctx context.Context, id string) (Run, error)
	GetEntries(ctx context.Context, runID string, limit int) ([]rank.Entry, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// Run records one pipeline execution
type Run struct {
	ID            string
	CreatedAt     time.Time
	CorpusPath    string
	StopwordsPath string
	OutputPath    string
	Stopwords     int
	Lines         int
	Words         int
	UniqueWords   int
}
