package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
	"github.com/cognicore/wordfreq/pkg/wordfreq/rank"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and creates the
// archive tables if needed.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	corpus_path TEXT,
	stopwords_path TEXT,
	output_path TEXT,
	stopwords INTEGER DEFAULT 0,
	lines INTEGER DEFAULT 0,
	words INTEGER DEFAULT 0,
	unique_words INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS word_counts (
	run_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	word TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(run_id, position),
	UNIQUE(run_id, word),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun writes the run row and its ranked list in one transaction,
// replacing an earlier run with the same ID.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run, entries []rank.Entry) error {
	if r.ID == "" {
		return fmt.Errorf("%w: run id is required", internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO runs (id, created_at, corpus_path, stopwords_path, output_path, stopwords, lines, words, unique_words)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	created_at=excluded.created_at,
	corpus_path=excluded.corpus_path,
	stopwords_path=excluded.stopwords_path,
	output_path=excluded.output_path,
	stopwords=excluded.stopwords,
	lines=excluded.lines,
	words=excluded.words,
	unique_words=excluded.unique_words;
`
	_, err = tx.ExecContext(
		ctx,
		stmt,
		r.ID,
		r.CreatedAt.UTC().Format(timeLayout),
		r.CorpusPath,
		r.StopwordsPath,
		r.OutputPath,
		r.Stopwords,
		r.Lines,
		r.Words,
		r.UniqueWords,
	)
	if err != nil {
		return err
	}

	if err := replaceEntries(ctx, tx, r.ID, entries); err != nil {
		return err
	}

	return tx.Commit()
}

func replaceEntries(ctx context.Context, tx *sql.Tx, runID string, entries []rank.Entry) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM word_counts WHERE run_id=?`, runID); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO word_counts (run_id, position, word, count) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, runID, i, e.Word, e.Count); err != nil {
			return err
		}
	}
	return nil
}

// GetRun loads a run by ID
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, created_at, corpus_path, stopwords_path, output_path, stopwords, lines, words, unique_words
FROM runs WHERE id=?`, id)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return r, err
}

// GetEntries returns a run's ranked list in rank order. limit <= 0 means all.
func (s *sqliteStore) GetEntries(ctx context.Context, runID string, limit int) ([]rank.Entry, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT word, count FROM word_counts
WHERE run_id=?
ORDER BY position
LIMIT ?`, runID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []rank.Entry{}
	for rows.Next() {
		var e rank.Entry
		if err := rows.Scan(&e.Word, &e.Count); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListRuns returns runs newest first
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, created_at, corpus_path, stopwords_path, output_path, stopwords, lines, words, unique_words
FROM runs
ORDER BY created_at DESC, id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (store.Run, error) {
	var (
		r       store.Run
		created string
	)
	err := row.Scan(
		&r.ID,
		&created,
		&r.CorpusPath,
		&r.StopwordsPath,
		&r.OutputPath,
		&r.Stopwords,
		&r.Lines,
		&r.Words,
		&r.UniqueWords,
	)
	if err != nil {
		return store.Run{}, err
	}
	if t, err := time.Parse(timeLayout, created); err == nil {
		r.CreatedAt = t
	}
	return r, nil
}
