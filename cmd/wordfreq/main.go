package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cognicore/wordfreq/pkg/wordfreq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/config"
	"github.com/cognicore/wordfreq/pkg/wordfreq/rank"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store/sqlite"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "Optional YAML config; built-in defaults are used when empty")
		top      = flag.Int("top", 0, "Print the N most frequent words (after a run, or with -show)")
		listRuns = flag.Bool("runs", false, "List archived runs instead of running the pipeline (needs archive_path)")
		showID   = flag.String("show", "", "Print the ranked list of an archived run instead of running the pipeline (needs archive_path)")
	)
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	var archive store.Store
	if cfg.ArchivePath != "" {
		archive, err = sqlite.OpenSQLite(ctx, cfg.ArchivePath)
		if err != nil {
			log.Fatalf("open archive %s: %v", cfg.ArchivePath, err)
		}
	}

	if err := run(ctx, os.Stdout, cfg, archive, *listRuns, *showID, *top); err != nil {
		if archive != nil {
			archive.Close()
		}
		log.Fatalf("%v", err)
	}
	if archive != nil {
		archive.Close()
	}
}

// run dispatches between the archive queries and a pipeline run.
func run(ctx context.Context, w io.Writer, cfg config.Config, archive store.Store, listRuns bool, showID string, top int) error {
	if (listRuns || showID != "") && archive == nil {
		return fmt.Errorf("-runs and -show need archive_path in the config")
	}

	switch {
	case listRuns:
		return printRuns(ctx, w, archive, top)
	case showID != "":
		return printRun(ctx, w, archive, showID, top)
	}

	runner := wordfreq.New(wordfreq.Options{Store: archive})
	res, err := runner.Run(ctx, cfg)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	printTop(w, res.Entries, top)
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func printTop(w io.Writer, entries []rank.Entry, n int) {
	if n <= 0 {
		return
	}
	for i, e := range rank.Top(entries, n) {
		fmt.Fprintf(w, "%d. %s: %d\n", i+1, e.Word, e.Count)
	}
}

// printRuns lists archived runs newest first, limit <= 0 meaning all.
func printRuns(ctx context.Context, w io.Writer, st store.Store, limit int) error {
	runs, err := st.ListRuns(ctx, limit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d words\t%d unique\n",
			r.ID, r.CreatedAt.UTC().Format(time.RFC3339), r.CorpusPath, r.Words, r.UniqueWords)
	}
	return nil
}

// printRun prints the ranked list of one archived run.
func printRun(ctx context.Context, w io.Writer, st store.Store, id string, limit int) error {
	r, err := st.GetRun(ctx, id)
	if err != nil {
		return fmt.Errorf("show run: %w", err)
	}
	fmt.Fprintf(w, "run %s: %s (%d unique words)\n", r.ID, r.CorpusPath, r.UniqueWords)

	entries, err := st.GetEntries(ctx, id, limit)
	if err != nil {
		return fmt.Errorf("show run: %w", err)
	}
	for i, e := range entries {
		fmt.Fprintf(w, "%d. %s: %d\n", i+1, e.Word, e.Count)
	}
	return nil
}
