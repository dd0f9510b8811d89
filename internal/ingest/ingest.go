package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tcgcatalog/internal/catalog"
)

const setProgressEvery = 10

type Result struct {
	SetsUpserted    int
	CardsUpserted   int
	FilesProcessed  int
	CardsWithoutSet int
}

type Options struct {
	SetsFile string
	CardsDir string
	// Progress receives human-readable progress lines. Nil discards them.
	Progress io.Writer
}

// Run loads the sets file and then every card file into db. Any failure
// aborts the run; records written before the failure stay written, and a
// re-run overwrites them.
func Run(ctx context.Context, db Store, options Options) (*Result, error) {
	progress := options.Progress
	if progress == nil {
		progress = io.Discard
	}

	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	result := &Result{}

	sets, err := readRecords[catalog.SetRecord](options.SetsFile)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(progress, "Loading %d sets from %s\n", len(sets), options.SetsFile)

	for i, record := range sets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if record.ID == "" {
			return nil, fmt.Errorf("set record %d in %s has no id", i, options.SetsFile)
		}
		if err := db.UpsertSet(ctx, catalog.NormalizeSet(record)); err != nil {
			return nil, fmt.Errorf("loading %s: %w", options.SetsFile, err)
		}
		result.SetsUpserted++
		if result.SetsUpserted%setProgressEvery == 0 {
			fmt.Fprintf(progress, "  Loaded %d/%d sets...\n", result.SetsUpserted, len(sets))
		}
	}
	fmt.Fprintf(progress, "Loaded %d sets\n", result.SetsUpserted)

	files, err := cardFiles(options.CardsDir)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(progress, "Loading cards from %d files in %s\n", len(files), options.CardsDir)

	refs := make(map[string]*int64)
	for i, path := range files {
		cards, err := readRecords[catalog.CardRecord](path)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(progress, "  [%d/%d] Processing %s (%d cards)...\n", i+1, len(files), filepath.Base(path), len(cards))

		for j, record := range cards {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if record.ID == "" {
				return nil, fmt.Errorf("card record %d in %s has no id", j, path)
			}

			setID := catalog.SetIDFromCardID(record.ID)
			ref, ok := refs[setID]
			if !ok {
				ref, err = db.SetRef(ctx, setID)
				if err != nil {
					return nil, fmt.Errorf("loading %s: %w", path, err)
				}
				refs[setID] = ref
			}

			card := catalog.NormalizeCard(record)
			card.SetRef = ref
			if ref == nil {
				result.CardsWithoutSet++
			}
			if err := db.UpsertCard(ctx, card); err != nil {
				return nil, fmt.Errorf("loading %s: %w", path, err)
			}
			result.CardsUpserted++
		}
		result.FilesProcessed++
	}
	fmt.Fprintf(progress, "Loaded %d cards\n", result.CardsUpserted)

	return result, nil
}

func readRecords[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

// cardFiles lists the files directly under dir whose names end in ".json"
// (case-sensitive), in directory order.
func cardFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading cards directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
