package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcgcatalog/internal/ingest"
)

func loadCmd() *cobra.Command {
	var setsFile string
	var cardsDir string
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load sets and cards from the bundled JSON files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(setsFile, cardsDir)
		},
	}
	cmd.Flags().StringVar(&setsFile, "sets", "", "Sets file (overrides data.sets_file)")
	cmd.Flags().StringVar(&cardsDir, "cards", "", "Cards directory (overrides data.cards_dir)")
	return cmd
}

func runLoad(setsFile, cardsDir string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if setsFile == "" {
		setsFile = cfg.Data.SetsFile
	}
	if cardsDir == "" {
		cardsDir = cfg.Data.CardsDir
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	fmt.Fprintln(os.Stdout, "Starting data load...")
	result, err := ingest.Run(ctx, db, ingest.Options{
		SetsFile: setsFile,
		CardsDir: cardsDir,
		Progress: os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("data load failed: %w", err)
	}

	fmt.Fprintln(os.Stdout, "Data load complete.")
	fmt.Fprintf(os.Stdout, "  Sets upserted:     %d\n", result.SetsUpserted)
	fmt.Fprintf(os.Stdout, "  Cards upserted:    %d\n", result.CardsUpserted)
	fmt.Fprintf(os.Stdout, "  Files processed:   %d\n", result.FilesProcessed)
	fmt.Fprintf(os.Stdout, "  Cards without set: %d\n", result.CardsWithoutSet)
	return nil
}
