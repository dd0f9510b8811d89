package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcgcatalog/internal/pagination"
)

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the loaded catalog from the CLI",
	}
	cmd.AddCommand(querySetsCmd())
	cmd.AddCommand(querySetCmd())
	cmd.AddCommand(queryCardsCmd())
	cmd.AddCommand(queryCardCmd())
	return cmd
}

func querySetsCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List sets, newest release first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuerySets(limit, offset)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", pagination.DefaultLimit, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Records to skip")
	return cmd
}

func runQuerySets(limit, offset int) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	req := pagination.Parse(fmt.Sprint(limit), fmt.Sprint(offset))
	total, err := db.CountSets(ctx)
	if err != nil {
		return err
	}
	sets, err := db.ListSets(ctx, req.Limit, req.Offset)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		fmt.Fprintln(os.Stdout, "No sets found.")
		return nil
	}

	for _, set := range sets {
		fmt.Fprintf(os.Stdout, "%s  %s (%s) [%s] %d cards\n", set.SetID, set.Name, set.Series, set.ReleaseDate, set.Total)
	}
	meta := pagination.NewMeta(total, req)
	fmt.Fprintf(os.Stdout, "\nPage %d of %d (%d sets)\n", meta.Page, meta.TotalPages, meta.Total)
	return nil
}

func querySetCmd() *cobra.Command {
	var byCode bool
	cmd := &cobra.Command{
		Use:   "set <setId>",
		Short: "Display one set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuerySet(args[0], byCode)
		},
	}
	cmd.Flags().BoolVar(&byCode, "code", false, "Treat the argument as a PTCGO code")
	return cmd
}

func runQuerySet(key string, byCode bool) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	get := db.GetSet
	if byCode {
		get = db.GetSetByPTCGOCode
	}
	set, err := get(ctx, key)
	if err != nil {
		return err
	}
	if set == nil {
		fmt.Fprintf(os.Stdout, "No set found for %q.\n", key)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Set: %s\n", set.SetID)
	fmt.Fprintf(os.Stdout, "Name: %s\n", set.Name)
	fmt.Fprintf(os.Stdout, "Series: %s\n", set.Series)
	if set.PTCGOCode != nil {
		fmt.Fprintf(os.Stdout, "PTCGO code: %s\n", *set.PTCGOCode)
	}
	fmt.Fprintf(os.Stdout, "Released: %s\n", set.ReleaseDate)
	fmt.Fprintf(os.Stdout, "Cards: %d printed, %d total\n", set.PrintedTotal, set.Total)
	return nil
}
