package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tcgcatalog/internal/pagination"
	"tcgcatalog/internal/store"
)

func queryCardsCmd() *cobra.Command {
	var name, setID string
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List cards, optionally by name substring or set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryCards(name, setID, limit, offset)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Case-insensitive name substring")
	cmd.Flags().StringVar(&setID, "set", "", "Only cards of this set id")
	cmd.Flags().IntVar(&limit, "limit", pagination.DefaultLimit, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Records to skip")
	return cmd
}

func runQueryCards(name, setID string, limit, offset int) error {
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

	filter := store.CardFilter{NameContains: name}
	if setID != "" {
		set, err := db.GetSet(ctx, setID)
		if err != nil {
			return err
		}
		if set == nil {
			fmt.Fprintf(os.Stdout, "No set found for %q.\n", setID)
			return nil
		}
		filter.SetRef = &set.Ref
	}

	req := pagination.Parse(fmt.Sprint(limit), fmt.Sprint(offset))
	total, err := db.CountCards(ctx, filter)
	if err != nil {
		return err
	}
	cards, err := db.ListCards(ctx, filter, req.Limit, req.Offset)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Fprintln(os.Stdout, "No cards found.")
		return nil
	}

	for _, card := range cards {
		fmt.Fprintf(os.Stdout, "%s  %s (%s)\n", card.CardID, card.Name, card.Supertype)
	}
	meta := pagination.NewMeta(total, req)
	fmt.Fprintf(os.Stdout, "\nPage %d of %d (%d cards)\n", meta.Page, meta.TotalPages, meta.Total)
	return nil
}

func queryCardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card <cardId>",
		Short: "Display one card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryCard(args[0])
		},
	}
	return cmd
}

func runQueryCard(cardID string) error {
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

	card, err := db.GetCard(ctx, cardID)
	if err != nil {
		return err
	}
	if card == nil {
		fmt.Fprintf(os.Stdout, "No card found for %q.\n", cardID)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Card: %s\n", card.CardID)
	fmt.Fprintf(os.Stdout, "Name: %s\n", card.Name)
	fmt.Fprintf(os.Stdout, "Supertype: %s\n", card.Supertype)
	if len(card.Subtypes) > 0 {
		fmt.Fprintf(os.Stdout, "Subtypes: %s\n", strings.Join(card.Subtypes, ", "))
	}
	if card.HP != nil {
		fmt.Fprintf(os.Stdout, "HP: %s\n", *card.HP)
	}
	if len(card.Types) > 0 {
		fmt.Fprintf(os.Stdout, "Types: %s\n", strings.Join(card.Types, ", "))
	}
	if len(card.RetreatCost) > 0 {
		fmt.Fprintf(os.Stdout, "Retreat: %s\n", strings.Join(card.RetreatCost, ", "))
	}
	if card.SetID != nil {
		fmt.Fprintf(os.Stdout, "Set: %s\n", *card.SetID)
	} else {
		fmt.Fprintln(os.Stdout, "Set: (not loaded)")
	}
	if card.Rarity != nil {
		fmt.Fprintf(os.Stdout, "Rarity: %s\n", *card.Rarity)
	}
	return nil
}
