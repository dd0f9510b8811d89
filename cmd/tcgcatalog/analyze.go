package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tcgcatalog/internal/analysis"
	"tcgcatalog/internal/apiclient"
	"tcgcatalog/internal/pagination"
)

const ruleWidth = 50

func analyzeCmd() *cobra.Command {
	var setID string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print HP, attack and retreat statistics for the Pokémon of a set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(setID)
		},
	}
	cmd.Flags().StringVar(&setID, "set", analysis.DefaultSetID, "Set id to analyze")
	return cmd
}

func runAnalyze(setID string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := apiclient.New(cfg.API.BaseURL, apiclient.WithTimeout(cfg.API.Timeout))
	if err != nil {
		return err
	}

	return analyzeSet(ctx, os.Stdout, client, setID)
}

// analyzeSet fetches and reports one set. Cancelling ctx aborts the
// in-flight API call.
func analyzeSet(ctx context.Context, out io.Writer, client analysis.Fetcher, setID string) error {
	fmt.Fprintf(out, "Fetching all Pokémon of %s...\n", setID)
	cards, err := analysis.FetchPokemon(ctx, client, setID, pagination.DefaultLimit, out)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	fmt.Fprintf(out, "\nAnalyzing %d Pokémon...\n", len(cards))
	printReport(out, analysis.Analyze(setID, cards), terminalRule())
	return nil
}

// terminalRule is a line of '=' no wider than the terminal.
func terminalRule() string {
	width := ruleWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
		width = w
	}
	return strings.Repeat("=", width)
}

func printReport(out io.Writer, r analysis.Report, rule string) {
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintln(out, "\n"+rule)
	fmt.Fprintln(out, heading(strings.ToUpper(r.SetID)+" POKÉMON ANALYSIS"))
	fmt.Fprintln(out, rule)

	fmt.Fprintln(out, "\n"+heading("OVERVIEW:"))
	fmt.Fprintf(out, "Total Pokémon: %d\n", r.TotalPokemon)
	fmt.Fprintf(out, "Pokémon with attacks: %d\n", r.WithAttacks)
	fmt.Fprintf(out, "Total attacks analyzed: %d\n", r.AttacksAnalyzed)

	printStats(out, heading("HP STATISTICS:"), "HP", "Pokémon with HP", r.HP)
	printStats(out, heading("ATTACK DAMAGE STATISTICS:"), "Damage", "Attacks analyzed", r.Damage)
	printStats(out, heading("ATTACK COST STATISTICS:"), "Attack Cost", "Attacks analyzed", r.AttackCost)
	printStats(out, heading("RETREAT COST STATISTICS:"), "Retreat Cost", "Pokémon analyzed", r.RetreatCost)

	fmt.Fprintln(out, "\n"+rule)
}

func printStats(out io.Writer, title, label, countLabel string, s analysis.Stats) {
	fmt.Fprintln(out, "\n"+title)
	fmt.Fprintf(out, "  Min %s: %d\n", label, s.Min)
	fmt.Fprintf(out, "  Max %s: %d\n", label, s.Max)
	fmt.Fprintf(out, "  Avg %s: %.2f\n", label, s.Avg)
	fmt.Fprintf(out, "  %s: %d\n", countLabel, s.Count)
}
