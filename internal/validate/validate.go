package validate

import (
	"context"
	"fmt"

	"tcgcatalog/internal/store"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
	SeverityInfo  Severity = "info"
)

const (
	codeOrphanedCard        = "orphaned_card"
	codeRetreatCostMismatch = "retreat_cost_mismatch"
	codeSetTotalMismatch    = "set_total_mismatch"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	SetID    string
	CardID   string
}

type Report struct {
	Issues []Issue
}

// HasErrors reports whether any issue is error severity.
func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of issues at severity.
func (r *Report) Count(severity Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

// CatalogValidator is the store's integrity query surface.
type CatalogValidator interface {
	ListOrphanedCards(ctx context.Context) ([]store.CardSummary, error)
	ListRetreatCostMismatches(ctx context.Context) ([]store.CardSummary, error)
	ListSetTotalMismatches(ctx context.Context) ([]store.SetSummary, error)
}

// Run reports data quality findings. Nothing is corrected; the loader stores
// records as given.
func Run(ctx context.Context, db CatalogValidator) (*Report, error) {
	if db == nil {
		return nil, fmt.Errorf("store is required")
	}

	issues := make([]Issue, 0)

	orphans, err := db.ListOrphanedCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orphaned cards: %w", err)
	}
	for _, card := range orphans {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeOrphanedCard,
			Message:  fmt.Sprintf("card %s (%s) has no loaded set", card.CardID, card.Name),
			CardID:   card.CardID,
		})
	}

	mismatches, err := db.ListRetreatCostMismatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list retreat cost mismatches: %w", err)
	}
	for _, card := range mismatches {
		converted := 0
		if card.ConvertedRetreatCost != nil {
			converted = *card.ConvertedRetreatCost
		}
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Code:     codeRetreatCostMismatch,
			Message: fmt.Sprintf("card %s (%s) lists %d retreat energy but convertedRetreatCost is %d",
				card.CardID, card.Name, card.RetreatCostLength, converted),
			CardID: card.CardID,
		})
	}

	totals, err := db.ListSetTotalMismatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list set total mismatches: %w", err)
	}
	for _, set := range totals {
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Code:     codeSetTotalMismatch,
			Message:  fmt.Sprintf("set %s (%s) declares %d cards but %d are loaded", set.SetID, set.Name, set.Total, set.CardCount),
			SetID:    set.SetID,
		})
	}

	return &Report{Issues: issues}, nil
}
