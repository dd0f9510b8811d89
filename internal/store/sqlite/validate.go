package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"tcgcatalog/internal/store"
)

func (c *Client) ListOrphanedCards(ctx context.Context) ([]store.CardSummary, error) {
	query := `
	SELECT card_id, name, json_array_length(retreat_cost), converted_retreat_cost
	FROM cards
	WHERE set_ref IS NULL
	ORDER BY id ASC
	`
	return c.cardSummaries(ctx, "orphaned cards", query)
}

func (c *Client) ListRetreatCostMismatches(ctx context.Context) ([]store.CardSummary, error) {
	query := `
	SELECT card_id, name, json_array_length(retreat_cost), converted_retreat_cost
	FROM cards
	WHERE converted_retreat_cost IS NOT NULL
	  AND converted_retreat_cost != json_array_length(retreat_cost)
	ORDER BY id ASC
	`
	return c.cardSummaries(ctx, "retreat cost mismatches", query)
}

func (c *Client) ListSetTotalMismatches(ctx context.Context) ([]store.SetSummary, error) {
	query := `
	SELECT s.set_id, s.name, s.total, COUNT(c.id)
	FROM sets s
	LEFT JOIN cards c ON c.set_ref = s.id
	GROUP BY s.id, s.set_id, s.name, s.total
	HAVING COUNT(c.id) != s.total
	ORDER BY s.set_id ASC
	`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying set total mismatches: %w", err)
	}
	defer rows.Close()

	results := make([]store.SetSummary, 0)
	for rows.Next() {
		var s store.SetSummary
		if err := rows.Scan(&s.SetID, &s.Name, &s.Total, &s.CardCount); err != nil {
			return nil, fmt.Errorf("scanning set total mismatch: %w", err)
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating set total mismatches: %w", err)
	}
	return results, nil
}

func (c *Client) cardSummaries(ctx context.Context, what, query string) ([]store.CardSummary, error) {
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", what, err)
	}
	defer rows.Close()

	results := make([]store.CardSummary, 0)
	for rows.Next() {
		var s store.CardSummary
		var converted sql.NullInt64
		if err := rows.Scan(&s.CardID, &s.Name, &s.RetreatCostLength, &converted); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", what, err)
		}
		if converted.Valid {
			v := int(converted.Int64)
			s.ConvertedRetreatCost = &v
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", what, err)
	}
	return results, nil
}
