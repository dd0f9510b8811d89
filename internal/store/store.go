package store

import (
	"context"

	"tcgcatalog/internal/catalog"
)

// Store is the reference data store. Getters return (nil, nil) when the
// business key is absent.
type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	UpsertSet(ctx context.Context, s catalog.Set) error
	UpsertCard(ctx context.Context, c catalog.Card) error
	SetRef(ctx context.Context, setID string) (*int64, error)

	ListSets(ctx context.Context, limit, offset int) ([]catalog.Set, error)
	CountSets(ctx context.Context) (int, error)
	GetSet(ctx context.Context, setID string) (*catalog.Set, error)
	GetSetByPTCGOCode(ctx context.Context, code string) (*catalog.Set, error)

	ListCards(ctx context.Context, filter CardFilter, limit, offset int) ([]catalog.Card, error)
	CountCards(ctx context.Context, filter CardFilter) (int, error)
	GetCard(ctx context.Context, cardID string) (*catalog.Card, error)

	ListOrphanedCards(ctx context.Context) ([]CardSummary, error)
	ListRetreatCostMismatches(ctx context.Context) ([]CardSummary, error)
	ListSetTotalMismatches(ctx context.Context) ([]SetSummary, error)
}
