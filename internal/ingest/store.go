package ingest

import (
	"context"

	"tcgcatalog/internal/catalog"
)

// Store is the slice of the reference data store the loader writes through.
type Store interface {
	EnsureSchema(ctx context.Context) error
	UpsertSet(ctx context.Context, s catalog.Set) error
	SetRef(ctx context.Context, setID string) (*int64, error)
	UpsertCard(ctx context.Context, c catalog.Card) error
}
