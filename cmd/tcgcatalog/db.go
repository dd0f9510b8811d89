package main

import (
	"context"
	"fmt"
	"strings"

	"tcgcatalog/internal/config"
	"tcgcatalog/internal/store"
	"tcgcatalog/internal/store/postgres"
	"tcgcatalog/internal/store/sqlite"
)

func openDB(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	dsn := cfg.Database.DSN
	switch {
	case strings.HasPrefix(dsn, sqlite.Scheme):
		db, err := sqlite.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return db, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := postgres.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database dsn: %s", dsn)
	}
}
