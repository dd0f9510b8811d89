package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tcgcatalog/internal/store"

	_ "modernc.org/sqlite"
)

const connectTimeout = 30 * time.Second

var _ store.Store = (*Client)(nil)

// Client is the SQLite catalog store. Lists and blobs are kept as JSON text.
type Client struct {
	db *sql.DB
}

func New(ctx context.Context, dsn string) (*Client, error) {
	path, err := parseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing sqlite DSN: %w", err)
	}

	db, err := sql.Open("sqlite", withPragmas(path))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %s: %w", path, err)
	}
	if path == memoryDSN {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite database %s: %w", path, err)
	}

	return &Client{db: db}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.db.Close()
}
