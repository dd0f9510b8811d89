package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"tcgcatalog/internal/catalog"
	"tcgcatalog/internal/store"
)

var upsertSetSQL = store.UpsertSQL("sets", "set_id", store.SetColumns, store.DollarPlaceholder)

const selectSets = `
SELECT id, set_id, name, series, printed_total, total, legalities, ptcgo_code, release_date, updated_at, images
FROM sets
`

func (c *Client) UpsertSet(ctx context.Context, s catalog.Set) error {
	_, err := c.pool.Exec(ctx, upsertSetSQL,
		s.SetID,
		s.Name,
		s.Series,
		s.PrintedTotal,
		s.Total,
		jsonb(s.Legalities),
		s.PTCGOCode,
		s.ReleaseDate,
		s.UpdatedAt,
		jsonb(s.Images),
	)
	if err != nil {
		return fmt.Errorf("upserting set %s: %w", s.SetID, err)
	}
	return nil
}

func (c *Client) SetRef(ctx context.Context, setID string) (*int64, error) {
	var ref int64
	err := c.pool.QueryRow(ctx, "SELECT id FROM sets WHERE set_id = $1", setID).Scan(&ref)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up set %s: %w", setID, err)
	}
	return &ref, nil
}

func (c *Client) ListSets(ctx context.Context, limit, offset int) ([]catalog.Set, error) {
	rows, err := c.pool.Query(ctx, selectSets+"ORDER BY release_date DESC, id ASC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing sets: %w", err)
	}
	defer rows.Close()

	sets := make([]catalog.Set, 0)
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sets: %w", err)
	}
	return sets, nil
}

func (c *Client) CountSets(ctx context.Context) (int, error) {
	var n int
	if err := c.pool.QueryRow(ctx, "SELECT COUNT(*) FROM sets").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sets: %w", err)
	}
	return n, nil
}

func (c *Client) GetSet(ctx context.Context, setID string) (*catalog.Set, error) {
	return c.getSet(ctx, selectSets+"WHERE set_id = $1", setID)
}

func (c *Client) GetSetByPTCGOCode(ctx context.Context, code string) (*catalog.Set, error) {
	return c.getSet(ctx, selectSets+"WHERE ptcgo_code = $1 ORDER BY id ASC LIMIT 1", code)
}

func (c *Client) getSet(ctx context.Context, query, arg string) (*catalog.Set, error) {
	s, err := scanSet(c.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func scanSet(row pgx.Row) (*catalog.Set, error) {
	var s catalog.Set
	var legalities, images []byte
	err := row.Scan(
		&s.Ref,
		&s.SetID,
		&s.Name,
		&s.Series,
		&s.PrintedTotal,
		&s.Total,
		&legalities,
		&s.PTCGOCode,
		&s.ReleaseDate,
		&s.UpdatedAt,
		&images,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning set: %w", err)
	}
	s.Legalities = decodeBlob(legalities)
	s.Images = decodeBlob(images)
	return &s, nil
}
