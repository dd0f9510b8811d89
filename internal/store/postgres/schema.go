package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	// All statements go out in one simple-protocol call, which PostgreSQL runs
	// in an implicit transaction.
	ddl := `
CREATE TABLE IF NOT EXISTS sets (
    id            BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    set_id        TEXT NOT NULL,
    name          TEXT NOT NULL DEFAULT '',
    series        TEXT NOT NULL DEFAULT '',
    printed_total INTEGER NOT NULL DEFAULT 0,
    total         INTEGER NOT NULL DEFAULT 0,
    legalities    JSONB,
    ptcgo_code    TEXT,
    release_date  TEXT NOT NULL DEFAULT '',
    updated_at    TEXT NOT NULL DEFAULT '',
    images        JSONB,
    CONSTRAINT uq_sets_set_id UNIQUE (set_id)
);

CREATE TABLE IF NOT EXISTS cards (
    id                       BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    card_id                  TEXT NOT NULL,
    name                     TEXT NOT NULL DEFAULT '',
    name_search              TEXT NOT NULL DEFAULT '',
    supertype                TEXT NOT NULL DEFAULT '',
    subtypes                 TEXT[] NOT NULL DEFAULT '{}',
    level                    TEXT,
    hp                       TEXT,
    types                    TEXT[] NOT NULL DEFAULT '{}',
    evolves_from             TEXT,
    evolves_to               TEXT[] NOT NULL DEFAULT '{}',
    abilities                JSONB,
    attacks                  JSONB,
    weaknesses               JSONB,
    resistances              JSONB,
    retreat_cost             TEXT[] NOT NULL DEFAULT '{}',
    converted_retreat_cost   INTEGER,
    number                   TEXT NOT NULL DEFAULT '',
    artist                   TEXT,
    rarity                   TEXT,
    flavor_text              TEXT,
    national_pokedex_numbers INTEGER[] NOT NULL DEFAULT '{}',
    legalities               JSONB,
    regulation_mark          TEXT,
    images                   JSONB,
    tcgplayer                JSONB,
    cardmarket               JSONB,
    rules                    TEXT[] NOT NULL DEFAULT '{}',
    ancient_trait            JSONB,
    set_ref                  BIGINT REFERENCES sets(id),
    CONSTRAINT uq_cards_card_id UNIQUE (card_id)
);

CREATE INDEX IF NOT EXISTS idx_sets_release_date ON sets (release_date);
CREATE INDEX IF NOT EXISTS idx_sets_ptcgo_code ON sets (ptcgo_code);
CREATE INDEX IF NOT EXISTS idx_cards_set_ref ON cards (set_ref);
CREATE INDEX IF NOT EXISTS idx_cards_name_search ON cards (name_search text_pattern_ops);
`
	_, err := c.pool.Exec(ctx, ddl)
	if err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
