package sqlite

import (
	"context"
	"fmt"
	"strings"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS sets (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		set_id        TEXT NOT NULL,
		name          TEXT NOT NULL DEFAULT '',
		series        TEXT NOT NULL DEFAULT '',
		printed_total INTEGER NOT NULL DEFAULT 0,
		total         INTEGER NOT NULL DEFAULT 0,
		legalities    TEXT,
		ptcgo_code    TEXT,
		release_date  TEXT NOT NULL DEFAULT '',
		updated_at    TEXT NOT NULL DEFAULT '',
		images        TEXT,
		CONSTRAINT uq_sets_set_id UNIQUE (set_id)
	);

	CREATE TABLE IF NOT EXISTS cards (
		id                       INTEGER PRIMARY KEY AUTOINCREMENT,
		card_id                  TEXT NOT NULL,
		name                     TEXT NOT NULL DEFAULT '',
		name_search              TEXT NOT NULL DEFAULT '',
		supertype                TEXT NOT NULL DEFAULT '',
		subtypes                 TEXT NOT NULL DEFAULT '[]',
		level                    TEXT,
		hp                       TEXT,
		types                    TEXT NOT NULL DEFAULT '[]',
		evolves_from             TEXT,
		evolves_to               TEXT NOT NULL DEFAULT '[]',
		abilities                TEXT,
		attacks                  TEXT,
		weaknesses               TEXT,
		resistances              TEXT,
		retreat_cost             TEXT NOT NULL DEFAULT '[]',
		converted_retreat_cost   INTEGER,
		number                   TEXT NOT NULL DEFAULT '',
		artist                   TEXT,
		rarity                   TEXT,
		flavor_text              TEXT,
		national_pokedex_numbers TEXT NOT NULL DEFAULT '[]',
		legalities               TEXT,
		regulation_mark          TEXT,
		images                   TEXT,
		tcgplayer                TEXT,
		cardmarket               TEXT,
		rules                    TEXT NOT NULL DEFAULT '[]',
		ancient_trait            TEXT,
		set_ref                  INTEGER REFERENCES sets(id),
		CONSTRAINT uq_cards_card_id UNIQUE (card_id)
	);

	CREATE INDEX IF NOT EXISTS idx_sets_release_date ON sets (release_date);
	CREATE INDEX IF NOT EXISTS idx_sets_ptcgo_code ON sets (ptcgo_code);
	CREATE INDEX IF NOT EXISTS idx_cards_set_ref ON cards (set_ref);
	CREATE INDEX IF NOT EXISTS idx_cards_name_search ON cards (name_search);
	`

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}

	return nil
}

func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(stripped, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		statements = append(statements, current.String())
	}

	return statements
}
