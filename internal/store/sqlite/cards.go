package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tcgcatalog/internal/catalog"
	"tcgcatalog/internal/store"
)

var upsertCardSQL = store.UpsertSQL("cards", "card_id", store.CardColumns, store.QuestionPlaceholder)

const selectCards = `
	SELECT c.id, c.card_id, c.name, c.supertype, c.subtypes, c.level, c.hp, c.types,
	       c.evolves_from, c.evolves_to, c.abilities, c.attacks, c.weaknesses, c.resistances,
	       c.retreat_cost, c.converted_retreat_cost, c.number, c.artist, c.rarity, c.flavor_text,
	       c.national_pokedex_numbers, c.legalities, c.regulation_mark, c.images, c.tcgplayer,
	       c.cardmarket, c.rules, c.ancient_trait, c.set_ref, s.set_id
	FROM cards c
	LEFT JOIN sets s ON s.id = c.set_ref
	`

func (c *Client) UpsertCard(ctx context.Context, card catalog.Card) error {
	_, err := c.db.ExecContext(ctx, upsertCardSQL,
		card.CardID,
		card.Name,
		catalog.SearchKey(card.Name),
		card.Supertype,
		listText(card.Subtypes),
		card.Level,
		card.HP,
		listText(card.Types),
		card.EvolvesFrom,
		listText(card.EvolvesTo),
		blobText(card.Abilities),
		blobText(card.Attacks),
		blobText(card.Weaknesses),
		blobText(card.Resistances),
		listText(card.RetreatCost),
		card.ConvertedRetreatCost,
		card.Number,
		card.Artist,
		card.Rarity,
		card.FlavorText,
		listText(card.NationalPokedexNumbers),
		blobText(card.Legalities),
		card.RegulationMark,
		blobText(card.Images),
		blobText(card.TCGPlayer),
		blobText(card.Cardmarket),
		listText(card.Rules),
		blobText(card.AncientTrait),
		card.SetRef,
	)
	if err != nil {
		return fmt.Errorf("upserting card %s: %w", card.CardID, err)
	}
	return nil
}

func (c *Client) ListCards(ctx context.Context, filter store.CardFilter, limit, offset int) ([]catalog.Card, error) {
	where, args := cardWhere(filter)
	query := selectCards + where + ` ORDER BY c.id ASC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	cards := make([]catalog.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cards: %w", err)
	}
	return cards, nil
}

func (c *Client) CountCards(ctx context.Context, filter store.CardFilter) (int, error) {
	where, args := cardWhere(filter)

	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards c `+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cards: %w", err)
	}
	return n, nil
}

func (c *Client) GetCard(ctx context.Context, cardID string) (*catalog.Card, error) {
	card, err := scanCard(c.db.QueryRowContext(ctx, selectCards+`WHERE c.card_id = ?`, cardID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

func cardWhere(filter store.CardFilter) (string, []any) {
	var conditions []string
	var args []any
	if filter.NameContains != "" {
		conditions = append(conditions, `c.name_search LIKE ? ESCAPE '\'`)
		args = append(args, catalog.ContainsPattern(filter.NameContains))
	}
	if filter.SetRef != nil {
		conditions = append(conditions, `c.set_ref = ?`)
		args = append(args, *filter.SetRef)
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func scanCard(row rowScanner) (*catalog.Card, error) {
	var card catalog.Card
	var subtypes, types, evolvesTo, retreatCost, dex, rules []byte
	var abilities, attacks, weaknesses, resistances []byte
	var legalities, images, tcgplayer, cardmarket, ancientTrait []byte

	err := row.Scan(
		&card.Ref,
		&card.CardID,
		&card.Name,
		&card.Supertype,
		&subtypes,
		&card.Level,
		&card.HP,
		&types,
		&card.EvolvesFrom,
		&evolvesTo,
		&abilities,
		&attacks,
		&weaknesses,
		&resistances,
		&retreatCost,
		&card.ConvertedRetreatCost,
		&card.Number,
		&card.Artist,
		&card.Rarity,
		&card.FlavorText,
		&dex,
		&legalities,
		&card.RegulationMark,
		&images,
		&tcgplayer,
		&cardmarket,
		&rules,
		&ancientTrait,
		&card.SetRef,
		&card.SetID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning card: %w", err)
	}

	if card.Subtypes, err = decodeList[string]("subtypes", subtypes); err != nil {
		return nil, err
	}
	if card.Types, err = decodeList[string]("types", types); err != nil {
		return nil, err
	}
	if card.EvolvesTo, err = decodeList[string]("evolves_to", evolvesTo); err != nil {
		return nil, err
	}
	if card.RetreatCost, err = decodeList[string]("retreat_cost", retreatCost); err != nil {
		return nil, err
	}
	if card.NationalPokedexNumbers, err = decodeList[int]("national_pokedex_numbers", dex); err != nil {
		return nil, err
	}
	if card.Rules, err = decodeList[string]("rules", rules); err != nil {
		return nil, err
	}

	card.Abilities = decodeBlob(abilities)
	card.Attacks = decodeBlob(attacks)
	card.Weaknesses = decodeBlob(weaknesses)
	card.Resistances = decodeBlob(resistances)
	card.Legalities = decodeBlob(legalities)
	card.Images = decodeBlob(images)
	card.TCGPlayer = decodeBlob(tcgplayer)
	card.Cardmarket = decodeBlob(cardmarket)
	card.AncientTrait = decodeBlob(ancientTrait)

	return &card, nil
}
