package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"tcgcatalog/internal/catalog"
	"tcgcatalog/internal/store"
)

var upsertCardSQL = store.UpsertSQL("cards", "card_id", store.CardColumns, store.DollarPlaceholder)

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
	_, err := c.pool.Exec(ctx, upsertCardSQL,
		card.CardID,
		card.Name,
		catalog.SearchKey(card.Name),
		card.Supertype,
		array(card.Subtypes),
		card.Level,
		card.HP,
		array(card.Types),
		card.EvolvesFrom,
		array(card.EvolvesTo),
		jsonb(card.Abilities),
		jsonb(card.Attacks),
		jsonb(card.Weaknesses),
		jsonb(card.Resistances),
		array(card.RetreatCost),
		card.ConvertedRetreatCost,
		card.Number,
		card.Artist,
		card.Rarity,
		card.FlavorText,
		array(card.NationalPokedexNumbers),
		jsonb(card.Legalities),
		card.RegulationMark,
		jsonb(card.Images),
		jsonb(card.TCGPlayer),
		jsonb(card.Cardmarket),
		array(card.Rules),
		jsonb(card.AncientTrait),
		card.SetRef,
	)
	if err != nil {
		return fmt.Errorf("upserting card %s: %w", card.CardID, err)
	}
	return nil
}

func (c *Client) ListCards(ctx context.Context, filter store.CardFilter, limit, offset int) ([]catalog.Card, error) {
	where, args := cardWhere(filter)
	n := len(args)
	query := selectCards + where +
		" ORDER BY c.id ASC LIMIT $" + strconv.Itoa(n+1) + " OFFSET $" + strconv.Itoa(n+2)
	args = append(args, limit, offset)

	rows, err := c.pool.Query(ctx, query, args...)
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
	if err := c.pool.QueryRow(ctx, "SELECT COUNT(*) FROM cards c "+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cards: %w", err)
	}
	return n, nil
}

func (c *Client) GetCard(ctx context.Context, cardID string) (*catalog.Card, error) {
	card, err := scanCard(c.pool.QueryRow(ctx, selectCards+"WHERE c.card_id = $1", cardID))
	if errors.Is(err, pgx.ErrNoRows) {
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
		args = append(args, catalog.ContainsPattern(filter.NameContains))
		conditions = append(conditions, `c.name_search LIKE $`+strconv.Itoa(len(args))+` ESCAPE '\'`)
	}
	if filter.SetRef != nil {
		args = append(args, *filter.SetRef)
		conditions = append(conditions, "c.set_ref = $"+strconv.Itoa(len(args)))
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func scanCard(row pgx.Row) (*catalog.Card, error) {
	var card catalog.Card
	var abilities, attacks, weaknesses, resistances []byte
	var legalities, images, tcgplayer, cardmarket, ancientTrait []byte

	err := row.Scan(
		&card.Ref,
		&card.CardID,
		&card.Name,
		&card.Supertype,
		&card.Subtypes,
		&card.Level,
		&card.HP,
		&card.Types,
		&card.EvolvesFrom,
		&card.EvolvesTo,
		&abilities,
		&attacks,
		&weaknesses,
		&resistances,
		&card.RetreatCost,
		&card.ConvertedRetreatCost,
		&card.Number,
		&card.Artist,
		&card.Rarity,
		&card.FlavorText,
		&card.NationalPokedexNumbers,
		&legalities,
		&card.RegulationMark,
		&images,
		&tcgplayer,
		&cardmarket,
		&card.Rules,
		&ancientTrait,
		&card.SetRef,
		&card.SetID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning card: %w", err)
	}

	card.Subtypes = array(card.Subtypes)
	card.Types = array(card.Types)
	card.EvolvesTo = array(card.EvolvesTo)
	card.RetreatCost = array(card.RetreatCost)
	card.NationalPokedexNumbers = array(card.NationalPokedexNumbers)
	card.Rules = array(card.Rules)

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
