package catalog

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NormalizeSet applies the storage defaults to a source record. The result is
// used unchanged for both the insert and the update path of an upsert.
func NormalizeSet(r SetRecord) Set {
	return Set{
		SetID:        r.ID,
		Name:         r.Name,
		Series:       r.Series,
		PrintedTotal: r.PrintedTotal,
		Total:        r.Total,
		Legalities:   blob(r.Legalities),
		PTCGOCode:    optional(r.PTCGOCode),
		ReleaseDate:  r.ReleaseDate,
		UpdatedAt:    r.UpdatedAt,
		Images:       blob(r.Images),
	}
}

// NormalizeCard applies the storage defaults to a source record: list fields
// become empty lists, empty optional scalars become nil and JSON nulls in
// opaque fields become nil. The set relation is left for the caller.
func NormalizeCard(r CardRecord) Card {
	return Card{
		CardID:                 r.ID,
		Name:                   r.Name,
		Supertype:              r.Supertype,
		Subtypes:               list(r.Subtypes),
		Level:                  optional(r.Level),
		HP:                     optional(r.HP),
		Types:                  list(r.Types),
		EvolvesFrom:            optional(r.EvolvesFrom),
		EvolvesTo:              list(r.EvolvesTo),
		Abilities:              blob(r.Abilities),
		Attacks:                blob(r.Attacks),
		Weaknesses:             blob(r.Weaknesses),
		Resistances:            blob(r.Resistances),
		RetreatCost:            list(r.RetreatCost),
		ConvertedRetreatCost:   r.ConvertedRetreatCost,
		Number:                 r.Number,
		Artist:                 optional(r.Artist),
		Rarity:                 optional(r.Rarity),
		FlavorText:             optional(r.FlavorText),
		NationalPokedexNumbers: list(r.NationalPokedexNumbers),
		Legalities:             blob(r.Legalities),
		RegulationMark:         optional(r.RegulationMark),
		Images:                 blob(r.Images),
		TCGPlayer:              blob(r.TCGPlayer),
		Cardmarket:             blob(r.Cardmarket),
		Rules:                  list(r.Rules),
		AncientTrait:           blob(r.AncientTrait),
	}
}

// SetIDFromCardID returns the set business key encoded in a card id: the part
// before the first "-". An id without a dash is returned whole.
func SetIDFromCardID(cardID string) string {
	setID, _, _ := strings.Cut(cardID, "-")
	return setID
}

// RetreatCost is the canonical retreat cost of a card, the number of energy
// tokens it lists. ConvertedRetreatCost is not consulted.
func RetreatCost(c Card) int {
	return len(c.RetreatCost)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func list[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func blob(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return trimmed
}
