// Package catalog holds the card and set reference model shared by the loader,
// the stores and the HTTP API.
package catalog

import "encoding/json"

// Set is a stored expansion. Ref is the store's internal identity and is
// never serialized; SetID is the business key.
type Set struct {
	Ref          int64           `json:"-"`
	SetID        string          `json:"setId"`
	Name         string          `json:"name"`
	Series       string          `json:"series"`
	PrintedTotal int             `json:"printedTotal"`
	Total        int             `json:"total"`
	Legalities   json.RawMessage `json:"legalities"`
	PTCGOCode    *string         `json:"ptcgoCode"`
	ReleaseDate  string          `json:"releaseDate"`
	UpdatedAt    string          `json:"updatedAt"`
	Images       json.RawMessage `json:"images"`
}

// Card is a stored card. SetRef is the internal identity of the related set
// (nil when the set was not loaded); SetID is that set's business key as
// rendered to clients.
type Card struct {
	Ref                    int64           `json:"-"`
	CardID                 string          `json:"cardId"`
	Name                   string          `json:"name"`
	Supertype              string          `json:"supertype"`
	Subtypes               []string        `json:"subtypes"`
	Level                  *string         `json:"level"`
	HP                     *string         `json:"hp"`
	Types                  []string        `json:"types"`
	EvolvesFrom            *string         `json:"evolvesFrom"`
	EvolvesTo              []string        `json:"evolvesTo"`
	Abilities              json.RawMessage `json:"abilities"`
	Attacks                json.RawMessage `json:"attacks"`
	Weaknesses             json.RawMessage `json:"weaknesses"`
	Resistances            json.RawMessage `json:"resistances"`
	RetreatCost            []string        `json:"retreatCost"`
	ConvertedRetreatCost   *int            `json:"convertedRetreatCost"`
	Number                 string          `json:"number"`
	Artist                 *string         `json:"artist"`
	Rarity                 *string         `json:"rarity"`
	FlavorText             *string         `json:"flavorText"`
	NationalPokedexNumbers []int           `json:"nationalPokedexNumbers"`
	Legalities             json.RawMessage `json:"legalities"`
	RegulationMark         *string         `json:"regulationMark"`
	Images                 json.RawMessage `json:"images"`
	TCGPlayer              json.RawMessage `json:"tcgPlayer"`
	Cardmarket             json.RawMessage `json:"cardmarket"`
	Rules                  []string        `json:"rules"`
	AncientTrait           json.RawMessage `json:"ancientTrait"`
	SetRef                 *int64          `json:"-"`
	SetID                  *string         `json:"setId"`
}

// SetRecord is one element of the bundled sets file.
type SetRecord struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Series       string          `json:"series"`
	PrintedTotal int             `json:"printedTotal"`
	Total        int             `json:"total"`
	Legalities   json.RawMessage `json:"legalities"`
	PTCGOCode    string          `json:"ptcgoCode"`
	ReleaseDate  string          `json:"releaseDate"`
	UpdatedAt    string          `json:"updatedAt"`
	Images       json.RawMessage `json:"images"`
}

// CardRecord is one element of a bundled cards file.
type CardRecord struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Supertype              string          `json:"supertype"`
	Subtypes               []string        `json:"subtypes"`
	Level                  string          `json:"level"`
	HP                     string          `json:"hp"`
	Types                  []string        `json:"types"`
	EvolvesFrom            string          `json:"evolvesFrom"`
	EvolvesTo              []string        `json:"evolvesTo"`
	Abilities              json.RawMessage `json:"abilities"`
	Attacks                json.RawMessage `json:"attacks"`
	Weaknesses             json.RawMessage `json:"weaknesses"`
	Resistances            json.RawMessage `json:"resistances"`
	RetreatCost            []string        `json:"retreatCost"`
	ConvertedRetreatCost   *int            `json:"convertedRetreatCost"`
	Number                 string          `json:"number"`
	Artist                 string          `json:"artist"`
	Rarity                 string          `json:"rarity"`
	FlavorText             string          `json:"flavorText"`
	NationalPokedexNumbers []int           `json:"nationalPokedexNumbers"`
	Legalities             json.RawMessage `json:"legalities"`
	RegulationMark         string          `json:"regulationMark"`
	Images                 json.RawMessage `json:"images"`
	TCGPlayer              json.RawMessage `json:"tcgplayer"`
	Cardmarket             json.RawMessage `json:"cardmarket"`
	Rules                  []string        `json:"rules"`
	AncientTrait           json.RawMessage `json:"ancientTrait"`
}

// Supertype values seen in the reference data.
const (
	SupertypePokemon = "Pokémon"
	SupertypeTrainer = "Trainer"
	SupertypeEnergy  = "Energy"
)
