// Package analysis computes HP, attack and retreat statistics for the
// Pokémon of one set, read page by page from the catalog HTTP API.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"tcgcatalog/internal/catalog"
	"tcgcatalog/internal/pagination"
)

const DefaultSetID = "base1"

// Fetcher lists the cards of one set through the HTTP API.
type Fetcher interface {
	ListCardsBySet(ctx context.Context, setID string, query url.Values) (json.RawMessage, error)
}

type Attack struct {
	Name   string   `json:"name"`
	Cost   []string `json:"cost"`
	Damage string   `json:"damage"`
}

// Card is the subset of an API card the analysis reads.
type Card struct {
	CardID      string          `json:"cardId"`
	Name        string          `json:"name"`
	Supertype   string          `json:"supertype"`
	HP          *string         `json:"hp"`
	RetreatCost []string        `json:"retreatCost"`
	Attacks     json.RawMessage `json:"attacks"`
}

// ParsedAttacks decodes the attacks blob. Anything that is not a list of
// attack objects counts as no attacks.
func (c Card) ParsedAttacks() []Attack {
	var attacks []Attack
	if len(c.Attacks) == 0 || json.Unmarshal(c.Attacks, &attacks) != nil {
		return nil
	}
	return attacks
}

// FetchPokemon pages through the set with the given page size until the API
// reports no next page, keeping only Pokémon cards.
func FetchPokemon(ctx context.Context, f Fetcher, setID string, pageSize int, progress io.Writer) ([]Card, error) {
	if progress == nil {
		progress = io.Discard
	}
	if pageSize <= 0 {
		pageSize = pagination.DefaultLimit
	}

	var pokemon []Card
	offset := 0
	for {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(pageSize))
		query.Set("offset", strconv.Itoa(offset))

		raw, err := f.ListCardsBySet(ctx, setID, query)
		if err != nil {
			return nil, fmt.Errorf("fetching cards of %s at offset %d: %w", setID, offset, err)
		}
		var page pagination.Envelope[Card]
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("decoding cards of %s at offset %d: %w", setID, offset, err)
		}

		kept := 0
		for _, card := range page.Data {
			if card.Supertype == catalog.SupertypePokemon {
				pokemon = append(pokemon, card)
				kept++
			}
		}
		fmt.Fprintf(progress, "Fetched %d Pokémon (total: %d)\n", kept, len(pokemon))

		if !page.Pagination.HasNext || len(page.Data) == 0 {
			break
		}
		offset += pageSize
	}
	return pokemon, nil
}

type Stats struct {
	Min   int
	Max   int
	Avg   float64
	Count int
}

// Summarize returns min, max, mean and count. An empty input yields all
// zeros.
func Summarize(values []int) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	s := Stats{Min: values[0], Max: values[0], Count: len(values)}
	sum := 0
	for _, v := range values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		sum += v
	}
	s.Avg = float64(sum) / float64(len(values))
	return s
}

type Report struct {
	SetID           string
	TotalPokemon    int
	WithAttacks     int
	AttacksAnalyzed int
	HP              Stats
	Damage          Stats
	AttackCost      Stats
	RetreatCost     Stats
}

func Analyze(setID string, cards []Card) Report {
	var hp, damage, attackCost, retreat []int
	report := Report{SetID: setID, TotalPokemon: len(cards)}

	for _, card := range cards {
		if card.HP != nil {
			if v, ok := leadingInt(*card.HP); ok {
				hp = append(hp, v)
			}
		}
		retreat = append(retreat, len(card.RetreatCost))

		attacks := card.ParsedAttacks()
		if len(attacks) == 0 {
			continue
		}
		report.WithAttacks++
		for _, attack := range attacks {
			if v, ok := ParseDamage(attack.Damage); ok {
				damage = append(damage, v)
				report.AttacksAnalyzed++
			}
			attackCost = append(attackCost, len(attack.Cost))
		}
	}

	report.HP = Summarize(hp)
	report.Damage = Summarize(damage)
	report.AttackCost = Summarize(attackCost)
	report.RetreatCost = Summarize(retreat)
	return report
}

// ParseDamage reads the base damage of an attack: "30" and "30+" give 30,
// "20×" gives 20. Variable ("?") and empty damage are skipped.
func ParseDamage(damage string) (int, bool) {
	if damage == "" {
		return 0, false
	}
	switch {
	case strings.Contains(damage, "+"):
		damage, _, _ = strings.Cut(damage, "+")
	case strings.Contains(damage, "×"):
		damage, _, _ = strings.Cut(damage, "×")
	case strings.Contains(damage, "?"):
		return 0, false
	}
	return leadingInt(damage)
}

// leadingInt parses an optionally signed run of digits at the start of s,
// after leading whitespace, ignoring whatever follows.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
