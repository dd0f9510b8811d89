package catalog

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeCard_Defaults(t *testing.T) {
	var record CardRecord
	if err := json.Unmarshal([]byte(`{"id":"base1-4","name":"Charizard","hp":"120","abilities":null,"retreatCost":["Colorless","Colorless","Colorless"]}`), &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	card := NormalizeCard(record)

	if card.HP == nil || *card.HP != "120" {
		t.Fatalf("expected hp 120, got %v", card.HP)
	}
	for name, value := range map[string][]string{
		"subtypes":  card.Subtypes,
		"types":     card.Types,
		"evolvesTo": card.EvolvesTo,
		"rules":     card.Rules,
	} {
		if value == nil || len(value) != 0 {
			t.Fatalf("expected %s to default to empty list, got %#v", name, value)
		}
	}
	if card.NationalPokedexNumbers == nil {
		t.Fatalf("expected nationalPokedexNumbers to default to empty list")
	}
	if card.Level != nil || card.EvolvesFrom != nil || card.Artist != nil || card.RegulationMark != nil {
		t.Fatalf("expected optional scalars to be nil")
	}
	if card.ConvertedRetreatCost != nil {
		t.Fatalf("expected converted retreat cost nil, got %d", *card.ConvertedRetreatCost)
	}
	if card.Abilities != nil || card.Attacks != nil || card.TCGPlayer != nil {
		t.Fatalf("expected absent and null blobs to be nil")
	}
	if got := RetreatCost(card); got != 3 {
		t.Fatalf("expected retreat cost 3, got %d", got)
	}
}

func TestNormalizeCard_KeepsValues(t *testing.T) {
	zero := 0
	record := CardRecord{
		ID:                   "xy1-1",
		Name:                 "Venusaur-EX",
		EvolvesFrom:          "Ivysaur",
		ConvertedRetreatCost: &zero,
		RetreatCost:          []string{"Colorless"},
		TCGPlayer:            json.RawMessage(` {"url":"https://example.test"} `),
	}

	card := NormalizeCard(record)

	if card.EvolvesFrom == nil || *card.EvolvesFrom != "Ivysaur" {
		t.Fatalf("expected evolvesFrom to be kept, got %v", card.EvolvesFrom)
	}
	if card.ConvertedRetreatCost == nil || *card.ConvertedRetreatCost != 0 {
		t.Fatalf("expected converted retreat cost 0 to be kept as given")
	}
	if diff := cmp.Diff(`{"url":"https://example.test"}`, string(card.TCGPlayer)); diff != "" {
		t.Fatalf("tcgplayer mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeSet(t *testing.T) {
	set := NormalizeSet(SetRecord{ID: "base1", Name: "Base", ReleaseDate: "1999/01/09"})
	if set.SetID != "base1" {
		t.Fatalf("expected set id base1, got %q", set.SetID)
	}
	if set.PTCGOCode != nil {
		t.Fatalf("expected empty ptcgo code to be nil")
	}
	if set.ReleaseDate != "1999/01/09" {
		t.Fatalf("expected release date stored verbatim, got %q", set.ReleaseDate)
	}

	withCode := NormalizeSet(SetRecord{ID: "base1", PTCGOCode: "BS"})
	if withCode.PTCGOCode == nil || *withCode.PTCGOCode != "BS" {
		t.Fatalf("expected ptcgo code BS, got %v", withCode.PTCGOCode)
	}
}

func TestSetIDFromCardID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "base1-4", expected: "base1"},
		{input: "sm35-1-a", expected: "sm35"},
		{input: "promo", expected: "promo"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SetIDFromCardID(tt.input); got != tt.expected {
				t.Errorf("SetIDFromCardID(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "folds case", input: "CHAR", expected: "%char%"},
		{name: "accented", input: "POKÉMON", expected: "%pokémon%"},
		{name: "escapes wildcards", input: "100%_\\", expected: `%100\%\_\\%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsPattern(tt.input); got != tt.expected {
				t.Errorf("ContainsPattern(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
