package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDamage(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{input: "30", want: 30, wantOK: true},
		{input: "30+", want: 30, wantOK: true},
		{input: "20×", want: 20, wantOK: true},
		{input: "10x", want: 10, wantOK: true},
		{input: "?", wantOK: false},
		{input: "", wantOK: false},
		{input: "+", wantOK: false},
		{input: "abc", wantOK: false},
		{input: " 40", want: 40, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDamage(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseDamage(%q) = %d, %v; want %d, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	if got := Summarize(nil); got != (Stats{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", got)
	}
	got := Summarize([]int{40, 120, 50})
	want := Stats{Min: 40, Max: 120, Avg: 70, Count: 3}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}

func TestAnalyze(t *testing.T) {
	hp := func(s string) *string { return &s }
	cards := []Card{
		{
			CardID:      "base1-4",
			Name:        "Charizard",
			HP:          hp("120"),
			RetreatCost: []string{"Colorless", "Colorless", "Colorless"},
			Attacks:     json.RawMessage(`[{"name":"Fire Spin","cost":["Fire","Fire","Fire","Fire"],"damage":"100"}]`),
		},
		{
			CardID:  "base1-2",
			Name:    "Blastoise",
			HP:      hp("100"),
			Attacks: json.RawMessage(`[{"name":"Hydro Pump","cost":["Water","Water","Water"],"damage":"40+"},{"name":"Rain","cost":["Water"],"damage":"?"}]`),
		},
		{
			CardID:      "base1-58",
			Name:        "Pikachu",
			RetreatCost: []string{"Colorless"},
			Attacks:     json.RawMessage(`{"not":"a list"}`),
		},
	}

	got := Analyze("base1", cards)
	want := Report{
		SetID:           "base1",
		TotalPokemon:    3,
		WithAttacks:     2,
		AttacksAnalyzed: 2,
		HP:              Stats{Min: 100, Max: 120, Avg: 110, Count: 2},
		Damage:          Stats{Min: 40, Max: 100, Avg: 70, Count: 2},
		AttackCost:      Stats{Min: 1, Max: 4, Avg: 8.0 / 3.0, Count: 3},
		RetreatCost:     Stats{Min: 0, Max: 3, Avg: 4.0 / 3.0, Count: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyze_Charizard(t *testing.T) {
	hp := "120"
	report := Analyze("base1", []Card{{CardID: "base1-4", HP: &hp, RetreatCost: []string{"Colorless", "Colorless", "Colorless"}}})
	if report.RetreatCost.Max != 3 || report.HP.Max != 120 {
		t.Errorf("unexpected report %+v", report)
	}
}

type pagedFetcher struct {
	cards   []map[string]any
	queries []url.Values
	err     error
}

func (f *pagedFetcher) ListCardsBySet(ctx context.Context, setID string, query url.Values) (json.RawMessage, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	var limit, offset int
	fmt.Sscan(query.Get("limit"), &limit)
	fmt.Sscan(query.Get("offset"), &offset)

	end := min(offset+limit, len(f.cards))
	data := f.cards[min(offset, len(f.cards)):end]
	body := map[string]any{
		"data": data,
		"pagination": map[string]any{
			"total":   len(f.cards),
			"hasNext": end < len(f.cards),
		},
	}
	return json.Marshal(body)
}

func TestFetchPokemon_PagesUntilDone(t *testing.T) {
	fetcher := &pagedFetcher{}
	for i := range 5 {
		supertype := "Pokémon"
		if i == 3 {
			supertype = "Trainer"
		}
		fetcher.cards = append(fetcher.cards, map[string]any{"cardId": fmt.Sprintf("base1-%d", i+1), "supertype": supertype})
	}

	var progress bytes.Buffer
	cards, err := FetchPokemon(context.Background(), fetcher, "base1", 2, &progress)
	if err != nil {
		t.Fatalf("FetchPokemon: %v", err)
	}

	var ids []string
	for _, c := range cards {
		ids = append(ids, c.CardID)
	}
	if diff := cmp.Diff([]string{"base1-1", "base1-2", "base1-3", "base1-5"}, ids); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}

	var offsets []string
	for _, q := range fetcher.queries {
		offsets = append(offsets, q.Get("offset"))
	}
	if diff := cmp.Diff([]string{"0", "2", "4"}, offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(progress.String(), "Fetched 1 Pokémon (total: 3)") {
		t.Errorf("unexpected progress output:\n%s", progress.String())
	}
}

func TestFetchPokemon_Error(t *testing.T) {
	apiErr := errors.New("HTTP 404: Not Found (Set not found)")
	_, err := FetchPokemon(context.Background(), &pagedFetcher{err: apiErr}, "nope", 50, nil)
	if !errors.Is(err, apiErr) {
		t.Fatalf("expected wrapped API error, got %v", err)
	}
}
