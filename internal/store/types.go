package store

import (
	"strconv"
	"strings"
)

// CardFilter narrows card listings. Zero values mean "no filter".
type CardFilter struct {
	NameContains string
	SetRef       *int64
}

type CardSummary struct {
	CardID               string
	Name                 string
	RetreatCostLength    int
	ConvertedRetreatCost *int
}

type SetSummary struct {
	SetID     string
	Name      string
	Total     int
	CardCount int
}

// Column lists in bind order. Both backends build their upsert statements
// from these so the insert and update paths stay in step.
var (
	SetColumns = []string{
		"set_id",
		"name",
		"series",
		"printed_total",
		"total",
		"legalities",
		"ptcgo_code",
		"release_date",
		"updated_at",
		"images",
	}

	CardColumns = []string{
		"card_id",
		"name",
		"name_search",
		"supertype",
		"subtypes",
		"level",
		"hp",
		"types",
		"evolves_from",
		"evolves_to",
		"abilities",
		"attacks",
		"weaknesses",
		"resistances",
		"retreat_cost",
		"converted_retreat_cost",
		"number",
		"artist",
		"rarity",
		"flavor_text",
		"national_pokedex_numbers",
		"legalities",
		"regulation_mark",
		"images",
		"tcgplayer",
		"cardmarket",
		"rules",
		"ancient_trait",
		"set_ref",
	}
)

// UpsertSQL builds an INSERT ... ON CONFLICT (key) DO UPDATE statement that
// overwrites every column but the key. placeholder renders the bind marker
// for the 1-based argument index.
func UpsertSQL(table, key string, columns []string, placeholder func(i int) string) string {
	marks := make([]string, len(columns))
	updates := make([]string, 0, len(columns)-1)
	for i, column := range columns {
		marks[i] = placeholder(i + 1)
		if column == key {
			continue
		}
		updates = append(updates, column+" = excluded."+column)
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(")\nVALUES (")
	b.WriteString(strings.Join(marks, ", "))
	b.WriteString(")\nON CONFLICT (")
	b.WriteString(key)
	b.WriteString(") DO UPDATE SET\n    ")
	b.WriteString(strings.Join(updates, ",\n    "))
	return b.String()
}

// DollarPlaceholder renders PostgreSQL bind markers ($1, $2, ...).
func DollarPlaceholder(i int) string {
	return "$" + strconv.Itoa(i)
}

// QuestionPlaceholder renders SQLite bind markers.
func QuestionPlaceholder(int) string {
	return "?"
}
