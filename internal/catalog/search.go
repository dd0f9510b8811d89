package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// SearchKey folds s for case-insensitive matching. Stores persist the folded
// card name next to the name itself and compare against the folded needle, so
// "CHAR" matches "Charizard" and "Pokémon" matches "POKÉMON" on every backend.
func SearchKey(s string) string {
	// Casers carry state and are not safe for concurrent use.
	return cases.Fold().String(s)
}

// ContainsPattern returns a LIKE pattern matching any folded value that
// contains needle. LIKE metacharacters in needle are escaped with a
// backslash; queries must declare ESCAPE '\'.
func ContainsPattern(needle string) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, r := range SearchKey(needle) {
		switch r {
		case '%', '_', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('%')
	return b.String()
}
