package sqlite

import "testing"

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "memory", input: "sqlite://:memory:", expected: ":memory:"},
		{name: "absolute", input: "sqlite:///var/lib/tcgcatalog.db", expected: "/var/lib/tcgcatalog.db"},
		{name: "dot relative", input: "sqlite://./tcgcatalog.db", expected: "./tcgcatalog.db"},
		{name: "bare relative", input: "sqlite://data/tcgcatalog.db", expected: "./data/tcgcatalog.db"},
		{name: "escaped", input: "sqlite://my%20cards.db", expected: "./my cards.db"},
		{name: "query kept", input: "sqlite://cards.db?_txlock=immediate", expected: "./cards.db?_txlock=immediate"},
		{name: "wrong scheme", input: "postgres://localhost/cards", wantErr: true},
		{name: "empty path", input: "sqlite://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDSN(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDSN(%q): %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parseDSN(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWithPragmas(t *testing.T) {
	const pragmas = "_pragma=busy_timeout%2830000%29&_pragma=journal_mode%28WAL%29&_pragma=foreign_keys%281%29"
	tests := map[string]string{
		":memory:":                     ":memory:?" + pragmas,
		"./cards.db":                   "./cards.db?" + pragmas,
		"./cards.db?_txlock=immediate": "./cards.db?_txlock=immediate&" + pragmas,
	}
	for input, want := range tests {
		if got := withPragmas(input); got != want {
			t.Errorf("withPragmas(%q) = %q, want %q", input, got, want)
		}
	}
}
