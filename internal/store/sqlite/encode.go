package sqlite

import (
	"encoding/json"
	"fmt"
)

// Lists and opaque blobs live in TEXT columns. They are bound as strings so
// SQLite stores TEXT rather than BLOB and json_* functions work on them.

func listText[T ~string | ~int](items []T) string {
	if items == nil {
		items = []T{}
	}
	// Marshaling a slice of strings or ints cannot fail.
	b, _ := json.Marshal(items)
	return string(b)
}

func blobText(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func decodeList[T any](column string, b []byte) ([]T, error) {
	items := []T{}
	if len(b) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", column, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func decodeBlob(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	return json.RawMessage(b)
}
