package postgres

import "encoding/json"

// jsonb binds an opaque blob; nil stays SQL NULL.
func jsonb(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}

// array binds a list column. The columns are NOT NULL, so nil becomes an
// empty array rather than NULL.
func array[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func decodeBlob(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	return json.RawMessage(b)
}
