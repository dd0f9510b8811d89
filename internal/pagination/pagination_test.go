package pagination

import (
	"encoding/json"
	"net/url"
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		limit    string
		offset   string
		expected Request
	}{
		{name: "absent", expected: Request{Limit: 50, Offset: 0, Page: 1}},
		{name: "explicit", limit: "20", offset: "40", expected: Request{Limit: 20, Offset: 40, Page: 3}},
		{name: "capped", limit: "500", expected: Request{Limit: 200, Offset: 0, Page: 1}},
		{name: "cap boundary", limit: "200", expected: Request{Limit: 200, Offset: 0, Page: 1}},
		{name: "zero limit", limit: "0", expected: Request{Limit: 50, Offset: 0, Page: 1}},
		{name: "negative limit", limit: "-5", expected: Request{Limit: 50, Offset: 0, Page: 1}},
		{name: "non-numeric limit", limit: "ten", expected: Request{Limit: 50, Offset: 0, Page: 1}},
		{name: "negative offset", limit: "10", offset: "-30", expected: Request{Limit: 10, Offset: 0, Page: 1}},
		{name: "non-numeric offset", limit: "10", offset: "x", expected: Request{Limit: 10, Offset: 0, Page: 1}},
		{name: "offset inside page", limit: "10", offset: "15", expected: Request{Limit: 10, Offset: 15, Page: 2}},
		{name: "whitespace", limit: " 25 ", offset: " 50 ", expected: Request{Limit: 25, Offset: 50, Page: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.limit, tt.offset)
			if got != tt.expected {
				t.Errorf("Parse(%q, %q) = %+v, want %+v", tt.limit, tt.offset, got, tt.expected)
			}
		})
	}
}

func TestParse_LimitAlwaysInRange(t *testing.T) {
	for limit := -300; limit <= 300; limit++ {
		got := Parse(strconv.Itoa(limit), "")
		switch {
		case limit > MaxLimit:
			if got.Limit != MaxLimit {
				t.Fatalf("limit %d: expected %d, got %d", limit, MaxLimit, got.Limit)
			}
		case limit <= 0:
			if got.Limit != DefaultLimit {
				t.Fatalf("limit %d: expected %d, got %d", limit, DefaultLimit, got.Limit)
			}
		default:
			if got.Limit != limit {
				t.Fatalf("limit %d: expected it unchanged, got %d", limit, got.Limit)
			}
		}
	}
}

func TestFromQuery(t *testing.T) {
	query := url.Values{"limit": {"10"}, "offset": {"30"}, "searchName": {"char"}}
	got := FromQuery(query)
	if got != (Request{Limit: 10, Offset: 30, Page: 4}) {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestNewMeta(t *testing.T) {
	for total := 0; total <= 120; total++ {
		for _, limit := range []int{1, 7, 50, 200} {
			for offset := 0; offset <= total+limit; offset += limit {
				req := Parse(strconv.Itoa(limit), strconv.Itoa(offset))
				meta := NewMeta(total, req)

				wantPages := total / limit
				if total%limit != 0 {
					wantPages++
				}
				if meta.TotalPages != wantPages {
					t.Fatalf("total %d limit %d: expected %d pages, got %d", total, limit, wantPages, meta.TotalPages)
				}
				if meta.HasNext != (meta.Page < meta.TotalPages) {
					t.Fatalf("total %d limit %d offset %d: hasNext %v on page %d of %d", total, limit, offset, meta.HasNext, meta.Page, meta.TotalPages)
				}
				if meta.HasPrev != (meta.Page > 1) {
					t.Fatalf("total %d limit %d offset %d: hasPrev %v on page %d", total, limit, offset, meta.HasPrev, meta.Page)
				}
				if meta.Size != limit {
					t.Fatalf("expected size %d, got %d", limit, meta.Size)
				}
			}
		}
	}
}

func TestNewEnvelope_JSON(t *testing.T) {
	env := NewEnvelope[string](nil, 0, Parse("", ""))

	payload, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	expected := `{"data":[],"pagination":{"total":0,"page":1,"size":50,"totalPages":0,"hasNext":false,"hasPrev":false}}`
	if string(payload) != expected {
		t.Fatalf("unexpected envelope\n got: %s\nwant: %s", payload, expected)
	}
}

func TestNewEnvelope_MiddlePage(t *testing.T) {
	env := NewEnvelope([]int{1, 2}, 102, Parse("50", "50"))
	if env.Pagination.Page != 2 || env.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected meta %+v", env.Pagination)
	}
	if !env.Pagination.HasNext || !env.Pagination.HasPrev {
		t.Fatalf("expected both neighbours, got %+v", env.Pagination)
	}
}
