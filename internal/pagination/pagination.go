// Package pagination implements the limit/offset contract shared by every list
// endpoint: input clamping, page arithmetic and the response envelope.
package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Request is an effective page request. Limit is always in [1, MaxLimit] and
// Offset is never negative. Page is 1-indexed and derived from both.
type Request struct {
	Limit  int
	Offset int
	Page   int
}

// Parse turns raw limit and offset inputs into a Request. Absent, non-numeric
// or non-positive limits fall back to DefaultLimit; limits above MaxLimit are
// capped. Absent or non-numeric offsets are 0 and negative offsets clamp to 0.
func Parse(limit, offset string) Request {
	l, err := strconv.Atoi(strings.TrimSpace(limit))
	if err != nil || l <= 0 {
		l = DefaultLimit
	}
	if l > MaxLimit {
		l = MaxLimit
	}

	o, err := strconv.Atoi(strings.TrimSpace(offset))
	if err != nil || o < 0 {
		o = 0
	}

	return Request{Limit: l, Offset: o, Page: o/l + 1}
}

// FromQuery parses the limit and offset query parameters.
func FromQuery(query url.Values) Request {
	return Parse(query.Get("limit"), query.Get("offset"))
}

type Meta struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Size       int  `json:"size"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type Envelope[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

func NewMeta(total int, req Request) Meta {
	size := req.Limit
	if size <= 0 {
		size = DefaultLimit
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total + size - 1) / size
	}
	return Meta{
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// NewEnvelope wraps one page of data. A nil slice is rendered as [].
func NewEnvelope[T any](data []T, total int, req Request) Envelope[T] {
	if data == nil {
		data = []T{}
	}
	return Envelope[T]{Data: data, Pagination: NewMeta(total, req)}
}
