package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type mockCatalog struct {
	result json.RawMessage
	err    error

	calls     []string
	lastKey   string
	lastQuery url.Values
}

func (m *mockCatalog) record(call, key string, query url.Values) (json.RawMessage, error) {
	m.calls = append(m.calls, call)
	m.lastKey = key
	m.lastQuery = query
	return m.result, m.err
}

func (m *mockCatalog) ListSets(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return m.record("ListSets", "", query)
}

func (m *mockCatalog) GetSet(ctx context.Context, setID string) (json.RawMessage, error) {
	return m.record("GetSet", setID, nil)
}

func (m *mockCatalog) GetSetByCode(ctx context.Context, ptcgoCode string) (json.RawMessage, error) {
	return m.record("GetSetByCode", ptcgoCode, nil)
}

func (m *mockCatalog) ListCards(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return m.record("ListCards", "", query)
}

func (m *mockCatalog) GetCard(ctx context.Context, cardID string) (json.RawMessage, error) {
	return m.record("GetCard", cardID, nil)
}

func (m *mockCatalog) ListCardsBySet(ctx context.Context, setID string, query url.Values) (json.RawMessage, error) {
	return m.record("ListCardsBySet", setID, query)
}

func intPtr(i int) *int { return &i }

func resultText(t *testing.T, result *sdk.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) != 1 {
		t.Fatalf("expected one content item, got %+v", result)
	}
	text, ok := result.Content[0].(*sdk.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestGetSets_ForwardsPagination(t *testing.T) {
	api := &mockCatalog{result: json.RawMessage(`{"data":[],"pagination":{"total":0}}`)}
	server := NewServer(api, "test", nil)

	result, _, err := server.handleGetSets(context.Background(), nil, GetSetsInput{Limit: intPtr(5), Offset: intPtr(10)})
	if err != nil {
		t.Fatalf("handleGetSets: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}
	if got := api.lastQuery.Encode(); got != "limit=5&offset=10" {
		t.Errorf("query = %s", got)
	}

	want := "{\n  \"data\": [],\n  \"pagination\": {\n    \"total\": 0\n  }\n}"
	if got := resultText(t, result); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestGetSets_OmitsUnsetPagination(t *testing.T) {
	api := &mockCatalog{result: json.RawMessage(`{}`)}
	server := NewServer(api, "test", nil)

	if _, _, err := server.handleGetSets(context.Background(), nil, GetSetsInput{}); err != nil {
		t.Fatalf("handleGetSets: %v", err)
	}
	if len(api.lastQuery) != 0 {
		t.Errorf("expected empty query, got %v", api.lastQuery)
	}
}

func TestGetCards_SearchName(t *testing.T) {
	api := &mockCatalog{result: json.RawMessage(`{}`)}
	server := NewServer(api, "test", nil)

	if _, _, err := server.handleGetCards(context.Background(), nil, GetCardsInput{SearchName: "char", Limit: intPtr(3)}); err != nil {
		t.Fatalf("handleGetCards: %v", err)
	}
	if got := api.lastQuery.Encode(); got != "limit=3&searchName=char" {
		t.Errorf("query = %s", got)
	}
}

func TestKeyedTools(t *testing.T) {
	tests := []struct {
		name     string
		call     func(s *Server) (*sdk.CallToolResult, any, error)
		wantCall string
		wantKey  string
	}{
		{
			name: "set by id",
			call: func(s *Server) (*sdk.CallToolResult, any, error) {
				return s.handleGetSetByID(context.Background(), nil, GetSetByIDInput{SetID: "base1"})
			},
			wantCall: "GetSet", wantKey: "base1",
		},
		{
			name: "set by code",
			call: func(s *Server) (*sdk.CallToolResult, any, error) {
				return s.handleGetSetByCode(context.Background(), nil, GetSetByCodeInput{PTCGOCode: "BS"})
			},
			wantCall: "GetSetByCode", wantKey: "BS",
		},
		{
			name: "card by id",
			call: func(s *Server) (*sdk.CallToolResult, any, error) {
				return s.handleGetCardByID(context.Background(), nil, GetCardByIDInput{CardID: "base1-4"})
			},
			wantCall: "GetCard", wantKey: "base1-4",
		},
		{
			name: "cards by set",
			call: func(s *Server) (*sdk.CallToolResult, any, error) {
				return s.handleGetCardsBySet(context.Background(), nil, GetCardsBySetInput{SetID: "base1", Offset: intPtr(50)})
			},
			wantCall: "ListCardsBySet", wantKey: "base1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockCatalog{result: json.RawMessage(`{"ok":true}`)}
			result, _, err := tt.call(NewServer(api, "test", nil))
			if err != nil {
				t.Fatalf("handler: %v", err)
			}
			if result.IsError {
				t.Fatalf("unexpected error result: %s", resultText(t, result))
			}
			if len(api.calls) != 1 || api.calls[0] != tt.wantCall || api.lastKey != tt.wantKey {
				t.Errorf("calls = %v key = %q, want %s(%s)", api.calls, api.lastKey, tt.wantCall, tt.wantKey)
			}
		})
	}
}

func TestKeyedTools_MissingKey(t *testing.T) {
	api := &mockCatalog{}
	server := NewServer(api, "test", nil)
	ctx := context.Background()

	results := map[string]*sdk.CallToolResult{}
	results["setId is required"], _, _ = server.handleGetSetByID(ctx, nil, GetSetByIDInput{})
	results["ptcgoCode is required"], _, _ = server.handleGetSetByCode(ctx, nil, GetSetByCodeInput{})
	results["cardId is required"], _, _ = server.handleGetCardByID(ctx, nil, GetCardByIDInput{})

	for message, result := range results {
		if !result.IsError {
			t.Errorf("%s: expected error result", message)
		}
		if got := resultText(t, result); got != "Error: "+message {
			t.Errorf("text = %q, want %q", got, "Error: "+message)
		}
	}

	result, _, err := server.handleGetCardsBySet(ctx, nil, GetCardsBySetInput{})
	if err != nil || !result.IsError {
		t.Errorf("expected flagged result for missing setId, got %+v, %v", result, err)
	}
	if len(api.calls) != 0 {
		t.Errorf("expected no API calls, got %v", api.calls)
	}
}

func TestTools_APIErrorBecomesFlaggedResult(t *testing.T) {
	api := &mockCatalog{err: errors.New("HTTP 404: Not Found (Set not found)")}
	server := NewServer(api, "test", nil)

	result, _, err := server.handleGetSetByID(context.Background(), nil, GetSetByIDInput{SetID: "nope"})
	if err != nil {
		t.Fatalf("expected no protocol error, got %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError")
	}
	if got := resultText(t, result); got != "Error: HTTP 404: Not Found (Set not found)" {
		t.Errorf("text = %q", got)
	}
}
