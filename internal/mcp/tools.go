package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type GetSetsInput struct {
	Limit  *int `json:"limit,omitempty" jsonschema:"maximum number of sets to return (1-200, default 50)"`
	Offset *int `json:"offset,omitempty" jsonschema:"number of sets to skip"`
}

type GetSetByIDInput struct {
	SetID string `json:"setId,omitempty" jsonschema:"set id, e.g. base1"`
}

type GetSetByCodeInput struct {
	PTCGOCode string `json:"ptcgoCode,omitempty" jsonschema:"PTCGO code, e.g. BS"`
}

type GetCardsInput struct {
	Limit      *int   `json:"limit,omitempty" jsonschema:"maximum number of cards to return (1-200, default 50)"`
	Offset     *int   `json:"offset,omitempty" jsonschema:"number of cards to skip"`
	SearchName string `json:"searchName,omitempty" jsonschema:"case-insensitive substring of the card name"`
}

type GetCardByIDInput struct {
	CardID string `json:"cardId,omitempty" jsonschema:"card id, e.g. base1-4"`
}

type GetCardsBySetInput struct {
	SetID  string `json:"setId,omitempty" jsonschema:"set id, e.g. base1"`
	Limit  *int   `json:"limit,omitempty" jsonschema:"maximum number of cards to return (1-200, default 50)"`
	Offset *int   `json:"offset,omitempty" jsonschema:"number of cards to skip"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_sets",
		Description: "List Pokémon TCG sets, newest release first, with pagination",
	}, s.handleGetSets)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_set_by_id",
		Description: "Get a Pokémon TCG set by its set id",
	}, s.handleGetSetByID)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_set_by_code",
		Description: "Get a Pokémon TCG set by its PTCGO code",
	}, s.handleGetSetByCode)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_cards",
		Description: "List Pokémon TCG cards with pagination and an optional name search",
	}, s.handleGetCards)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_card_by_id",
		Description: "Get a Pokémon TCG card by its card id",
	}, s.handleGetCardByID)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_cards_by_set",
		Description: "List the cards of one Pokémon TCG set with pagination",
	}, s.handleGetCardsBySet)
}

func (s *Server) handleGetSets(ctx context.Context, req *sdk.CallToolRequest, input GetSetsInput) (*sdk.CallToolResult, any, error) {
	return toolResult(s.api.ListSets(ctx, pageQuery(input.Limit, input.Offset)))
}

func (s *Server) handleGetSetByID(ctx context.Context, req *sdk.CallToolRequest, input GetSetByIDInput) (*sdk.CallToolResult, any, error) {
	if input.SetID == "" {
		return errorResult(errors.New("setId is required")), nil, nil
	}
	return toolResult(s.api.GetSet(ctx, input.SetID))
}

func (s *Server) handleGetSetByCode(ctx context.Context, req *sdk.CallToolRequest, input GetSetByCodeInput) (*sdk.CallToolResult, any, error) {
	if input.PTCGOCode == "" {
		return errorResult(errors.New("ptcgoCode is required")), nil, nil
	}
	return toolResult(s.api.GetSetByCode(ctx, input.PTCGOCode))
}

func (s *Server) handleGetCards(ctx context.Context, req *sdk.CallToolRequest, input GetCardsInput) (*sdk.CallToolResult, any, error) {
	query := pageQuery(input.Limit, input.Offset)
	if input.SearchName != "" {
		query.Set("searchName", input.SearchName)
	}
	return toolResult(s.api.ListCards(ctx, query))
}

func (s *Server) handleGetCardByID(ctx context.Context, req *sdk.CallToolRequest, input GetCardByIDInput) (*sdk.CallToolResult, any, error) {
	if input.CardID == "" {
		return errorResult(errors.New("cardId is required")), nil, nil
	}
	return toolResult(s.api.GetCard(ctx, input.CardID))
}

func (s *Server) handleGetCardsBySet(ctx context.Context, req *sdk.CallToolRequest, input GetCardsBySetInput) (*sdk.CallToolResult, any, error) {
	if input.SetID == "" {
		return errorResult(errors.New("setId is required")), nil, nil
	}
	return toolResult(s.api.ListCardsBySet(ctx, input.SetID, pageQuery(input.Limit, input.Offset)))
}

func pageQuery(limit, offset *int) url.Values {
	query := url.Values{}
	if limit != nil {
		query.Set("limit", strconv.Itoa(*limit))
	}
	if offset != nil {
		query.Set("offset", strconv.Itoa(*offset))
	}
	return query
}

// toolResult converts an API response into a tool result. Failures become
// flagged results rather than protocol errors so the client sees the message.
func toolResult(raw json.RawMessage, err error) (*sdk.CallToolResult, any, error) {
	if err != nil {
		return errorResult(err), nil, nil
	}
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: prettyJSON(raw)}},
	}, nil, nil
}

func errorResult(err error) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		IsError: true,
		Content: []sdk.Content{&sdk.TextContent{Text: "Error: " + err.Error()}},
	}
}
