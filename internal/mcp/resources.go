package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	resourceScheme = "pokemon-tcg"
	jsonMIMEType   = "application/json"
)

var resourceTemplates = []*sdk.ResourceTemplate{
	{
		Name:        "sets",
		URITemplate: "pokemon-tcg://sets{?limit,offset}",
		Description: "Paginated list of sets, newest release first",
		MIMEType:    jsonMIMEType,
	},
	{
		Name:        "set-by-id",
		URITemplate: "pokemon-tcg://sets/id/{setId}",
		Description: "One set by set id",
		MIMEType:    jsonMIMEType,
	},
	{
		Name:        "set-by-code",
		URITemplate: "pokemon-tcg://sets/code/{ptcgoCode}",
		Description: "One set by PTCGO code",
		MIMEType:    jsonMIMEType,
	},
	{
		Name:        "cards",
		URITemplate: "pokemon-tcg://cards{?limit,offset,searchName}",
		Description: "Paginated list of cards with an optional name search",
		MIMEType:    jsonMIMEType,
	},
	{
		Name:        "card-by-id",
		URITemplate: "pokemon-tcg://cards/id/{cardId}",
		Description: "One card by card id",
		MIMEType:    jsonMIMEType,
	},
	{
		Name:        "cards-by-set",
		URITemplate: "pokemon-tcg://cards/set/{setId}{?limit,offset}",
		Description: "Paginated list of the cards in one set",
		MIMEType:    jsonMIMEType,
	},
}

func (s *Server) registerResources() {
	for _, template := range resourceTemplates {
		s.mcp.AddResourceTemplate(template, s.readResource)
	}
}

func (s *Server) readResource(ctx context.Context, req *sdk.ReadResourceRequest) (*sdk.ReadResourceResult, error) {
	if req == nil || req.Params == nil || req.Params.URI == "" {
		return nil, fmt.Errorf("resource uri is required")
	}
	uri := req.Params.URI

	raw, err := s.fetchResource(ctx, uri)
	if err != nil {
		return nil, err
	}

	return &sdk.ReadResourceResult{
		Contents: []*sdk.ResourceContents{
			{
				URI:      uri,
				MIMEType: jsonMIMEType,
				Text:     prettyJSON(raw),
			},
		},
	}, nil
}

// fetchResource maps a pokemon-tcg URI onto an API call. The authority names
// the entity kind and the path the lookup; only the query parameters each
// operation accepts are forwarded.
func (s *Server) fetchResource(ctx context.Context, uri string) (json.RawMessage, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != resourceScheme {
		return nil, sdk.ResourceNotFoundError(uri)
	}

	var segments []string
	if path := strings.Trim(u.Path, "/"); path != "" {
		segments = strings.Split(path, "/")
	}
	query := u.Query()

	switch u.Host {
	case "sets":
		switch {
		case len(segments) == 0:
			return s.api.ListSets(ctx, allowed(query, "limit", "offset"))
		case len(segments) == 2 && segments[0] == "id" && segments[1] != "":
			return s.api.GetSet(ctx, segments[1])
		case len(segments) == 2 && segments[0] == "code" && segments[1] != "":
			return s.api.GetSetByCode(ctx, segments[1])
		}
	case "cards":
		switch {
		case len(segments) == 0:
			return s.api.ListCards(ctx, allowed(query, "limit", "offset", "searchName"))
		case len(segments) == 2 && segments[0] == "id" && segments[1] != "":
			return s.api.GetCard(ctx, segments[1])
		case len(segments) == 2 && segments[0] == "set" && segments[1] != "":
			return s.api.ListCardsBySet(ctx, segments[1], allowed(query, "limit", "offset"))
		}
	}
	return nil, sdk.ResourceNotFoundError(uri)
}

func allowed(query url.Values, keys ...string) url.Values {
	out := url.Values{}
	for _, key := range keys {
		if v := query.Get(key); v != "" {
			out.Set(key, v)
		}
	}
	return out
}
