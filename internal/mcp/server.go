// Package mcp exposes the catalog HTTP API to MCP clients as tools and
// resources. Every call is forwarded to the API; nothing here touches the
// store.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverName = "pokemon-tcg-api"

// Catalog is the HTTP API client the bridge forwards to.
type Catalog interface {
	ListSets(ctx context.Context, query url.Values) (json.RawMessage, error)
	GetSet(ctx context.Context, setID string) (json.RawMessage, error)
	GetSetByCode(ctx context.Context, ptcgoCode string) (json.RawMessage, error)
	ListCards(ctx context.Context, query url.Values) (json.RawMessage, error)
	GetCard(ctx context.Context, cardID string) (json.RawMessage, error)
	ListCardsBySet(ctx context.Context, setID string, query url.Values) (json.RawMessage, error)
}

type Server struct {
	api Catalog
	mcp *sdk.Server
}

func NewServer(api Catalog, version string, logger *slog.Logger) *Server {
	s := &Server{
		api: api,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    serverName,
			Version: version,
		}, &sdk.ServerOptions{Logger: logger}),
	}
	s.registerTools()
	s.registerResources()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}

// prettyJSON re-indents an API response with two spaces. Input that is not
// valid JSON is returned unchanged.
func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
