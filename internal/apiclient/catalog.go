package apiclient

import (
	"context"
	"encoding/json"
	"net/url"
)

func (c *Client) ListSets(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.Get(ctx, []string{"sets"}, query)
}

func (c *Client) GetSet(ctx context.Context, setID string) (json.RawMessage, error) {
	return c.Get(ctx, []string{"sets", "id", setID}, nil)
}

func (c *Client) GetSetByCode(ctx context.Context, ptcgoCode string) (json.RawMessage, error) {
	return c.Get(ctx, []string{"sets", "code", ptcgoCode}, nil)
}

func (c *Client) ListCards(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.Get(ctx, []string{"cards"}, query)
}

func (c *Client) GetCard(ctx context.Context, cardID string) (json.RawMessage, error) {
	return c.Get(ctx, []string{"cards", "id", cardID}, nil)
}

func (c *Client) ListCardsBySet(ctx context.Context, setID string, query url.Values) (json.RawMessage, error) {
	return c.Get(ctx, []string{"cards", "set", setID}, query)
}
