package bunny

import (
	"context"
	"net/http"
)

// CreateCollection creates a named collection and returns it.
func (c *Client) CreateCollection(ctx context.Context, name string) (JSON, error) {
	return c.do(ctx, http.MethodPost, "collections", callOptions{
		body:    map[string]any{"name": name},
		failMsg: "failed to create collection",
	})
}
