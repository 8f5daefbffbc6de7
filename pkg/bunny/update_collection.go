package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// UpdateCollection renames a collection.
func (c *Client) UpdateCollection(ctx context.Context, collectionID, name string) (JSON, error) {
	return c.do(ctx, http.MethodPost, "collections/"+url.PathEscape(collectionID), callOptions{
		body:        map[string]any{"name": name},
		failMsg:     "failed to update collection",
		notFoundRef: collectionID,
	})
}
