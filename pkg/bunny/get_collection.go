package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// GetCollection fetches one collection by its GUID.
func (c *Client) GetCollection(ctx context.Context, collectionID string) (JSON, error) {
	return c.do(ctx, http.MethodGet, "collections/"+url.PathEscape(collectionID), callOptions{
		failMsg:     "failed to get collection",
		notFoundRef: collectionID,
	})
}
