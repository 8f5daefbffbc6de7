package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// DeleteCollection removes a collection. Videos in it are kept and
// merely unassigned.
func (c *Client) DeleteCollection(ctx context.Context, collectionID string) (JSON, error) {
	return c.do(ctx, http.MethodDelete, "collections/"+url.PathEscape(collectionID), callOptions{
		failMsg:     "failed to delete collection",
		notFoundRef: collectionID,
	})
}
