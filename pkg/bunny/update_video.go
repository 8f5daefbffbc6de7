package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// UpdateVideo updates mutable properties of a video. meta is sent
// verbatim as the JSON body; the API accepts keys such as "title",
// "collectionId", "chapters", "moments" and "metaTags".
func (c *Client) UpdateVideo(ctx context.Context, videoID string, meta map[string]any) (JSON, error) {
	return c.do(ctx, http.MethodPost, "videos/"+url.PathEscape(videoID), callOptions{
		body:        meta,
		failMsg:     "failed to update video",
		notFoundRef: videoID,
	})
}
