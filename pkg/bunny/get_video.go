package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// GetVideo fetches one video by its GUID.
func (c *Client) GetVideo(ctx context.Context, videoID string) (JSON, error) {
	return c.do(ctx, http.MethodGet, "videos/"+url.PathEscape(videoID), callOptions{
		failMsg:     "failed to get video",
		notFoundRef: videoID,
	})
}
