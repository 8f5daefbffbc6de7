package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// GetVideoResolutions lists the resolutions stored for the video, both
// the available playable ones and what the original still holds.
func (c *Client) GetVideoResolutions(ctx context.Context, videoID string) (JSON, error) {
	return c.do(ctx, http.MethodGet, "videos/"+url.PathEscape(videoID)+"/resolutions", callOptions{
		failMsg:     "failed to get video resolutions",
		notFoundRef: videoID,
	})
}
