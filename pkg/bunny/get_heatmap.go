package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// GetVideoHeatmap fetches watch-intensity data across the video's
// timeline.
func (c *Client) GetVideoHeatmap(ctx context.Context, videoID string) (JSON, error) {
	return c.do(ctx, http.MethodGet, "videos/"+url.PathEscape(videoID)+"/heatmap", callOptions{
		failMsg:     "failed to get video heatmap",
		notFoundRef: videoID,
	})
}
