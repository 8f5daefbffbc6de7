package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// ReencodeVideo queues the video for a full re-encode with the
// library's current encoding settings.
func (c *Client) ReencodeVideo(ctx context.Context, videoID string) (JSON, error) {
	return c.do(ctx, http.MethodPost, "videos/"+url.PathEscape(videoID)+"/reencode", callOptions{
		failMsg:     "failed to reencode video",
		notFoundRef: videoID,
	})
}
