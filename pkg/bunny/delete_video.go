package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// DeleteVideo removes a video and all of its encoded files.
func (c *Client) DeleteVideo(ctx context.Context, videoID string) (JSON, error) {
	return c.do(ctx, http.MethodDelete, "videos/"+url.PathEscape(videoID), callOptions{
		failMsg:     "failed to delete video",
		notFoundRef: videoID,
	})
}
