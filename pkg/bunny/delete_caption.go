package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// DeleteCaption removes the subtitle track for srclang from the video.
func (c *Client) DeleteCaption(ctx context.Context, videoID, srclang string) (JSON, error) {
	captionPath := "videos/" + url.PathEscape(videoID) + "/captions/" + url.PathEscape(srclang)
	return c.do(ctx, http.MethodDelete, captionPath, callOptions{
		failMsg:     "failed to delete caption",
		notFoundRef: videoID,
	})
}
