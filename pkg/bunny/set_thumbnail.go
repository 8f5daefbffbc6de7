package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// SetThumbnail points the video's thumbnail at an externally hosted
// image.
func (c *Client) SetThumbnail(ctx context.Context, videoID, thumbnailURL string) (JSON, error) {
	query := newParams()
	query.setString("thumbnailUrl", thumbnailURL)

	return c.do(ctx, http.MethodPost, "videos/"+url.PathEscape(videoID)+"/thumbnail", callOptions{
		query:       query.Values,
		failMsg:     "failed to set thumbnail",
		notFoundRef: videoID,
	})
}
