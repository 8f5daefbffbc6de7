package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// RepackageVideo regenerates the video's delivery manifests without a
// re-encode. keepOriginalFiles preserves the stored originals.
func (c *Client) RepackageVideo(ctx context.Context, videoID string, keepOriginalFiles bool) (JSON, error) {
	query := newParams()
	query.setBool("keepOriginalFiles", keepOriginalFiles)

	return c.do(ctx, http.MethodGet, "videos/"+url.PathEscape(videoID)+"/repackage", callOptions{
		query:       query.Values,
		failMsg:     "failed to repackage video",
		notFoundRef: videoID,
	})
}
