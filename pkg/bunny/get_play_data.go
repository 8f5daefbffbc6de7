package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// PlayDataOptions carries the token authentication pair for libraries
// with embed view token authentication enabled.
type PlayDataOptions struct {
	Token   string
	Expires int64
}

// GetVideoPlayData fetches everything a player needs to start
// playback: playlist URLs, caption tracks, thumbnails and player
// settings.
func (c *Client) GetVideoPlayData(ctx context.Context, videoID string, opts *PlayDataOptions) (JSON, error) {
	query := newParams()
	if opts != nil {
		query.setString("token", opts.Token)
		if opts.Expires != 0 {
			query.setInt64("expires", opts.Expires)
		}
	}

	return c.do(ctx, http.MethodGet, "videos/"+url.PathEscape(videoID)+"/play", callOptions{
		query:       query.Values,
		failMsg:     "failed to get video play data",
		notFoundRef: videoID,
	})
}
