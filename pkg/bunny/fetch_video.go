package bunny

import (
	"context"
	"net/http"
)

// FetchVideoOptions carries the optional properties of a fetch job.
type FetchVideoOptions struct {
	// Title names the resulting video. Empty leaves the service to
	// derive one from the source URL.
	Title string
	// Headers are sent by the service when it downloads the source,
	// e.g. for authenticated origins.
	Headers map[string]string
	// CollectionID places the fetched video in a collection.
	CollectionID string
	// ThumbnailTime is the playback position, in milliseconds, the
	// default thumbnail is taken from.
	ThumbnailTime *int
}

// FetchVideo has the service download the file at srcURL into the
// library instead of uploading bytes from this machine. The download
// and encode run server side; poll the video to follow progress.
func (c *Client) FetchVideo(ctx context.Context, srcURL string, opts *FetchVideoOptions) (JSON, error) {
	body := map[string]any{
		"url": srcURL,
	}
	query := newParams()
	if opts != nil {
		if opts.Title != "" {
			body["title"] = opts.Title
		}
		if len(opts.Headers) > 0 {
			body["headers"] = opts.Headers
		}
		query.setString("collectionId", opts.CollectionID)
		if opts.ThumbnailTime != nil {
			query.setInt("thumbnailTime", *opts.ThumbnailTime)
		}
	}

	return c.do(ctx, http.MethodPost, "videos/fetch", callOptions{
		query:   query.Values,
		body:    body,
		failMsg: "failed to fetch video",
	})
}
