package bunny

import (
	"context"
	"net/http"
)

// CreateVideoOptions carries the optional properties of a new video.
type CreateVideoOptions struct {
	// CollectionID places the video in a collection on creation.
	CollectionID string
	// ThumbnailTime is the playback position, in milliseconds, the
	// default thumbnail is taken from. Nil leaves it to the service.
	ThumbnailTime *int
}

// CreateVideo creates an empty video record and returns it. Content is
// attached afterwards with UploadVideoContent.
func (c *Client) CreateVideo(ctx context.Context, title string, opts *CreateVideoOptions) (JSON, error) {
	body := map[string]any{
		"title": title,
	}
	if opts != nil {
		if opts.CollectionID != "" {
			body["collectionId"] = opts.CollectionID
		}
		if opts.ThumbnailTime != nil {
			body["thumbnailTime"] = *opts.ThumbnailTime
		}
	}

	return c.do(ctx, http.MethodPost, "videos", callOptions{
		body:    body,
		failMsg: "failed to create video",
	})
}
