package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// CleanupResolutionsOptions select which stored files a cleanup drops.
// All four switches are always sent, defaulting to "false".
type CleanupResolutionsOptions struct {
	// ResolutionsToDelete names renditions to drop, comma separated,
	// e.g. "240p,360p".
	ResolutionsToDelete string
	// DeleteNonConfiguredResolutions drops every rendition the library
	// configuration no longer lists.
	DeleteNonConfiguredResolutions bool
	// DeleteOriginal drops the uploaded source file.
	DeleteOriginal bool
	// DeleteMp4Files drops the progressive-download MP4s.
	DeleteMp4Files bool
	// DryRun reports what would be deleted without deleting anything.
	DryRun bool
}

// CleanupResolutions deletes stored renditions of the video.
func (c *Client) CleanupResolutions(ctx context.Context, videoID string, opts *CleanupResolutionsOptions) (JSON, error) {
	if opts == nil {
		opts = &CleanupResolutionsOptions{}
	}

	query := newParams()
	query.setString("resolutionsToDelete", opts.ResolutionsToDelete)
	query.setBool("deleteNonConfiguredResolutions", opts.DeleteNonConfiguredResolutions)
	query.setBool("deleteOriginal", opts.DeleteOriginal)
	query.setBool("deleteMp4Files", opts.DeleteMp4Files)
	query.setBool("dryRun", opts.DryRun)

	path := "videos/" + url.PathEscape(videoID) + "/resolutions/cleanup"
	return c.do(ctx, http.MethodPost, path, callOptions{
		query:       query.Values,
		failMsg:     "failed to clean up resolutions",
		notFoundRef: videoID,
	})
}
