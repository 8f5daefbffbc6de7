package bunny

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// UploadVideoContentOptions tune how uploaded content is encoded.
type UploadVideoContentOptions struct {
	// EnabledResolutions limits the renditions encoded for this video,
	// comma separated, e.g. "240p,360p,720p".
	EnabledResolutions string
}

// UploadVideoContent streams raw video bytes into a video record
// created with CreateVideo. The whole reader is sent as the request
// body; encoding starts once the API has it.
func (c *Client) UploadVideoContent(ctx context.Context, videoID string, content io.Reader, opts *UploadVideoContentOptions) (JSON, error) {
	query := newParams()
	if opts != nil {
		query.setString("enabledResolutions", opts.EnabledResolutions)
	}

	return c.do(ctx, http.MethodPut, "videos/"+url.PathEscape(videoID), callOptions{
		query:       query.Values,
		raw:         content,
		failMsg:     "failed to upload video content",
		notFoundRef: videoID,
	})
}

// UploadVideoOptions carries the optional properties of UploadVideo.
type UploadVideoOptions struct {
	CollectionID       string
	ThumbnailTime      *int
	EnabledResolutions string
}

// UploadVideo creates a video record and uploads the file at path into
// it. title defaults to the file name. It returns the GUID of the
// created record alongside the upload response.
//
// The two steps are not atomic: when the upload fails the created
// record stays behind, and the returned *UploadError carries its GUID
// so the caller can retry the upload or delete the record.
func (c *Client) UploadVideo(ctx context.Context, path, title string, opts *UploadVideoOptions) (string, JSON, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", nil, &LocalFileError{Path: path, Err: err}
	}
	defer func() {
		_ = file.Close()
	}()

	if title == "" {
		title = filepath.Base(path)
	}

	var createOpts *CreateVideoOptions
	var contentOpts *UploadVideoContentOptions
	if opts != nil {
		createOpts = &CreateVideoOptions{
			CollectionID:  opts.CollectionID,
			ThumbnailTime: opts.ThumbnailTime,
		}
		contentOpts = &UploadVideoContentOptions{
			EnabledResolutions: opts.EnabledResolutions,
		}
	}

	created, err := c.CreateVideo(ctx, title, createOpts)
	if err != nil {
		return "", nil, err
	}
	videoID, err := videoGUID(created)
	if err != nil {
		return "", nil, err
	}

	result, err := c.UploadVideoContent(ctx, videoID, file, contentOpts)
	if err != nil {
		return videoID, nil, &UploadError{VideoGUID: videoID, Err: err}
	}
	return videoID, result, nil
}

// videoGUID pulls the guid out of a create-video response.
func videoGUID(created JSON) (string, error) {
	obj, ok := created.(map[string]any)
	if !ok {
		return "", fmt.Errorf("create video response is not an object")
	}
	guid, ok := obj["guid"].(string)
	if !ok || guid == "" {
		return "", fmt.Errorf("create video response carries no guid")
	}
	return guid, nil
}
