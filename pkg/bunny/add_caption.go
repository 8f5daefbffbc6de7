package bunny

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"os"
)

// AddCaption uploads the caption file at path as a subtitle track.
// srclang is the track's language code, e.g. "en" or "de-AT"; label is
// the name players display for it and is omitted when empty. The file
// content is base64 encoded into the request body.
func (c *Client) AddCaption(ctx context.Context, videoID, srclang, path, label string) (JSON, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LocalFileError{Path: path, Err: err}
	}

	body := map[string]any{
		"srclang":      srclang,
		"captionsFile": base64.StdEncoding.EncodeToString(content),
	}
	if label != "" {
		body["label"] = label
	}

	captionPath := "videos/" + url.PathEscape(videoID) + "/captions/" + url.PathEscape(srclang)
	return c.do(ctx, http.MethodPost, captionPath, callOptions{
		body:        body,
		failMsg:     "failed to add caption",
		notFoundRef: videoID,
	})
}
