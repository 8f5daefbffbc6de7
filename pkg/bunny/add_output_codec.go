package bunny

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// OutputCodec identifies an encoded output format of a video.
type OutputCodec int

const (
	CodecX264 OutputCodec = 0
	CodecVP9  OutputCodec = 1
	CodecHEVC OutputCodec = 2
	CodecAV1  OutputCodec = 3
)

func (oc OutputCodec) String() string {
	switch oc {
	case CodecX264:
		return "x264"
	case CodecVP9:
		return "vp9"
	case CodecHEVC:
		return "hevc"
	case CodecAV1:
		return "av1"
	}
	return fmt.Sprintf("OutputCodec(%d)", int(oc))
}

// AddOutputCodec requests an additional output rendition of the video
// in the given codec. Unknown codecs are rejected before any request
// is issued.
func (c *Client) AddOutputCodec(ctx context.Context, videoID string, codec OutputCodec) (JSON, error) {
	if codec < CodecX264 || codec > CodecAV1 {
		return nil, &ValidationError{
			Field:   "codec",
			Message: fmt.Sprintf("%d is not a known output codec (0=x264, 1=vp9, 2=hevc, 3=av1)", int(codec)),
		}
	}

	path := "videos/" + url.PathEscape(videoID) + "/outputs/" + strconv.Itoa(int(codec))
	return c.do(ctx, http.MethodPut, path, callOptions{
		failMsg:     "failed to add output codec",
		notFoundRef: videoID,
	})
}
