// Package encodewait polls a video until the Stream API reports its
// encoding as done. The client itself never retries anything; waiting
// is a caller concern and lives here.
package encodewait

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/leohubert/bunny-stream-go/pkg/bunny"
)

// Encoding states the API reports in a video's status field.
const (
	StatusCreated      = 0
	StatusUploaded     = 1
	StatusProcessing   = 2
	StatusTranscoding  = 3
	StatusFinished     = 4
	StatusError        = 5
	StatusUploadFailed = 6
)

// StatusName returns a human readable name for an encoding state.
func StatusName(status int) string {
	switch status {
	case StatusCreated:
		return "created"
	case StatusUploaded:
		return "uploaded"
	case StatusProcessing:
		return "processing"
	case StatusTranscoding:
		return "transcoding"
	case StatusFinished:
		return "finished"
	case StatusError:
		return "error"
	case StatusUploadFailed:
		return "upload failed"
	}
	return fmt.Sprintf("status %d", status)
}

// VideoGetter is the single call polling needs. *bunny.Client
// satisfies it.
type VideoGetter interface {
	GetVideo(ctx context.Context, videoID string) (bunny.JSON, error)
}

// Options tune the polling cadence.
type Options struct {
	// PollInterval is the first wait between polls. Defaults to 3s.
	PollInterval time.Duration
	// MaxInterval caps the growing wait. Defaults to 30s.
	MaxInterval time.Duration
	// Timeout bounds the whole wait. Defaults to 30m.
	Timeout time.Duration
}

// EncodingFailedError reports a video that ended in a failed state.
type EncodingFailedError struct {
	VideoID string
	Status  int
}

func (e *EncodingFailedError) Error() string {
	return fmt.Sprintf("encoding of video %s failed: %s", e.VideoID, StatusName(e.Status))
}

// Wait polls the video until its encoding finishes and returns the
// final status. API errors end the wait immediately; only a still
// running encode is polled again.
func Wait(ctx context.Context, videos VideoGetter, videoID string, opts Options) (int, error) {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 3 * time.Second
	}
	if opts.MaxInterval <= 0 {
		opts.MaxInterval = 30 * time.Second
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Minute
	}

	status := -1
	operation := func() error {
		video, err := videos.GetVideo(ctx, videoID)
		if err != nil {
			return backoff.Permanent(err)
		}
		current, ok := videoStatus(video)
		if !ok {
			return backoff.Permanent(fmt.Errorf("video %s carries no status field", videoID))
		}
		status = current

		switch current {
		case StatusFinished:
			return nil
		case StatusError, StatusUploadFailed:
			return backoff.Permanent(&EncodingFailedError{VideoID: videoID, Status: current})
		}
		return fmt.Errorf("video %s still encoding (%s)", videoID, StatusName(current))
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = opts.PollInterval
	bo.MaxInterval = opts.MaxInterval
	bo.MaxElapsedTime = opts.Timeout

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return status, err
	}
	return status, nil
}

// videoStatus reads the numeric status out of a video response.
func videoStatus(video bunny.JSON) (int, bool) {
	obj, ok := video.(map[string]any)
	if !ok {
		return 0, false
	}
	status, ok := obj["status"].(float64)
	if !ok {
		return 0, false
	}
	return int(status), true
}
