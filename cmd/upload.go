package cmd

import (
	"context"
	"errors"
	"flag"
	"time"

	"go.uber.org/zap"

	"github.com/leohubert/bunny-stream-go/internal/encodewait"
	"github.com/leohubert/bunny-stream-go/pkg/bunny"
	"github.com/leohubert/bunny-stream-go/pkg/logtb"
)

func UploadCmd(ctx context.Context, env *Env, services *Services, args []string) error {
	flags := flag.NewFlagSet("upload", flag.ContinueOnError)
	title := flags.String("title", "", "video title, defaults to the file name")
	collection := flags.String("collection", "", "collection to place the video in")
	thumbnailTime := flags.Int("thumbnail-time", -1, "thumbnail position in milliseconds")
	resolutions := flags.String("resolutions", "", "limit encoded renditions, e.g. 240p,720p")
	wait := flags.Bool("wait", false, "block until encoding finishes")
	waitTimeout := flags.Duration("wait-timeout", 30*time.Minute, "give up waiting after this long")
	if err := flags.Parse(args); err != nil {
		return err
	}
	path, _, err := takeArg(flags.Args(), "video file")
	if err != nil {
		return err
	}

	opts := &bunny.UploadVideoOptions{
		CollectionID:       *collection,
		EnabledResolutions: *resolutions,
	}
	if *thumbnailTime >= 0 {
		opts.ThumbnailTime = thumbnailTime
	}

	services.Logger.Info("uploading video", zap.String("file", path))
	videoID, _, err := services.Stream.UploadVideo(ctx, path, *title, opts)

	var uploadErr *bunny.UploadError
	if errors.As(err, &uploadErr) {
		// The record exists but has no content. Surface the guid so
		// the upload can be retried or the orphan removed.
		services.Printer.Line("created record %s has no content, remove it with: bunny-stream videos delete %s", uploadErr.VideoGUID, uploadErr.VideoGUID)
		return err
	}
	if err != nil {
		return err
	}

	services.Printer.Success("uploaded %s as %s", path, videoID)
	services.Printer.Line("embed: %s", services.Stream.EmbedURL(videoID))

	if !*wait {
		return nil
	}
	return waitForEncode(ctx, services, videoID, encodewait.Options{Timeout: *waitTimeout})
}

// waitForEncode blocks until the encode settles, logging through the
// context logger.
func waitForEncode(ctx context.Context, services *Services, videoID string, opts encodewait.Options) error {
	logger := logtb.ExtractLogger(ctx)
	if logger == nil {
		logger = services.Logger
	}

	logger.Info("waiting for encoding", zap.String("guid", videoID))
	status, err := encodewait.Wait(ctx, services.Stream, videoID, opts)
	if err != nil {
		return err
	}
	logger.Info("encoding finished", zap.String("guid", videoID))
	services.Printer.Success("encoding %s", encodewait.StatusName(status))
	return nil
}
