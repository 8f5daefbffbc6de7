package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/leohubert/bunny-stream-go/internal/encodewait"
	"github.com/leohubert/bunny-stream-go/pkg/bunny"
)

func EncodeCmd(ctx context.Context, env *Env, services *Services, args []string) error {
	sub := ""
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "reencode":
		return encodeReencode(ctx, services, args)
	case "repackage":
		return encodeRepackage(ctx, services, args)
	case "codec":
		return encodeCodec(ctx, services, args)
	case "resolutions":
		return encodeResolutions(ctx, services, args)
	case "cleanup":
		return encodeCleanup(ctx, services, args)
	case "transcribe":
		return encodeTranscribe(ctx, services, args)
	case "wait":
		return encodeWait(ctx, services, args)
	}
	return fmt.Errorf("unknown encode subcommand %q", sub)
}

func encodeReencode(ctx context.Context, services *Services, args []string) error {
	videoID, _, err := takeArg(args, "video id")
	if err != nil {
		return err
	}

	result, err := services.Stream.ReencodeVideo(ctx, videoID)
	if err != nil {
		return err
	}
	services.Printer.Success("reencode queued for %s", videoID)
	services.Printer.Object(result)
	return nil
}

func encodeRepackage(ctx context.Context, services *Services, args []string) error {
	videoID, args, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("encode repackage", flag.ContinueOnError)
	keep := flags.Bool("keep", false, "keep the original files")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if _, err := services.Stream.RepackageVideo(ctx, videoID, *keep); err != nil {
		return err
	}
	services.Printer.Success("repackage queued for %s", videoID)
	return nil
}

// codecByName maps the CLI spelling onto the API codec IDs.
var codecByName = map[string]bunny.OutputCodec{
	"x264": bunny.CodecX264,
	"vp9":  bunny.CodecVP9,
	"hevc": bunny.CodecHEVC,
	"av1":  bunny.CodecAV1,
}

func encodeCodec(ctx context.Context, services *Services, args []string) error {
	videoID, args, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	name, _, err := takeArg(args, "codec")
	if err != nil {
		return err
	}

	codec, ok := codecByName[name]
	if !ok {
		// Accept the numeric form too; the client validates the range.
		id, err := strconv.Atoi(name)
		if err != nil {
			return fmt.Errorf("unknown codec %q, want x264, vp9, hevc or av1", name)
		}
		codec = bunny.OutputCodec(id)
	}

	if _, err := services.Stream.AddOutputCodec(ctx, videoID, codec); err != nil {
		return err
	}
	services.Printer.Success("output codec %s queued for %s", codec, videoID)
	return nil
}

func encodeResolutions(ctx context.Context, services *Services, args []string) error {
	videoID, args, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("encode resolutions", flag.ContinueOnError)
	outPath := flags.String("out", "", "write the raw response to a JSON file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := services.Stream.GetVideoResolutions(ctx, videoID)
	if err != nil {
		return err
	}
	return deliver(services.Printer, *outPath, result)
}

func encodeCleanup(ctx context.Context, services *Services, args []string) error {
	videoID, args, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("encode cleanup", flag.ContinueOnError)
	resolutions := flags.String("resolutions", "", "renditions to drop, e.g. 240p,360p")
	nonConfigured := flags.Bool("non-configured", false, "drop renditions the library no longer configures")
	original := flags.Bool("original", false, "drop the uploaded original")
	mp4 := flags.Bool("mp4", false, "drop the progressive MP4 files")
	apply := flags.Bool("apply", false, "actually delete instead of previewing")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := services.Stream.CleanupResolutions(ctx, videoID, &bunny.CleanupResolutionsOptions{
		ResolutionsToDelete:            *resolutions,
		DeleteNonConfiguredResolutions: *nonConfigured,
		DeleteOriginal:                 *original,
		DeleteMp4Files:                 *mp4,
		DryRun:                         !*apply,
	})
	if err != nil {
		return err
	}
	if !*apply {
		services.Printer.Heading("dry run, pass -apply to delete")
	}
	services.Printer.Object(result)
	return nil
}

func encodeTranscribe(ctx context.Context, services *Services, args []string) error {
	videoID, args, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	language, args, err := takeArg(args, "language code")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("encode transcribe", flag.ContinueOnError)
	force := flags.Bool("force", false, "re-run even when a transcript exists")
	source := flags.String("source", "", "source language of the audio track")
	if err := flags.Parse(args); err != nil {
		return err
	}

	_, err = services.Stream.TranscribeVideo(ctx, videoID, language, &bunny.TranscribeOptions{
		Force:          *force,
		SourceLanguage: *source,
	})
	if err != nil {
		return err
	}
	services.Printer.Success("transcription queued for %s", videoID)
	return nil
}

func encodeWait(ctx context.Context, services *Services, args []string) error {
	videoID, args, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("encode wait", flag.ContinueOnError)
	poll := flags.Duration("poll", 3*time.Second, "poll interval")
	timeout := flags.Duration("timeout", 30*time.Minute, "give up after this long")
	if err := flags.Parse(args); err != nil {
		return err
	}

	return waitForEncode(ctx, services, videoID, encodewait.Options{
		PollInterval: *poll,
		Timeout:      *timeout,
	})
}
