package cmd

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/leohubert/bunny-stream-go/pkg/bunny"
)

func VideosCmd(ctx context.Context, env *Env, services *Services, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		return videosList(ctx, services, args)
	case "get":
		return videosGet(ctx, services, args)
	case "create":
		return videosCreate(ctx, services, args)
	case "update":
		return videosUpdate(ctx, services, args)
	case "delete":
		return videosDelete(ctx, services, args)
	case "thumbnail":
		return videosThumbnail(ctx, services, args)
	case "play":
		return videosPlay(ctx, services, args)
	case "heatmap":
		return videosHeatmap(ctx, services, args)
	case "embed":
		return videosEmbed(services, args)
	}
	return fmt.Errorf("unknown videos subcommand %q", sub)
}

func videosList(ctx context.Context, services *Services, args []string) error {
	flags := flag.NewFlagSet("videos list", flag.ContinueOnError)
	search := flags.String("search", "", "filter by title")
	collection := flags.String("collection", "", "filter by collection guid")
	orderBy := flags.String("order", "", "sort order, e.g. date or title")
	page := flags.Int("page", 1, "page to fetch")
	perPage := flags.Int("per-page", 100, "items per page")
	outPath := flags.String("out", "", "write the raw response to a JSON file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := services.Stream.ListVideos(ctx, &bunny.ListVideosOptions{
		Search:       *search,
		Collection:   *collection,
		OrderBy:      *orderBy,
		Page:         *page,
		ItemsPerPage: *perPage,
	})
	if err != nil {
		return err
	}
	if *outPath != "" {
		return deliver(services.Printer, *outPath, result)
	}

	totalItems, _ := asObject(result)["totalItems"].(float64)
	services.Printer.Heading("%d video(s)", int(totalItems))
	for _, video := range items(result) {
		services.Printer.VideoLine(video)
	}
	return nil
}

func videosGet(ctx context.Context, services *Services, args []string) error {
	videoID, args, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("videos get", flag.ContinueOnError)
	outPath := flags.String("out", "", "write the raw response to a JSON file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := services.Stream.GetVideo(ctx, videoID)
	if err != nil {
		return err
	}
	return deliver(services.Printer, *outPath, result)
}

func videosCreate(ctx context.Context, services *Services, args []string) error {
	flags := flag.NewFlagSet("videos create", flag.ContinueOnError)
	title := flags.String("title", "", "title of the new video (required)")
	collection := flags.String("collection", "", "collection to place the video in")
	thumbnailTime := flags.Int("thumbnail-time", -1, "thumbnail position in milliseconds")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *title == "" {
		return fmt.Errorf("-title is required")
	}

	opts := &bunny.CreateVideoOptions{CollectionID: *collection}
	if *thumbnailTime >= 0 {
		opts.ThumbnailTime = thumbnailTime
	}

	result, err := services.Stream.CreateVideo(ctx, *title, opts)
	if err != nil {
		return err
	}
	video := asObject(result)
	services.Logger.Info("video created", zap.Any("guid", video["guid"]))
	services.Printer.Object(result)
	return nil
}

func videosUpdate(ctx context.Context, services *Services, args []string) error {
	videoID, args, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("videos update", flag.ContinueOnError)
	title := flags.String("title", "", "new title")
	collection := flags.String("collection", "", "new collection guid")
	if err := flags.Parse(args); err != nil {
		return err
	}

	meta := map[string]any{}
	if *title != "" {
		meta["title"] = *title
	}
	if *collection != "" {
		meta["collectionId"] = *collection
	}
	if len(meta) == 0 {
		return fmt.Errorf("nothing to update, pass -title or -collection")
	}

	result, err := services.Stream.UpdateVideo(ctx, videoID, meta)
	if err != nil {
		return err
	}
	services.Printer.Object(result)
	return nil
}

func videosDelete(ctx context.Context, services *Services, args []string) error {
	videoID, _, err := takeArg(args, "video id")
	if err != nil {
		return err
	}

	if _, err := services.Stream.DeleteVideo(ctx, videoID); err != nil {
		return err
	}
	services.Logger.Info("video deleted", zap.String("guid", videoID))
	services.Printer.Success("deleted %s", videoID)
	return nil
}

func videosThumbnail(ctx context.Context, services *Services, args []string) error {
	videoID, args, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	thumbnailURL, _, err := takeArg(args, "thumbnail url")
	if err != nil {
		return err
	}

	if _, err := services.Stream.SetThumbnail(ctx, videoID, thumbnailURL); err != nil {
		return err
	}
	services.Printer.Success("thumbnail of %s updated", videoID)
	return nil
}

func videosPlay(ctx context.Context, services *Services, args []string) error {
	videoID, args, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("videos play", flag.ContinueOnError)
	token := flags.String("token", "", "embed view token")
	expires := flags.Int64("expires", 0, "token expiry as unix time")
	outPath := flags.String("out", "", "write the raw response to a JSON file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var opts *bunny.PlayDataOptions
	if *token != "" || *expires != 0 {
		opts = &bunny.PlayDataOptions{Token: *token, Expires: *expires}
	}

	result, err := services.Stream.GetVideoPlayData(ctx, videoID, opts)
	if err != nil {
		return err
	}
	return deliver(services.Printer, *outPath, result)
}

func videosHeatmap(ctx context.Context, services *Services, args []string) error {
	videoID, args, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("videos heatmap", flag.ContinueOnError)
	outPath := flags.String("out", "", "write the raw response to a JSON file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := services.Stream.GetVideoHeatmap(ctx, videoID)
	if err != nil {
		return err
	}
	return deliver(services.Printer, *outPath, result)
}

func videosEmbed(services *Services, args []string) error {
	videoID, _, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	services.Printer.Line("%s", services.Stream.EmbedURL(videoID))
	return nil
}
