package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/leohubert/bunny-stream-go/pkg/bunny"
)

func FetchCmd(ctx context.Context, env *Env, services *Services, args []string) error {
	flags := flag.NewFlagSet("fetch", flag.ContinueOnError)
	title := flags.String("title", "", "video title")
	collection := flags.String("collection", "", "collection to place the video in")
	thumbnailTime := flags.Int("thumbnail-time", -1, "thumbnail position in milliseconds")

	headers := map[string]string{}
	flags.Func("header", "header sent when downloading, as name:value (repeatable)", func(value string) error {
		name, headerValue, found := strings.Cut(value, ":")
		if !found || name == "" {
			return fmt.Errorf("want name:value, got %q", value)
		}
		headers[strings.TrimSpace(name)] = strings.TrimSpace(headerValue)
		return nil
	})

	if err := flags.Parse(args); err != nil {
		return err
	}
	srcURL, _, err := takeArg(flags.Args(), "source url")
	if err != nil {
		return err
	}

	opts := &bunny.FetchVideoOptions{
		Title:        *title,
		Headers:      headers,
		CollectionID: *collection,
	}
	if *thumbnailTime >= 0 {
		opts.ThumbnailTime = thumbnailTime
	}

	result, err := services.Stream.FetchVideo(ctx, srcURL, opts)
	if err != nil {
		return err
	}
	services.Printer.Success("fetch queued for %s", srcURL)
	services.Printer.Object(result)
	return nil
}
