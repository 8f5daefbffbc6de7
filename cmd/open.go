package cmd

import (
	"context"

	"github.com/cli/browser"
)

// OpenCmd opens a video's public embed page in the default browser.
func OpenCmd(ctx context.Context, env *Env, services *Services, args []string) error {
	videoID, _, err := takeArg(args, "video id")
	if err != nil {
		return err
	}

	embedURL := services.Stream.EmbedURL(videoID)
	services.Printer.Line("%s", embedURL)
	return browser.OpenURL(embedURL)
}
