package cmd

import (
	"context"
	"flag"
	"fmt"
)

func CaptionsCmd(ctx context.Context, env *Env, services *Services, args []string) error {
	sub := ""
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "add":
		return captionsAdd(ctx, services, args)
	case "rm":
		return captionsRemove(ctx, services, args)
	}
	return fmt.Errorf("unknown captions subcommand %q", sub)
}

func captionsAdd(ctx context.Context, services *Services, args []string) error {
	flags := flag.NewFlagSet("captions add", flag.ContinueOnError)
	label := flags.String("label", "", "display name of the track")
	if err := flags.Parse(args); err != nil {
		return err
	}

	rest := flags.Args()
	videoID, rest, err := takeArg(rest, "video id")
	if err != nil {
		return err
	}
	srclang, rest, err := takeArg(rest, "language code")
	if err != nil {
		return err
	}
	path, _, err := takeArg(rest, "caption file")
	if err != nil {
		return err
	}

	if _, err := services.Stream.AddCaption(ctx, videoID, srclang, path, *label); err != nil {
		return err
	}
	services.Printer.Success("caption %s added to %s", srclang, videoID)
	return nil
}

func captionsRemove(ctx context.Context, services *Services, args []string) error {
	videoID, args, err := takeArg(args, "video id")
	if err != nil {
		return err
	}
	srclang, _, err := takeArg(args, "language code")
	if err != nil {
		return err
	}

	if _, err := services.Stream.DeleteCaption(ctx, videoID, srclang); err != nil {
		return err
	}
	services.Printer.Success("caption %s removed from %s", srclang, videoID)
	return nil
}
