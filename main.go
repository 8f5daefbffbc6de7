package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/leohubert/bunny-stream-go/cmd"
	"github.com/leohubert/bunny-stream-go/pkg/ostb"
)

func main() {
	cmdName := "help"
	if len(os.Args) >= 2 {
		cmdName = os.Args[1]
	}
	args := os.Args[2:]

	if cmdName == "help" || cmdName == "-h" || cmdName == "--help" {
		cmd.Usage()
		return
	}

	ctx, stop := ostb.SignalContext(context.Background())
	defer stop()

	ctx, env, services, cleanup := cmd.Bootstrap(ctx)
	defer cleanup()

	var err error
	switch cmdName {
	case "videos":
		err = cmd.VideosCmd(ctx, env, services, args)
	case "collections":
		err = cmd.CollectionsCmd(ctx, env, services, args)
	case "upload":
		err = cmd.UploadCmd(ctx, env, services, args)
	case "fetch":
		err = cmd.FetchCmd(ctx, env, services, args)
	case "captions":
		err = cmd.CaptionsCmd(ctx, env, services, args)
	case "encode":
		err = cmd.EncodeCmd(ctx, env, services, args)
	case "stats":
		err = cmd.StatsCmd(ctx, env, services, args)
	case "open":
		err = cmd.OpenCmd(ctx, env, services, args)
	default:
		cmd.Usage()
		services.Logger.Fatal("unknown command", zap.String("command", cmdName))
	}

	if err != nil {
		services.Printer.Error(err)
		cleanup()
		os.Exit(1)
	}
}
