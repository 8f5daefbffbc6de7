package cmd

import (
	"context"
	"flag"

	"github.com/leohubert/bunny-stream-go/pkg/bunny"
)

func StatsCmd(ctx context.Context, env *Env, services *Services, args []string) error {
	flags := flag.NewFlagSet("stats", flag.ContinueOnError)
	videoID := flags.String("video", "", "narrow to one video")
	dateFrom := flags.String("from", "", "start of the window, e.g. 2026-08-01")
	dateTo := flags.String("to", "", "end of the window")
	hourly := flags.Bool("hourly", false, "hourly instead of daily resolution")
	outPath := flags.String("out", "", "write the raw response to a JSON file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	opts := &bunny.StatisticsOptions{
		VideoID:  *videoID,
		DateFrom: *dateFrom,
		DateTo:   *dateTo,
	}
	if *hourly {
		opts.Hourly = hourly
	}

	result, err := services.Stream.GetStatistics(ctx, opts)
	if err != nil {
		return err
	}
	return deliver(services.Printer, *outPath, result)
}
