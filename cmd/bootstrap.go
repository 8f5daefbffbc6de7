package cmd

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leohubert/bunny-stream-go/internal/output"
	"github.com/leohubert/bunny-stream-go/pkg/bunny"
	"github.com/leohubert/bunny-stream-go/pkg/envtb"
	"github.com/leohubert/bunny-stream-go/pkg/errtb"
	"github.com/leohubert/bunny-stream-go/pkg/logtb"
)

type Services struct {
	Stream  *bunny.Client
	Logger  *zap.Logger
	Printer *output.Printer
}

func Bootstrap(ctx context.Context) (context.Context, *Env, *Services, func()) {
	env := loadEnv()

	logger, flushLogger := logtb.NewLogger(logtb.Options{
		Format: env.LogFormat,
		Level:  env.LogLevel,
	})

	if env.AccessKey == "" {
		logger.Fatal("BUNNY_ACCESS_KEY is required")
	}
	if env.LibraryID == "" {
		logger.Fatal("BUNNY_LIBRARY_ID is required")
	}

	streamClient := bunny.NewClient(bunny.Options{
		AccessKey: env.AccessKey,
		LibraryID: env.LibraryID,
		Endpoint:  env.Endpoint,
		Timeout:   env.Timeout,
	})

	ctx = logtb.InjectLogger(ctx, logger)

	services := &Services{
		Stream:  streamClient,
		Logger:  logger,
		Printer: output.NewPrinter(os.Stdout),
	}

	cleanup := func() {
		flushLogger()
	}

	return ctx, env, services, cleanup
}

type Env struct {
	AccessKey string
	LibraryID string
	Endpoint  string
	Timeout   time.Duration
	LogFormat logtb.Format
	LogLevel  zapcore.Level
}

func loadEnv() *Env {
	envtb.LoadEnvFile(".env")

	return &Env{
		AccessKey: envtb.GetString("BUNNY_ACCESS_KEY", ""),
		LibraryID: envtb.GetString("BUNNY_LIBRARY_ID", ""),
		Endpoint:  envtb.GetURL("BUNNY_ENDPOINT", bunny.DefaultEndpoint).String(),
		Timeout:   envtb.GetDuration("BUNNY_TIMEOUT", "30s"),
		LogFormat: envtb.GetLogFormat("LOG_FORMAT", logtb.FormatPretty),
		LogLevel:  errtb.Must(zapcore.ParseLevel(envtb.GetString("LOG_LEVEL", "info"))),
	}
}
