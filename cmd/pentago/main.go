package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/pentago/cmd/internal/analyze"
	"github.com/nelhage/pentago/cmd/internal/play"
	"github.com/nelhage/pentago/cmd/internal/selfplay"
	"github.com/nelhage/pentago/cmd/internal/serve"
)

var logLevel = flag.String("log-level", "info", "log level: debug, info, or disabled")

func setupLogging() zerolog.Logger {
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(level)
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	if err != nil {
		logger.Warn().Str("log-level", *logLevel).Msg("unknown log level, using info")
	}
	return logger
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&serve.Command{}, "")

	flag.Parse()
	logger := setupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := subcommands.Execute(logger.WithContext(ctx))
	stop()
	os.Exit(int(status))
}
