package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/text-games/apps/go-cli/internal/config"
)

func main() {
	cfg, err := config.Load()
	setupLogging(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = newRootCmd(cfg).ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		// Interrupted at a prompt: leave like the default SIGINT handler would.
		stop()
		os.Exit(130)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("exited")
	}
}

// setupLogging sends human-readable logs to stderr so they stay out of the
// game's own output on stdout.
func setupLogging(level string) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if lvl, err := zerolog.ParseLevel(level); err == nil && level != "" {
		zerolog.SetGlobalLevel(lvl)
	}
}
