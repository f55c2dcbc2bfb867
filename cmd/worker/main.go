package main

import (
	"context"
	"inspirehub/config"
	"inspirehub/di"
	"inspirehub/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// The worker binary runs the booking event consumer on its own so mail
// delivery does not share a process with the API.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-done
		log.Info().Msg("Received SIGTERM. Stopping consumer.")
		cancel()
	}()

	notifier := di.InitializeNotifier()
	notifier.Run(ctx)
}
