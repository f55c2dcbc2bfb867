package main

import (
	"context"
	"inspirehub/config"
	"inspirehub/di"
	"inspirehub/shared/logger"
	"inspirehub/shared/timezone"
)

// The sweeper binary performs a single sweep and exits, for running the
// close-out under an external scheduler instead of the in-process ticker.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	sweeper := di.InitializeSweeper()
	sweeper.SweepOnce(context.Background(), timezone.Now())
}
