package main

import (
	"context"
	"inspirehub/config"
	"inspirehub/di"
	"inspirehub/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	sweeper := di.InitializeSweeper()
	go sweeper.Run(context.Background())

	http := di.InitializeService()
	http.Serve()
}
