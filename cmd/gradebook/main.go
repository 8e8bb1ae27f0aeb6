package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yigit/gradebook/internal/cli"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("gradebook failed")
		stop()
		os.Exit(1)
	}
}
