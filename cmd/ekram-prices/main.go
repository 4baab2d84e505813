package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/foashegy/ekram-prices/internal/app"
	"github.com/foashegy/ekram-prices/platform/logger"
)

func main() {
	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer quit()

	a, err := app.New(ctx)
	if err != nil {
		logger.Error(ctx,
			"❌ Failed to create an application",
			logger.ErrorF(err),
		)
		return
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "❌ Prices server error", logger.ErrorF(err))
	}
}
