package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/qrpay/internal/app"
	"github.com/fsdevblog/qrpay/internal/config"
	"github.com/fsdevblog/qrpay/internal/logger"
)

func main() {
	l := logger.New(os.Stdout)
	conf, err := config.LoadConfig()
	if err != nil {
		l.WithError(err).Fatal("load config")
	}

	if runErr := app.New(conf, l).Run(); runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		l.WithError(runErr).Fatal("app stopped")
	}
}
