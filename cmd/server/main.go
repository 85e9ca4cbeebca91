package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dev-mike-s/foodmart/internal/app"
	"github.com/dev-mike-s/foodmart/internal/config"
	"github.com/dev-mike-s/foodmart/internal/server"
	"github.com/dev-mike-s/foodmart/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting foodmart api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log, nil)
	if err != nil {
		log.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	if err := server.Run(ctx, cfg, server.NewRouter(a, cfg, log), log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
