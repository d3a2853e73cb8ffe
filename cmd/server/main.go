package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/light-bringer/farmlink-service/internal/config"
	"github.com/light-bringer/farmlink-service/internal/pkg/logging"
	"github.com/light-bringer/farmlink-service/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "config.yml", "path to the configuration file")
	flag.Parse()

	ctx := context.Background()

	// 1. Load configuration (file plus environment overrides)
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize structured logging
	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting farmlink service",
		zap.String("http_port", cfg.Server.HTTPPort),
		zap.String("catalog_backend", cfg.Catalog.Backend),
		zap.String("chat_backend", cfg.Chat.Backend),
	)

	// 3. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close(ctx)

	// 4. Start HTTP server in background
	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.HTTPPort,
		Handler: serviceOpts.Router,
	}
	go func() {
		logger.Info("http server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", zap.Error(err))
		}
	}()

	// 5. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down gracefully")
	if err := httpServer.Shutdown(context.Background()); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}

	return nil
}
