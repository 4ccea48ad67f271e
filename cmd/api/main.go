package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nagare-labs/nagare/backend/internal/bootstrap"
	"github.com/nagare-labs/nagare/backend/internal/config"
	"github.com/nagare-labs/nagare/backend/internal/pkg/logger"
	"github.com/nagare-labs/nagare/backend/internal/server"
)

func main() {
	cfg := config.Load()

	zlog := logger.New(cfg.App.LogFilePath, cfg.IsProduction())
	defer zlog.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := bootstrap.NewContainer(ctx, cfg, zlog)
	if err != nil {
		log.Fatalf("FATAL: failed to build application: %v", err)
	}
	defer container.Close()

	srv := server.New(cfg, container, zlog)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Run()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("FATAL: server error: %v", err)
		}
	case <-ctx.Done():
		zlog.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			zlog.Error("shutdown error")
		}
	}
}
