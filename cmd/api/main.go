package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/aitprint-portal/AITPRINT/internal/config"
	"github.com/aitprint-portal/AITPRINT/internal/infra"
	"github.com/aitprint-portal/AITPRINT/internal/logging"
	"github.com/aitprint-portal/AITPRINT/internal/server"
	"github.com/aitprint-portal/AITPRINT/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = infra.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("connect redis", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Warn("close redis", "error", err)
			}
		}()
	}

	// Backend precedence: Postgres, then Redis, then the local JSON file.
	var st store.Store
	switch {
	case cfg.DatabaseURL != "":
		db, err := infra.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("connect postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := store.NewPostgresStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Error("ensure schema", "error", err)
			os.Exit(1)
		}
		st = pg
		logger.Info("using postgres document store")
	case cache != nil:
		st = store.NewRedisStore(cache)
		logger.Info("using redis document store")
	default:
		st = store.NewFileStore(cfg.DataFile)
		logger.Info("using file document store", "path", cfg.DataFile)
	}

	srv, err := server.New(cfg, st, cache, logger)
	if err != nil {
		logger.Error("build server", "error", err)
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited cleanly")
}
