package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"fintrack-server/src/api"
	"fintrack-server/src/auth"
	"fintrack-server/src/config"
	"fintrack-server/src/db"
	"fintrack-server/src/db/factory"
	"fintrack-server/src/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	store, err := factory.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.DBBackend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := db.SeedDefaults(ctx, store); err != nil {
		slog.Error("failed to seed default categories", "error", err)
		os.Exit(1)
	}
	if cfg.DemoMode {
		if err := db.SeedDemo(ctx, store); err != nil {
			slog.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	cache, err := db.NewUserCache()
	if err != nil {
		slog.Error("failed to create user cache", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)
	router := api.NewRouter(cfg, store, cache, jwtManager)

	slog.Info("server listening", "port", cfg.Port, "backend", cfg.DBBackend, "demo", cfg.DemoMode)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
