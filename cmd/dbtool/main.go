package main

import (
	"context"
	"log"
	"navigation-service/internal/app"
	"navigation-service/internal/config"
	"navigation-service/internal/platform/obs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// dbtool initializes the configured cache backend and seeds named places.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Cache.Backend == config.BackendNone {
		log.Fatal("CACHE_BACKEND is required (sqlite, postgres or redis)")
	}

	logger, err := obs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer obs.SetLogger(logger)()

	ctx := context.Background()

	logger.Info("initializing cache backend", zap.String("backend", cfg.Cache.Backend))
	providers, err := app.Build(ctx, cfg)
	if err != nil {
		logger.Fatal("initialization failed", zap.Error(err))
	}
	defer providers.Close()
	logger.Info("schema ready")

	logger.Info("seeding places", zap.String("path", cfg.SeedPath))
	n, err := providers.SeedPlaces(ctx, cfg.SeedPath)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seeding complete", zap.Int("count", n))
}
