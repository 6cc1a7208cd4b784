package main

import (
	"context"
	"errors"
	"log"
	"navigation-service/internal/api"
	"navigation-service/internal/app"
	"navigation-service/internal/config"
	"navigation-service/internal/platform/obs"
	"navigation-service/internal/render"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// main is the application composition root.
// It wires concrete adapters behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer obs.SetLogger(logger)()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := app.Build(ctx, cfg)
	if err != nil {
		logger.Fatal("build providers", zap.Error(err))
	}
	defer providers.Close()

	// Seed named places on startup for local runs when a cache backend exists.
	if providers.GeocodeCache != nil {
		n, err := providers.SeedPlaces(ctx, cfg.SeedPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Info("no seed file", zap.String("path", cfg.SeedPath))
		case err != nil:
			logger.Fatal("seed places", zap.Error(err))
		default:
			logger.Info("seeded places", zap.Int("count", n))
		}
	}

	router := api.NewRouter(providers.Navigator(), render.MapOptions{Zoom: render.DefaultZoom})

	// Road distances may hit the external API on a cold cache.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}
