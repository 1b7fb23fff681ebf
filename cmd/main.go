package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"movies-api/internal/config"
	"movies-api/internal/database"
	"movies-api/internal/handler"
	"movies-api/internal/repository"
	"movies-api/internal/routes"
	"movies-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to Redis (non-fatal if unavailable)
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.NewRedis(ctx, cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, running without cache", "error", err)
		} else {
			defer rdb.Close()
		}
	}

	// Initialize layers
	repo := repository.NewMovieRepository(repository.SeedMovies())
	svc := service.NewMovieService(repo, rdb)
	h := handler.NewMovieHandler(svc)

	opts := routes.Options{
		AcceptedOrigins: cfg.AcceptedOrigins,
		AccessLog:       true,
	}
	if swaggerYAML, err := os.ReadFile(cfg.SwaggerPath); err != nil {
		slog.Warn("swagger spec not found, swagger UI will be unavailable", "path", cfg.SwaggerPath, "error", err)
	} else {
		opts.Swagger = swaggerYAML
	}

	app := routes.SetupRouter(h, opts)

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		slog.Info("shutting down movies API...")
		_ = app.Shutdown()
	}()

	addr := ":" + cfg.Port
	slog.Info("starting movies API", "addr", addr, "accepted_origins", cfg.AcceptedOrigins)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
