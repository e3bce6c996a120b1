package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/samirrijal/tunimap/internal/adapters/dataset"
	"github.com/samirrijal/tunimap/internal/adapters/http"
	"github.com/samirrijal/tunimap/internal/adapters/postgres"
	"github.com/samirrijal/tunimap/internal/core/domain"
	"github.com/samirrijal/tunimap/internal/core/ports"
	"github.com/samirrijal/tunimap/internal/core/usecases"
	"github.com/samirrijal/tunimap/internal/pkg/config"
	"github.com/samirrijal/tunimap/internal/pkg/logging"
	"github.com/samirrijal/tunimap/internal/pkg/metrics"
	"github.com/samirrijal/tunimap/internal/pkg/telemetry"
)

var version = "dev"

func main() {
	cfg, err := config.Load("tunimap-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown(context.Background())
		}
	}

	// Dataset
	var db *postgres.DB
	var src ports.DatasetSource
	switch cfg.Dataset.Source {
	case config.SourceFile:
		src = dataset.FileSource{Path: cfg.Dataset.Path}
	case config.SourcePostgres:
		db, err = postgres.New(ctx, cfg.Database.DSN(), cfg.Database.MaxConns)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
		src = postgres.NewMunicipalityRepo(db)
	default:
		src = dataset.EmbeddedSource{}
	}

	store, err := dataset.Load(ctx, src)
	if err != nil {
		log.Fatalf("dataset: %v", err)
	}

	if db != nil {
		go reportPoolStats(ctx, db)
	}

	// Use cases
	municipalities := usecases.NewMunicipalityService(store, usecases.MunicipalityOptions{
		Nearby:             domain.NearbyPolicy{ZeroDisablesFilter: cfg.Nearby.ZeroDisablesFilter},
		SuggestMaxDistance: cfg.Search.SuggestMaxDistance,
	})

	deps := &http.Dependencies{
		Municipalities:  municipalities,
		Dataset:         store,
		DB:              db,
		RateLimitMax:    cfg.RateLimit.Max,
		RateLimitWindow: time.Duration(cfg.RateLimit.Window) * time.Second,
		HandlerTimeout:  time.Duration(cfg.Server.HandlerTimeout) * time.Second,
		SuggestLimit:    cfg.Search.SuggestLimit,
		Version:         version,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    64 * 1024, // GraphQL queries only
		AppName:      "TuniMap API",
		ErrorHandler: http.ErrorHandler,
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr, "dataset_source", cfg.Dataset.Source)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}

// reportPoolStats refreshes the pool gauges until ctx is done.
func reportPoolStats(ctx context.Context, db *postgres.DB) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		metrics.UpdateDBPoolMetrics(db.Pool.Stat())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
