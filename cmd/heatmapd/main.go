package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/temperature-heatmap/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/temperature-heatmap/internal/adapter/kafka"
	"github.com/couchcryptid/temperature-heatmap/internal/adapter/source"
	"github.com/couchcryptid/temperature-heatmap/internal/config"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/pipeline"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := source.NewClient(cfg.FetchTimeout, metrics, logger)
	loader := source.NewCachedLoader(client, cfg.CacheSize, cfg.CacheTTL, clockwork.NewRealClock(), metrics)
	logger.Info("dataset source configured", "url", cfg.SourceURL, "cache_size", cfg.CacheSize, "cache_ttl", cfg.CacheTTL)

	// sink stays a nil interface when export is off.
	var sink pipeline.BatchLoader
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		sink = writer
		logger.Info("kafka export enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Info("kafka export disabled")
	}

	p := pipeline.New(loader, sink, pipeline.DefaultOptions(cfg.SourceURL), logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, render.DefaultTitle, p, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Warm the cache and flip readiness; export once when enabled.
	go func() {
		if sink != nil {
			if _, err := p.Export(ctx); err != nil {
				logger.Error("initial export failed", "error", err)
			}
			return
		}
		if _, err := p.Build(ctx); err != nil {
			logger.Error("initial chart build failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
