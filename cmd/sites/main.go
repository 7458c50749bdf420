// Command sites serves normalized aquaculture site data over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/aquaculture-sites-service/internal/adapter/httpadapter"
	"github.com/couchcryptid/aquaculture-sites-service/internal/config"
	"github.com/couchcryptid/aquaculture-sites-service/internal/observability"
	"github.com/couchcryptid/aquaculture-sites-service/internal/pipeline"
	"github.com/couchcryptid/aquaculture-sites-service/internal/source"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	for ds, locs := range cfg.Sources {
		logger.Debug("dataset source", "dataset", ds, "locations", locs)
	}

	loader := source.NewLoader(cfg.RemoteFetchTimeout, logger)
	catalog := source.NewCatalog(loader, cfg.Sources)
	p := pipeline.New(catalog, pipeline.NewTransformer(logger), logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
