// Command publish normalizes one or more regions and writes every site as a
// Kafka message keyed "region:site_id".
//
// Usage:
//
//	go run ./cmd/publish -regions uk,iceland,canada
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/aquaculture-sites-service/internal/adapter/kafka"
	"github.com/couchcryptid/aquaculture-sites-service/internal/config"
	"github.com/couchcryptid/aquaculture-sites-service/internal/observability"
	"github.com/couchcryptid/aquaculture-sites-service/internal/pipeline"
	"github.com/couchcryptid/aquaculture-sites-service/internal/region"
	"github.com/couchcryptid/aquaculture-sites-service/internal/source"
)

func main() {
	regions := flag.String("regions", region.DefaultKey, "comma-separated region keys to publish")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, splitKeys(*regions), logger); err != nil {
		logger.Error("publish failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, keys []string, logger *slog.Logger) error {
	if len(keys) == 0 {
		return errors.New("no regions given")
	}
	for _, k := range keys {
		if _, ok := region.Resolve(k); !ok {
			return fmt.Errorf("unknown region %q (known: %s)", k, strings.Join(region.Keys(), ", "))
		}
	}

	metrics := observability.NewMetrics()
	catalog := source.NewCatalog(source.NewLoader(cfg.RemoteFetchTimeout, logger), cfg.Sources)
	p := pipeline.New(catalog, pipeline.NewTransformer(logger), logger, metrics)

	writer := kafka.NewWriter(cfg, logger)
	defer func() {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}()

	for _, k := range keys {
		res, err := p.Run(ctx, k)
		if err != nil {
			return fmt.Errorf("region %s: %w", k, err)
		}
		if err := writer.PublishSites(ctx, res.Region, res.Sites, res.GeneratedAt); err != nil {
			metrics.PublishErrors.Inc()
			return err
		}
		metrics.SitesPublished.Add(float64(len(res.Sites)))
		logger.Info("region published",
			"region", res.Region,
			"sites", res.TotalCount,
			"with_coordinates", res.ValidCount,
			"topic", cfg.KafkaSitesTopic,
		)
	}
	return nil
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
