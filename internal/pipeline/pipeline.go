package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
	"github.com/couchcryptid/aquaculture-sites-service/internal/observability"
	"github.com/couchcryptid/aquaculture-sites-service/internal/region"
)

// DatasetLoader reads the raw rows of one dataset.
type DatasetLoader interface {
	Load(ctx context.Context, dataset string) ([]domain.RawRow, string, error)
	Check(ctx context.Context, dataset string) error
}

// Transformer converts a dataset's raw rows into canonical sites.
type Transformer interface {
	Transform(dataset string, rows []domain.RawRow) ([]domain.Site, int, error)
}

// Result is the normalized site collection for one region.
type Result struct {
	Region      string               `json:"region"`
	Sites       []domain.Site        `json:"sites"`
	Filters     domain.FilterOptions `json:"filters"`
	TotalCount  int                  `json:"totalCount"`
	ValidCount  int                  `json:"validCount"`
	Center      *domain.Position     `json:"center,omitempty"`
	Bounds      *domain.Bounds       `json:"bounds,omitempty"`
	GeneratedAt time.Time            `json:"generatedAt"`

	// Sources lists the locations the datasets were read from.
	Sources []string `json:"-"`
	// Fallback is set when the requested key was unknown and the default
	// region was used instead.
	Fallback bool `json:"-"`
}

// Pipeline runs ingestion, normalization and facet extraction for a region.
// It holds no per-request state, so concurrent Runs are independent.
type Pipeline struct {
	loader      DatasetLoader
	transformer Transformer
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(l DatasetLoader, t Transformer, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		loader:      l,
		transformer: t,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness reports whether the default region's source can be opened.
func (p *Pipeline) CheckReadiness(ctx context.Context) error {
	if err := p.loader.Check(ctx, region.DefaultKey); err != nil {
		return fmt.Errorf("default dataset unavailable: %w", err)
	}
	return nil
}

// Run builds the site collection for the region named by key. Unknown keys
// fall back to the default region. A composite region skips members whose
// source is missing and fails with domain.ErrSourceNotFound only when every
// member is missing.
func (p *Pipeline) Run(ctx context.Context, key string) (Result, error) {
	clock := domain.Clock()
	start := clock.Now()

	reg, known := region.Resolve(key)
	if !known && key != "" {
		p.logger.Info("unknown region, using default", "requested", key, "region", reg.Key)
	}

	res, err := p.run(ctx, reg)
	if err != nil {
		p.metrics.PipelineErrors.WithLabelValues(errorKind(err)).Inc()
		return Result{}, err
	}
	res.Fallback = !known

	elapsed := clock.Since(start)
	p.metrics.PipelineDuration.WithLabelValues(reg.Key).Observe(elapsed.Seconds())
	p.logger.Debug("pipeline run complete",
		"region", reg.Key,
		"total", res.TotalCount,
		"valid", res.ValidCount,
		"duration", elapsed,
	)
	return res, nil
}

func (p *Pipeline) run(ctx context.Context, reg region.Region) (Result, error) {
	var (
		sites   []domain.Site
		sources []string
		missing []string
	)

	for _, ds := range reg.Datasets {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		rows, loc, err := p.loader.Load(ctx, ds)
		if err != nil {
			if reg.Composite() && errors.Is(err, domain.ErrSourceNotFound) {
				p.logger.Warn("dataset source missing, skipping", "region", reg.Key, "dataset", ds, "error", err)
				missing = append(missing, ds)
				continue
			}
			return Result{}, fmt.Errorf("load %s: %w", ds, err)
		}
		p.metrics.RowsIngested.WithLabelValues(ds).Add(float64(len(rows)))

		dsSites, noCoords, err := p.transformer.Transform(ds, rows)
		if err != nil {
			return Result{}, fmt.Errorf("transform %s: %w", ds, err)
		}
		p.metrics.SitesNormalized.WithLabelValues(ds).Add(float64(len(dsSites)))
		p.metrics.SitesWithoutCoordinates.WithLabelValues(ds).Add(float64(noCoords))

		sites = append(sites, dsSites...)
		sources = append(sources, loc)
	}

	if len(missing) == len(reg.Datasets) {
		return Result{}, fmt.Errorf("%w: no source available for region %s", domain.ErrSourceNotFound, reg.Key)
	}
	if sites == nil {
		sites = []domain.Site{}
	}

	filters := domain.ExtractFilters(sites)
	domain.AssignColors(sites, filters.Companies)
	ext := domain.ComputeExtent(sites)

	return Result{
		Region:      reg.Key,
		Sites:       sites,
		Filters:     filters,
		TotalCount:  len(sites),
		ValidCount:  ext.ValidCount,
		Center:      ext.Center,
		Bounds:      ext.Bounds,
		GeneratedAt: domain.Now(),
		Sources:     sources,
	}, nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrSourceNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrParseFailure):
		return "parse"
	default:
		return "internal"
	}
}
