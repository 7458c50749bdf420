package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
	"github.com/couchcryptid/aquaculture-sites-service/internal/region"
)

// SiteTransformer normalizes raw rows with the dataset's region adapter.
type SiteTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates a SiteTransformer.
func NewTransformer(logger *slog.Logger) *SiteTransformer {
	return &SiteTransformer{logger: logger}
}

// Transform maps every row of a dataset to a canonical site, preserving row
// order. It also returns how many sites ended up without coordinates.
func (t *SiteTransformer) Transform(dataset string, rows []domain.RawRow) ([]domain.Site, int, error) {
	adapter, ok := region.Lookup(dataset)
	if !ok {
		return nil, 0, fmt.Errorf("no adapter for dataset %q", dataset)
	}

	sites := make([]domain.Site, 0, len(rows))
	missing := 0
	for _, row := range rows {
		site := adapter.Normalize(row)
		if _, ok := site.Position(); !ok {
			missing++
		}
		sites = append(sites, site)
	}

	if missing > 0 {
		t.logger.Debug("sites without coordinates", "dataset", dataset, "count", missing, "total", len(sites))
	}
	return sites, missing, nil
}
