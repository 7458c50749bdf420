package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
)

// Loader opens the first existing location from a candidate list. Locations
// are file paths or http(s) URLs.
type Loader struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLoader creates a Loader whose remote fetches are bounded by timeout.
func NewLoader(timeout time.Duration, logger *slog.Logger) *Loader {
	return &Loader{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Open returns a reader for the first location that exists, along with that
// location. It returns domain.ErrSourceNotFound when none do.
func (l *Loader) Open(ctx context.Context, locations []string) (io.ReadCloser, string, error) {
	for _, loc := range locations {
		loc = strings.TrimSpace(loc)
		if loc == "" {
			continue
		}

		var (
			rc  io.ReadCloser
			err error
		)
		if isRemote(loc) {
			rc, err = l.fetch(ctx, loc)
		} else {
			rc, err = os.Open(loc)
		}
		if err == nil {
			return rc, loc, nil
		}
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, domain.ErrSourceNotFound) {
			l.logger.Debug("source candidate missing", "location", loc)
			continue
		}
		return nil, loc, fmt.Errorf("open %s: %w", loc, err)
	}
	return nil, "", fmt.Errorf("%w: tried %s", domain.ErrSourceNotFound, strings.Join(locations, ", "))
}

func (l *Loader) fetch(ctx context.Context, u string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, domain.ErrSourceNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("remote source error: status %d: %s", resp.StatusCode, body)
	}
	return resp.Body, nil
}

func isRemote(loc string) bool {
	return strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://")
}

// Catalog maps dataset keys to candidate locations.
type Catalog struct {
	loader    *Loader
	locations map[string][]string
}

// NewCatalog creates a Catalog over the given dataset locations.
func NewCatalog(loader *Loader, locations map[string][]string) *Catalog {
	return &Catalog{loader: loader, locations: locations}
}

// Load opens and parses a dataset. It returns the rows and the location
// they were read from.
func (c *Catalog) Load(ctx context.Context, dataset string) ([]domain.RawRow, string, error) {
	locs, ok := c.locations[dataset]
	if !ok || len(locs) == 0 {
		return nil, "", fmt.Errorf("%w: no location configured for %s", domain.ErrSourceNotFound, dataset)
	}

	rc, loc, err := c.loader.Open(ctx, locs)
	if err != nil {
		return nil, loc, err
	}
	defer rc.Close()

	rows, err := ReadRows(rc)
	if err != nil {
		return nil, loc, fmt.Errorf("%s: %w", loc, err)
	}
	return rows, loc, nil
}

// Check reports whether a dataset's source can be opened.
func (c *Catalog) Check(ctx context.Context, dataset string) error {
	rc, _, err := c.loader.Open(ctx, c.locations[dataset])
	if err != nil {
		return err
	}
	return rc.Close()
}
