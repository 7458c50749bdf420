// Command validate performs integrity checks on the regional site CSVs the
// service serves: header layout, coordinate conversion, species coverage and
// filter facets. It exits non-zero when any phase fails.
//
// Usage:
//
//	go run ./cmd/validate -region canada
//	go run ./cmd/validate -region uk -file data/uk_sites.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/aquaculture-sites-service/internal/config"
	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
	"github.com/couchcryptid/aquaculture-sites-service/internal/region"
	"github.com/couchcryptid/aquaculture-sites-service/internal/source"
)

// phase tracks pass/fail for a validation phase. Warnings are reported but
// never fail the run.
type phase struct {
	name     string
	errors   []string
	warnings []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// dataset is one loaded CSV with its layout.
type dataset struct {
	layout   region.Layout
	location string
	header   []string
	rows     []domain.RawRow
}

func main() {
	regionKey := flag.String("region", region.DefaultKey, "region key to validate")
	file := flag.String("file", "", "CSV path or URL overriding the configured source (single-dataset regions only)")
	flag.Parse()

	os.Exit(run(context.Background(), *regionKey, *file, os.Stdout))
}

func run(ctx context.Context, regionKey, file string, out io.Writer) int {
	reg, ok := region.Resolve(regionKey)
	if !ok {
		fmt.Fprintf(out, "FATAL: unknown region %q (known: %v)\n", regionKey, region.Keys())
		return 1
	}
	if file != "" && reg.Composite() {
		fmt.Fprintf(out, "FATAL: -file cannot be used with composite region %q\n", reg.Key)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(out, "FATAL: load config: %v\n", err)
		return 1
	}
	locations := cfg.Sources
	if file != "" {
		locations = map[string][]string{reg.Datasets[0]: {file}}
	}
	logger := sharedobs.NewLogger("error", "text")
	loader := source.NewLoader(cfg.RemoteFetchTimeout, logger)

	fmt.Fprintf(out, "=== Site Data Validation: %s ===\n\n", reg.Name)

	sets, err := loadDatasets(ctx, loader, reg, locations)
	if err != nil {
		fmt.Fprintf(out, "FATAL: %v\n", err)
		return 1
	}

	var sites []domain.Site
	for _, ds := range sets {
		adapter, _ := region.Lookup(ds.layout.Dataset)
		for _, row := range ds.rows {
			sites = append(sites, adapter.Normalize(row))
		}
	}

	phases := []*phase{
		validateIngestion(sets),
		validateCoordinates(sets),
		validateSpecies(sets),
		validateFacets(domain.ExtractFilters(sites)),
	}

	return report(out, phases, sets)
}

func loadDatasets(ctx context.Context, loader *source.Loader, reg region.Region, locations map[string][]string) ([]dataset, error) {
	sets := make([]dataset, 0, len(reg.Datasets))
	for _, key := range reg.Datasets {
		layout, ok := region.LayoutOf(key)
		if !ok {
			return nil, fmt.Errorf("%s: no layout registered", key)
		}
		rc, loc, err := loader.Open(ctx, locations[key])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		rows, err := source.ReadRows(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%s (%s): %w", key, loc, err)
		}
		sets = append(sets, dataset{layout: layout, location: loc, header: headerOf(rows), rows: rows})
	}
	return sets, nil
}

// headerOf collects the column names seen across rows.
func headerOf(rows []domain.RawRow) []string {
	seen := map[string]bool{}
	for _, r := range rows {
		for k := range r {
			seen[k] = true
		}
	}
	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

func report(out io.Writer, phases []*phase, sets []dataset) int {
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	for _, ds := range sets {
		fmt.Fprintf(out, "Rows: %-16s %5d  (%s)\n", ds.layout.Dataset, len(ds.rows), ds.location)
	}

	for _, p := range phases {
		if p.passed() && len(p.warnings) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
		for _, w := range p.warnings {
			fmt.Fprintf(out, "  warn: %s\n", w)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

// ── Phase 1: Ingestion ──

func validateIngestion(sets []dataset) *phase {
	p := &phase{name: "Phase 1: Ingestion (rows and header)"}
	for _, ds := range sets {
		if len(ds.rows) == 0 {
			p.errorf("%s: no data rows", ds.layout.Dataset)
			continue
		}
		for _, col := range []string{ds.layout.CoordFirst, ds.layout.CoordSecond} {
			if !slices.Contains(ds.header, col) {
				p.errorf("%s: coordinate column %q missing from header", ds.layout.Dataset, col)
			}
		}
		for _, col := range ds.layout.Header {
			if !slices.Contains(ds.header, col) {
				p.warnf("%s: column %q not present", ds.layout.Dataset, col)
			}
		}
	}
	return p
}

// ── Phase 2: Coordinates ──
// Every converted position must fall inside its dataset's region envelope.

func validateCoordinates(sets []dataset) *phase {
	p := &phase{name: "Phase 2: Coordinates (conversion and bounds)"}
	for _, ds := range sets {
		reg, _ := region.Resolve(ds.layout.Dataset)
		adapter, _ := region.Lookup(ds.layout.Dataset)

		var with, without int
		for i, row := range ds.rows {
			site := adapter.Normalize(row)
			pos, ok := site.Position()
			if !ok {
				without++
				continue
			}
			with++
			if !reg.Bounds.Contains(pos) {
				p.errorf("%s row %d (%s): position %.5f,%.5f outside %s", ds.layout.Dataset, i+2, site.ID, pos.Lat, pos.Lon, reg.Name)
			}
		}
		if with == 0 && without > 0 {
			p.errorf("%s: no row has a usable %s coordinate", ds.layout.Dataset, ds.layout.Encoding)
		} else if without > 0 {
			p.warnf("%s: %d of %d rows without coordinates", ds.layout.Dataset, without, with+without)
		}
	}
	return p
}

// ── Phase 3: Species ──

func validateSpecies(sets []dataset) *phase {
	p := &phase{name: "Phase 3: Species (canonical coverage)"}
	for _, ds := range sets {
		if ds.layout.Species == "" {
			continue
		}
		unknown := map[string]int{}
		for _, row := range ds.rows {
			for _, s := range domain.SplitSpecies(row.Get(ds.layout.Species)) {
				if !domain.SpeciesKnown(s) {
					unknown[s]++
				}
			}
		}
		names := make([]string, 0, len(unknown))
		for s := range unknown {
			names = append(names, s)
		}
		sort.Strings(names)
		for _, s := range names {
			p.warnf("%s: species %q has no canonical name (%d rows)", ds.layout.Dataset, s, unknown[s])
		}
	}
	return p
}

// ── Phase 4: Facets ──

func validateFacets(f domain.FilterOptions) *phase {
	p := &phase{name: "Phase 4: Facets (sorted and unique)"}
	facets := []struct {
		name   string
		values []string
	}{
		{"species", f.Species},
		{"companies", f.Companies},
		{"waterTypes", f.WaterTypes},
		{"regions", f.Regions},
		{"siteTypes", f.SiteTypes},
	}
	for _, fc := range facets {
		if !sort.StringsAreSorted(fc.values) {
			p.errorf("%s: values not sorted", fc.name)
		}
		for i, v := range fc.values {
			if v == "" || v == "N/A" {
				p.errorf("%s: placeholder value %q", fc.name, v)
			}
			if i > 0 && fc.values[i-1] == v {
				p.errorf("%s: duplicate value %q", fc.name, v)
			}
		}
	}
	return p
}
