package pipeline_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
	"github.com/couchcryptid/aquaculture-sites-service/internal/pipeline"
	"github.com/couchcryptid/aquaculture-sites-service/internal/source"
)

func fixtureCatalog(t *testing.T, sources map[string]string) *source.Catalog {
	t.Helper()
	locs := make(map[string][]string, len(sources))
	for ds, file := range sources {
		locs[ds] = []string{filepath.Join("testdata", "missing_"+file), filepath.Join("testdata", file)}
	}
	return source.NewCatalog(source.NewLoader(time.Second, discardLogger()), locs)
}

func TestPipeline_UKFixture(t *testing.T) {
	cat := fixtureCatalog(t, map[string]string{"uk": "uk_sites.csv"})
	p := newPipeline(cat, newTestMetrics())

	res, err := p.Run(context.Background(), "uk")
	require.NoError(t, err)

	require.Equal(t, 3, res.TotalCount)
	assert.Equal(t, 2, res.ValidCount)
	assert.Equal(t, []string{filepath.Join("testdata", "uk_sites.csv")}, res.Sources)

	byID := map[string]domain.Site{}
	for _, s := range res.Sites {
		byID[s.ID] = s
	}
	assert.Nil(t, byID["FS0002"].Latitude, "missing northing must not yield a position")
	assert.Equal(t, "Basta Voe, North", byID["SS0003"].Name)
	assert.Equal(t, []string{"Blue Mussel", "Pacific Oyster"}, byID["SS0003"].SpeciesList)
	assert.NotContains(t, byID["SS0003"].HoverText, "Water Type")

	shetland, ok := byID["SS0003"].Position()
	require.True(t, ok)
	assert.InDelta(t, 60.5, shetland.Lat, 0.3)

	want := domain.FilterOptions{
		Species:    []string{"Atlantic Salmon", "Blue Mussel", "Pacific Oyster"},
		Companies:  []string{"Bakkafrost Scotland", "Mowi Scotland", "Shetland Mussels"},
		WaterTypes: []string{"Seawater"},
		Regions:    []string{"Highland", "Shetland"},
		SiteTypes:  []string{"Finfish", "Shellfish"},
	}
	if diff := cmp.Diff(want, res.Filters); diff != "" {
		t.Fatalf("filters mismatch (-want +got):\n%s", diff)
	}
}

func TestPipeline_CanadaFixtures(t *testing.T) {
	cat := fixtureCatalog(t, map[string]string{
		"britishcolumbia": "britishcolumbia_sites.csv",
		"newfoundland":    "newfoundland_sites.csv",
	})
	p := newPipeline(cat, newTestMetrics())

	res, err := p.Run(context.Background(), "canada")
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalCount)
	assert.Equal(t, 2, res.ValidCount)
	assert.Equal(t, []string{"British Columbia", "Newfoundland and Labrador"}, res.Filters.Regions)
	assert.Equal(t, []string{"Cermaq Canada", "Cooke Aquaculture, Inc.", "Mowi Canada West"}, res.Filters.Companies)
	assert.Equal(t, []string{"Atlantic Salmon", "Rainbow Trout"}, res.Filters.Species)
	assert.Equal(t, []string{"Seawater"}, res.Filters.WaterTypes)

	nl := res.Sites[2]
	assert.Equal(t, "NL-881", nl.ID)
	require.NotNil(t, nl.Latitude)
	assert.InDelta(t, 47.69, *nl.Latitude, 1e-6)
	assert.InDelta(t, -55.91, *nl.Longitude, 1e-6)

	require.NotNil(t, res.Bounds)
	assert.InDelta(t, -126.6531, res.Bounds.SouthWest.Lon, 1e-9)
	assert.InDelta(t, 47.69, res.Bounds.SouthWest.Lat, 1e-6)
}

func TestPipeline_BrokenFixture(t *testing.T) {
	cat := fixtureCatalog(t, map[string]string{"iceland": "broken_sites.csv"})
	p := newPipeline(cat, newTestMetrics())

	_, err := p.Run(context.Background(), "iceland")
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}

var _ pipeline.DatasetLoader = (*source.Catalog)(nil)
