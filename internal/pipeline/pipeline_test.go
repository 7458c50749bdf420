package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
	"github.com/couchcryptid/aquaculture-sites-service/internal/observability"
	"github.com/couchcryptid/aquaculture-sites-service/internal/pipeline"
)

// --- mocks ---

type mockLoader struct {
	rows  map[string][]domain.RawRow
	errs  map[string]error
	calls []string
}

func (m *mockLoader) Load(_ context.Context, dataset string) ([]domain.RawRow, string, error) {
	m.calls = append(m.calls, dataset)
	if err := m.errs[dataset]; err != nil {
		return nil, "", err
	}
	rows, ok := m.rows[dataset]
	if !ok {
		return nil, "", domain.ErrSourceNotFound
	}
	return rows, "mem://" + dataset, nil
}

func (m *mockLoader) Check(_ context.Context, dataset string) error {
	if _, ok := m.rows[dataset]; !ok {
		return domain.ErrSourceNotFound
	}
	return nil
}

func newTestMetrics() *observability.Metrics {
	return observability.NewMetricsForTesting()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPipeline(l pipeline.DatasetLoader, m *observability.Metrics) *pipeline.Pipeline {
	return pipeline.New(l, pipeline.NewTransformer(discardLogger()), discardLogger(), m)
}

var ukRows = []domain.RawRow{
	{"Site ID": "FS1", "Site Name": "Loch Ailort", "Operator": "Mowi", "Species": "Salmon", "Easting": "175500", "Northing": "781500"},
	{"Site ID": "FS2", "Site Name": "Loch Duart", "Operator": "Bakkafrost", "Species": "Salmo salar", "Easting": "220000", "Northing": ""},
}

// --- tests ---

func TestPipeline_Run_UK(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC))
	domain.SetClock(fake)
	t.Cleanup(func() { domain.SetClock(nil) })

	loader := &mockLoader{rows: map[string][]domain.RawRow{"uk": ukRows}}
	metrics := newTestMetrics()
	p := newPipeline(loader, metrics)

	res, err := p.Run(context.Background(), "uk")
	require.NoError(t, err)

	assert.Equal(t, "uk", res.Region)
	assert.False(t, res.Fallback)
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, 1, res.ValidCount)
	require.Len(t, res.Sites, 2)
	assert.NotNil(t, res.Sites[0].Latitude)
	assert.Nil(t, res.Sites[1].Latitude)
	assert.Nil(t, res.Sites[1].Longitude)
	assert.Equal(t, []string{"Bakkafrost", "Mowi"}, res.Filters.Companies)
	assert.Equal(t, []string{"Atlantic Salmon"}, res.Filters.Species)
	assert.Equal(t, domain.ColorForIndex(1), res.Sites[0].Color)
	assert.Equal(t, domain.ColorForIndex(0), res.Sites[1].Color)
	require.NotNil(t, res.Center)
	assert.Equal(t, fake.Now(), res.GeneratedAt)
	assert.Equal(t, []string{"mem://uk"}, res.Sources)

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.RowsIngested.WithLabelValues("uk")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.SitesWithoutCoordinates.WithLabelValues("uk")), 0)
}

func TestPipeline_Run_UnknownRegionFallsBack(t *testing.T) {
	loader := &mockLoader{rows: map[string][]domain.RawRow{"uk": ukRows}}
	p := newPipeline(loader, newTestMetrics())

	res, err := p.Run(context.Background(), "atlantis")
	require.NoError(t, err)
	assert.Equal(t, "uk", res.Region)
	assert.True(t, res.Fallback)
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, []string{"uk"}, loader.calls)
}

func TestPipeline_Run_Errors(t *testing.T) {
	cases := []struct {
		name   string
		loader *mockLoader
		want   error
		kind   string
	}{
		{
			name:   "source missing",
			loader: &mockLoader{},
			want:   domain.ErrSourceNotFound,
			kind:   "not_found",
		},
		{
			name:   "parse failure",
			loader: &mockLoader{errs: map[string]error{"uk": errors.Join(domain.ErrParseFailure, errors.New("record 3"))}},
			want:   domain.ErrParseFailure,
			kind:   "parse",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			metrics := newTestMetrics()
			p := newPipeline(tc.loader, metrics)

			_, err := p.Run(context.Background(), "uk")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.InDelta(t, 1, testutil.ToFloat64(metrics.PipelineErrors.WithLabelValues(tc.kind)), 0)
		})
	}
}

func TestPipeline_Run_CompositeSkipsMissingMembers(t *testing.T) {
	loader := &mockLoader{rows: map[string][]domain.RawRow{
		"novascotia": {{"Site #": "1205", "Lease Holder": "Acadian Seaplants", "Lat": "44.6", "Long": "-65.7"}},
		"quebec":     {{"Numéro du site": "QC-1", "Exploitant": "Moules de Gaspé", "Latitude": "48.83", "Longitude": "-64.48"}},
	}}
	p := newPipeline(loader, newTestMetrics())

	res, err := p.Run(context.Background(), "canada")
	require.NoError(t, err)
	assert.Equal(t, "canada", res.Region)
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, []string{"Nova Scotia", "Quebec"}, res.Filters.Regions)
	assert.Len(t, loader.calls, 5)
}

func TestPipeline_Run_CompositeAllMissing(t *testing.T) {
	p := newPipeline(&mockLoader{}, newTestMetrics())

	_, err := p.Run(context.Background(), "canada")
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestPipeline_Run_CompositeParseFailureIsFatal(t *testing.T) {
	loader := &mockLoader{
		rows: map[string][]domain.RawRow{"quebec": {{"Numéro du site": "QC-1"}}},
		errs: map[string]error{"newbrunswick": domain.ErrParseFailure},
	}
	p := newPipeline(loader, newTestMetrics())

	_, err := p.Run(context.Background(), "canada")
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}

func TestPipeline_Run_EmptyDataset(t *testing.T) {
	loader := &mockLoader{rows: map[string][]domain.RawRow{"iceland": nil}}
	p := newPipeline(loader, newTestMetrics())

	res, err := p.Run(context.Background(), "iceland")
	require.NoError(t, err)
	assert.NotNil(t, res.Sites)
	assert.Zero(t, res.TotalCount)
	assert.Nil(t, res.Center)
	assert.NotNil(t, res.Filters.Companies)
}

func TestPipeline_Run_CancelledContext(t *testing.T) {
	loader := &mockLoader{rows: map[string][]domain.RawRow{"uk": ukRows}}
	p := newPipeline(loader, newTestMetrics())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, "uk")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, loader.calls)
}

func TestPipeline_CheckReadiness(t *testing.T) {
	ready := newPipeline(&mockLoader{rows: map[string][]domain.RawRow{"uk": nil}}, newTestMetrics())
	assert.NoError(t, ready.CheckReadiness(context.Background()))

	notReady := newPipeline(&mockLoader{}, newTestMetrics())
	err := notReady.CheckReadiness(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestTransformer_PreservesOrder(t *testing.T) {
	tr := pipeline.NewTransformer(discardLogger())
	sites, missing, err := tr.Transform("uk", ukRows)
	require.NoError(t, err)
	assert.Equal(t, 1, missing)
	require.Len(t, sites, 2)
	assert.Equal(t, "FS1", sites[0].ID)
	assert.Equal(t, "FS2", sites[1].ID)

	_, _, err = tr.Transform("atlantis", ukRows)
	assert.Error(t, err)
}
