package source

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
)

const sampleCSV = "Site ID,Site Name,Operator\n" +
	"FS1,\"Loch Ailort, North\",Mowi\n" +
	",,\n" +
	"\n" +
	"FS2,\"The \"\"Narrows\"\"\",\"Cooke Aquaculture Scotland, Ltd\"\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReadRows(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Loch Ailort, North", rows[0]["Site Name"])
	assert.Equal(t, `The "Narrows"`, rows[1]["Site Name"])
	assert.Equal(t, "Cooke Aquaculture Scotland, Ltd", rows[1]["Operator"])
}

func TestReadRows_StripsBOM(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("\ufeffSite ID,Species\nFS1,Salmon\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "FS1", rows[0]["Site ID"])
}

func TestReadRows_HeaderOnly(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("Site ID,Species\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRows_ParseFailure(t *testing.T) {
	cases := map[string]string{
		"empty":              "",
		"unterminated quote": "Site ID,Species\nFS1,\"Salmon\n",
		"stray quote":        "Site ID,Species\nFS1,Sal\"mon\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadRows(strings.NewReader(in))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrParseFailure)
		})
	}
}

func TestLoader_OpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sites.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	l := NewLoader(time.Second, discardLogger())
	rc, loc, err := l.Open(context.Background(), []string{filepath.Join(dir, "missing.csv"), "", path})
	require.NoError(t, err)
	defer rc.Close()

	assert.Equal(t, path, loc)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(body))
}

func TestLoader_OpenMissing(t *testing.T) {
	l := NewLoader(time.Second, discardLogger())
	_, _, err := l.Open(context.Background(), []string{filepath.Join(t.TempDir(), "nope.csv")})
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)

	_, _, err = l.Open(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestLoader_OpenRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sites.csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = io.WriteString(w, sampleCSV)
		case "/broken.csv":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := NewLoader(time.Second, discardLogger())

	t.Run("falls through 404", func(t *testing.T) {
		rc, loc, err := l.Open(context.Background(), []string{srv.URL + "/old.csv", srv.URL + "/sites.csv"})
		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, srv.URL+"/sites.csv", loc)
	})

	t.Run("all missing", func(t *testing.T) {
		_, _, err := l.Open(context.Background(), []string{srv.URL + "/old.csv"})
		assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		_, _, err := l.Open(context.Background(), []string{srv.URL + "/broken.csv", srv.URL + "/sites.csv"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrSourceNotFound)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := l.Open(ctx, []string{srv.URL + "/sites.csv"})
		require.Error(t, err)
	})
}

func TestCatalog(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "uk.csv")
	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(good, []byte(sampleCSV), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("a,b\n\"x,y\n"), 0o600))

	c := NewCatalog(NewLoader(time.Second, discardLogger()), map[string][]string{
		"uk":      {good},
		"iceland": {filepath.Join(dir, "iceland.csv")},
		"norway":  {bad},
	})
	ctx := context.Background()

	rows, loc, err := c.Load(ctx, "uk")
	require.NoError(t, err)
	assert.Equal(t, good, loc)
	assert.Len(t, rows, 2)

	_, _, err = c.Load(ctx, "iceland")
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)

	_, _, err = c.Load(ctx, "quebec")
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)

	_, _, err = c.Load(ctx, "norway")
	assert.ErrorIs(t, err, domain.ErrParseFailure)

	assert.NoError(t, c.Check(ctx, "uk"))
	assert.ErrorIs(t, c.Check(ctx, "iceland"), domain.ErrSourceNotFound)
}
