package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/aquaculture-sites-service/internal/observability"
	"github.com/couchcryptid/aquaculture-sites-service/internal/pipeline"
	"github.com/couchcryptid/aquaculture-sites-service/internal/region"
)

// SiteService builds the normalized site collection for a region.
type SiteService interface {
	sharedobs.ReadinessChecker
	Run(ctx context.Context, region string) (pipeline.Result, error)
}

// Server exposes the site API alongside health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	sites      SiteService
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the /api routes plus /healthz, /readyz, and /metrics.
func NewServer(addr string, sites SiteService, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		sites:   sites,
		metrics: metrics,
		logger:  logger,
	}

	// API routes accept any method so non-GET requests get a JSON 405.
	mux.HandleFunc("/api/sites", s.handleSites)
	mux.HandleFunc("/api/sites/export", s.handleExport)
	mux.HandleFunc("/api/iceland-sites", s.handleFixedRegion("/api/iceland-sites", region.KeyIceland))
	mux.HandleFunc("/api/norwegian-sites", s.handleFixedRegion("/api/norwegian-sites", region.KeyNorway))
	mux.HandleFunc("/api/canadian-sites", s.handleCanadianSites)

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(sites))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
