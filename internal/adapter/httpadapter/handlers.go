package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/jszwec/csvutil"

	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
	"github.com/couchcryptid/aquaculture-sites-service/internal/region"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSites(w http.ResponseWriter, r *http.Request) {
	s.serveRegion(w, r, "/api/sites", r.URL.Query().Get("region"))
}

func (s *Server) handleFixedRegion(route, key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.serveRegion(w, r, route, key)
	}
}

// handleCanadianSites serves one province, or every province when the
// province parameter is absent or not Canadian.
func (s *Server) handleCanadianSites(w http.ResponseWriter, r *http.Request) {
	key := region.KeyCanada
	if p := r.URL.Query().Get("province"); p != "" {
		canada, _ := region.Resolve(region.KeyCanada)
		if reg, ok := region.Resolve(p); ok && slices.Contains(canada.Datasets, reg.Key) {
			key = reg.Key
		}
	}
	s.serveRegion(w, r, "/api/canadian-sites", key)
}

func (s *Server) serveRegion(w http.ResponseWriter, r *http.Request, route, key string) {
	if !allowGet(w, r) {
		s.record(route, http.StatusMethodNotAllowed)
		return
	}

	res, err := s.sites.Run(r.Context(), key)
	if err != nil {
		status := s.writeError(w, key, err)
		s.record(route, status)
		return
	}

	writeJSON(w, http.StatusOK, res)
	s.record(route, http.StatusOK)
	s.logger.Info("sites served",
		"route", route,
		"region", res.Region,
		"requested", key,
		"total", res.TotalCount,
		"valid", res.ValidCount,
	)
}

// handleExport writes the normalized sites of a region as CSV.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	const route = "/api/sites/export"
	if !allowGet(w, r) {
		s.record(route, http.StatusMethodNotAllowed)
		return
	}

	key := r.URL.Query().Get("region")
	res, err := s.sites.Run(r.Context(), key)
	if err != nil {
		s.record(route, s.writeError(w, key, err))
		return
	}

	body, err := csvutil.Marshal(res.Sites)
	if err != nil {
		s.logger.Error("encode csv export", "region", res.Region, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to encode sites"})
		s.record(route, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-sites.csv"`, res.Region))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
	s.record(route, http.StatusOK)
}

// writeError maps pipeline errors to a JSON error body and returns the status.
func (s *Server) writeError(w http.ResponseWriter, key string, err error) int {
	var (
		status int
		msg    string
	)
	switch {
	case errors.Is(err, domain.ErrSourceNotFound):
		status = http.StatusNotFound
		msg = "site data not found"
	case errors.Is(err, domain.ErrParseFailure):
		status = http.StatusInternalServerError
		msg = err.Error()
	default:
		status = http.StatusInternalServerError
		msg = "failed to load site data"
	}

	s.logger.Warn("sites request failed", "region", key, "status", status, "error", err)
	writeJSON(w, status, errorResponse{Error: msg})
	return status
}

func (s *Server) record(route string, status int) {
	s.metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // response already committed
}
