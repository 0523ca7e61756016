// Package api exposes composition analysis over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kernel-kun/crossplane-utils/internal/analyzer"
	"github.com/kernel-kun/crossplane-utils/internal/logger"
)

// Server represents the API server
type Server struct {
	router *mux.Router
}

// NewServer creates a new API server instance
func NewServer() *Server {
	s := &Server{
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

// routes sets up the API routes
func (s *Server) routes() {
	s.router.HandleFunc("/api/v1/health", s.healthCheck).Methods("GET")
	s.router.HandleFunc("/api/v1/analyze", s.analyze).Methods("POST")
}

// Start starts the API server
func (s *Server) Start(addr string) error {
	logger.Info().Str("addr", addr).Msg("starting API server")
	return http.ListenAndServe(addr, s.router)
}

// healthCheck handles the health check endpoint
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// analyzeRequest is the payload of the analyze endpoint
type analyzeRequest struct {
	// Source is a directory, YAML file or remote URL to analyze
	Source string `json:"source"`
	// Format is the console output format included in the response (optional)
	Format string `json:"format,omitempty"`
}

// analyze runs a composition extraction for the requested source. The xlsx
// export is skipped; callers get the structured result directly.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return
	}
	if req.Source == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "source is required",
		})
		return
	}

	opts := analyzer.DefaultOptions()
	opts.SkipReport = true
	if req.Format != "" {
		opts.OutputFormat = req.Format
	}

	result, err := analyzer.New(opts).Analyze(r.Context(), req.Source)
	if err != nil {
		logger.Error().Err(err).Str("source", req.Source).Msg("analysis failed")
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": err.Error(),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// writeJSON encodes v to the response with the given status code
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
