// Package server exposes the generation pipeline over a local HTTP API
// for interactive use.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/il-an/city-generator/pkg/citygen"
	"github.com/il-an/city-generator/pkg/config"
	"github.com/il-an/city-generator/pkg/layout"
	"github.com/il-an/city-generator/pkg/validation"
)

// Server is the local development server for interactive generation.
type Server struct {
	outputDir string
	port      int
}

// New creates a server writing artifacts into the given directory.
func New(outputDir string, port int) *Server {
	return &Server{outputDir: outputDir, port: port}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/defaults", s.handleDefaults)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("citygen server starting on http://localhost%s", addr)
	log.Printf("Output directory: %s", s.outputDir)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDefaults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, config.Default())
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	cfg, ok := decodeConfig(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, validation.ValidateConfig(cfg))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	cfg, ok := decodeConfig(w, r)
	if !ok {
		return
	}

	result, err := citygen.Run(r.Context(), cfg, s.outputDir)
	if err != nil {
		writeJSON(w, statusForError(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// decodeConfig parses the request body over the default config, so partial
// bodies behave like partial YAML files.
func decodeConfig(w http.ResponseWriter, r *http.Request) (config.GenerationConfig, bool) {
	cfg := config.Default()
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("parsing config: %v", err)})
		return cfg, false
	}
	return cfg, true
}

func statusForError(err error) int {
	var cerr *config.Error
	var ise *layout.InsufficientSpaceError
	switch {
	case errors.As(err, &cerr):
		return http.StatusBadRequest
	case errors.As(err, &ise):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
