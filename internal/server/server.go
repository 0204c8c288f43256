// Package server exposes the scan pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/leadforge/leadscan-cli/internal/export"
	"github.com/leadforge/leadscan-cli/internal/industry"
	"github.com/leadforge/leadscan-cli/internal/model"
	"github.com/leadforge/leadscan-cli/internal/sample"
)

// Scanner is the pipeline surface the API needs. *pipeline.Pipeline
// satisfies it; tests substitute a stub.
type Scanner interface {
	Scan(ctx context.Context, candidates []model.Candidate) []model.Lead
	ScanOne(ctx context.Context, c model.Candidate) model.Lead
	Finalize(leads []model.Lead, maxLeads int) []model.Lead
}

// Server wires the scan pipeline and demo generator behind an HTTP API.
type Server struct {
	pipeline  Scanner
	generator *sample.Generator
	maxLeads  int
	demoCount int
}

// New creates a Server. maxLeads caps batch responses; demoCount is how
// many placeholder leads pad an industry scan.
func New(p Scanner, g *sample.Generator, maxLeads, demoCount int) *Server {
	return &Server{pipeline: p, generator: g, maxLeads: maxLeads, demoCount: demoCount}
}

// Router builds the chi router with CORS and logging middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/scan-industry", s.handleScanIndustry)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/export-csv", s.handleExportCSV)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"service":    "leadscan",
		"industries": industry.Keys(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

type scanIndustryRequest struct {
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	CustomQuery string `json:"customQuery"`
	MaxLeads    int    `json:"maxLeads"`
}

type scanInfo struct {
	ScanID     string `json:"scanId"`
	Industry   string `json:"industry"`
	Location   string `json:"location"`
	Query      string `json:"query"`
	Timestamp  string `json:"timestamp"`
	LeadsFound int    `json:"leadsFound"`
}

func (s *Server) handleScanIndustry(w http.ResponseWriter, r *http.Request) {
	var req scanIndustryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Location == "" {
		writeError(w, http.StatusBadRequest, "location is required")
		return
	}
	maxLeads := req.MaxLeads
	if maxLeads <= 0 || maxLeads > s.maxLeads {
		maxLeads = s.maxLeads
	}

	// An unknown industry still succeeds: the batch is demo-only.
	cfg, known := industry.Lookup(req.Industry)

	query := req.CustomQuery
	if query == "" {
		query = strings.ReplaceAll(cfg.SearchQuery, "{location}", req.Location)
	}

	var candidates []model.Candidate
	if known {
		candidates = make([]model.Candidate, 0, len(cfg.RealWebsites))
		for _, site := range cfg.RealWebsites {
			candidates = append(candidates, model.Candidate{
				Name:     site.Name,
				URL:      site.URL,
				Location: req.Location,
				Industry: req.Industry,
			})
		}
	}

	zap.L().Info("server: industry scan",
		zap.String("industry", req.Industry),
		zap.String("location", req.Location),
		zap.Int("candidates", len(candidates)))

	leads := s.pipeline.Scan(r.Context(), candidates)
	leads = append(leads, s.generator.Generate(req.Industry, req.Location, s.demoCount)...)
	leads = s.pipeline.Finalize(leads, maxLeads)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"leads":   leads,
		"stats":   model.ComputeStats(leads),
		"scanInfo": scanInfo{
			ScanID:     uuid.New().String(),
			Industry:   req.Industry,
			Location:   req.Location,
			Query:      query,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			LeadsFound: len(leads),
		},
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL  string `json:"url"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	lead := s.pipeline.ScanOne(r.Context(), model.Candidate{Name: req.Name, URL: req.URL})
	if lead.FetchError != "" {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"error":   lead.FetchError,
			"lead":    lead,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"lead":    lead,
	})
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Leads []model.Lead `json:"leads"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "leads array is required")
		return
	}
	if req.Leads == nil {
		writeError(w, http.StatusBadRequest, "leads array is required")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="leads.csv"`)
	if err := export.WriteCSV(w, req.Leads); err != nil {
		zap.L().Error("server: csv export failed", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}
