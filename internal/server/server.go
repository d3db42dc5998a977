// Package server exposes the mock façades over HTTP for E2E harnesses and
// local dashboards. The façades themselves stay transport-free; this layer is
// plain JSON glue.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/ideaforge/analysis-simulator/internal/logger"
	"github.com/ideaforge/analysis-simulator/internal/scenario"
	"github.com/ideaforge/analysis-simulator/internal/service"
	"github.com/ideaforge/analysis-simulator/internal/telemetry"
)

// Server wires the two façades into a chi router.
type Server struct {
	analysis     *service.MockAIAnalysisService
	frankenstein *service.MockFrankensteinService
	httpServer   *http.Server
}

func New(addr string, analysis *service.MockAIAnalysisService, frankenstein *service.MockFrankensteinService) *Server {
	s := &Server{analysis: analysis, frankenstein: frankenstein}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router builds the route table. Exposed separately so tests can drive it with
// httptest without binding a port.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogging)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/analysis", func(r chi.Router) {
			r.Post("/idea", s.handleAnalyzeIdea)
			r.Post("/hackathon", s.handleAnalyzeHackathon)
			r.Post("/improvements", s.handleSuggestImprovements)
			r.Post("/compare", s.handleCompareIdeas)
			r.Get("/health", s.handleAnalysisHealth)
		})
		r.Route("/frankenstein", func(r chi.Router) {
			r.Post("/generate", s.handleGenerateMashup)
			r.Get("/health", s.handleFrankensteinHealth)
		})
		r.Get("/requests", s.handleGetRequests)
		r.Delete("/requests", s.handleClearRequests)
		r.Get("/metrics", s.handleGetMetrics)
		r.Delete("/metrics", s.handleClearMetrics)
	})

	return r
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	logger.Log.Infow("[http] starting server", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		logger.Log.Info("[http] server stopped gracefully")
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	logger.Log.Infow("[http] graceful shutdown", "addr", s.httpServer.Addr)
	return s.httpServer.Shutdown(ctx)
}

// ---- handlers ----

func (s *Server) handleAnalyzeIdea(w http.ResponseWriter, r *http.Request) {
	var req service.AnalyzeIdeaRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, s.analysis.AnalyzeIdea(r.Context(), req))
}

func (s *Server) handleAnalyzeHackathon(w http.ResponseWriter, r *http.Request) {
	var req service.AnalyzeHackathonRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, s.analysis.AnalyzeHackathonProject(r.Context(), req))
}

func (s *Server) handleSuggestImprovements(w http.ResponseWriter, r *http.Request) {
	var req service.SuggestImprovementsRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, s.analysis.SuggestImprovements(r.Context(), req))
}

func (s *Server) handleCompareIdeas(w http.ResponseWriter, r *http.Request) {
	var req service.CompareIdeasRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, s.analysis.CompareIdeas(r.Context(), req))
}

func (s *Server) handleGenerateMashup(w http.ResponseWriter, r *http.Request) {
	var req service.GenerateMashupRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, s.frankenstein.GenerateMashup(r.Context(), req))
}

func (s *Server) handleAnalysisHealth(w http.ResponseWriter, r *http.Request) {
	writeHealth(w, s.analysis.HealthCheck(r.Context()))
}

func (s *Server) handleFrankensteinHealth(w http.ResponseWriter, r *http.Request) {
	writeHealth(w, s.frankenstein.HealthCheck(r.Context()))
}

// requestsSnapshot groups each façade's private log for inspection.
type requestsSnapshot struct {
	Analysis     []telemetry.LogEntry `json:"analysis"`
	Frankenstein []telemetry.LogEntry `json:"frankenstein"`
}

func (s *Server) handleGetRequests(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, requestsSnapshot{
		Analysis:     s.analysis.RequestLogs(),
		Frankenstein: s.frankenstein.RequestLogs(),
	})
}

func (s *Server) handleClearRequests(w http.ResponseWriter, _ *http.Request) {
	s.analysis.ClearRequestLogs()
	s.frankenstein.ClearRequestLogs()
	w.WriteHeader(http.StatusNoContent)
}

type metricsSnapshot struct {
	Analysis     map[string]telemetry.Metrics `json:"analysis"`
	Frankenstein map[string]telemetry.Metrics `json:"frankenstein"`
}

func (s *Server) handleGetMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, metricsSnapshot{
		Analysis:     s.analysis.AllMetrics(),
		Frankenstein: s.frankenstein.AllMetrics(),
	})
}

func (s *Server) handleClearMetrics(w http.ResponseWriter, _ *http.Request) {
	s.analysis.ClearPerformanceMetrics()
	s.frankenstein.ClearPerformanceMetrics()
	w.WriteHeader(http.StatusNoContent)
}

// ---- helpers ----

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return false
	}
	return true
}

// writeResult maps the wrapper onto HTTP: 200 for success, 206 for a partial
// payload, the scenario's own status for faults.
func writeResult[T any](w http.ResponseWriter, res service.Result[T]) {
	status := http.StatusOK
	switch {
	case !res.Success:
		status = res.Error.HTTPStatus
	case res.Scenario == scenario.PartialResponse:
		status = http.StatusPartialContent
	}
	writeJSON(w, status, res)
}

func writeHealth(w http.ResponseWriter, hs service.HealthStatus) {
	status := http.StatusOK
	if hs.Status == service.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, hs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("[http] encode response", "err", err)
	}
}

// requestLogging tags each request with an ID and logs its outcome.
func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("X-Request-Id", id)

		next.ServeHTTP(ww, r)

		logger.Log.Infow("[http] request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"durationMs", time.Since(start).Milliseconds(),
		)
	})
}
