// Package server provides the HTTP REST API for the CV builder.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-builder/internal/assistant"
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/llm"
	"github.com/jonathan/cv-builder/internal/server/ratelimit"
)

// maxBodyBytes bounds every request body
const maxBodyBytes = 1 << 20

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	handler         http.Handler
	store           *document.Store
	publicURL       *url.URL
	rateLimiter     *ratelimit.Limiter
	logger          zerolog.Logger
	shutdownTimeout time.Duration

	reviewer   *assistant.Reviewer
	adapter    *assistant.Adapter
	analyzer   *assistant.Analyzer
	translator *assistant.Translator
}

// Config holds server configuration
type Config struct {
	Port            int
	PublicURL       *url.URL // origin used in share links; nil yields relative links
	ShutdownTimeout time.Duration
	RateLimit       *ratelimit.Config
	Logger          zerolog.Logger
	Registry        *llm.Registry
	// Store is the session document. A fresh seeded store is created when nil.
	Store *document.Store
}

// New creates a new server instance
func New(cfg Config) *Server {
	store := cfg.Store
	if store == nil {
		store = document.NewSessionStore(document.WithLogger(cfg.Logger))
	}
	registry := cfg.Registry
	if registry == nil {
		registry = llm.NewRegistry()
	}
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}

	s := &Server{
		store:           store,
		publicURL:       cfg.PublicURL,
		rateLimiter:     ratelimit.NewLimiter(cfg.RateLimit),
		logger:          cfg.Logger,
		shutdownTimeout: shutdownTimeout,
		reviewer:        assistant.NewReviewer(registry),
		adapter:         assistant.NewAdapter(),
		analyzer:        assistant.NewAnalyzer(registry),
		translator:      assistant.NewTranslator(registry),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Document endpoints
	mux.HandleFunc("GET /api/cv", s.handleGetCv)
	mux.HandleFunc("GET /api/cv/clean", s.handleGetCleanCv)
	mux.HandleFunc("PATCH /api/cv/theme", s.handleSetTheme)
	mux.HandleFunc("PATCH /api/cv/personal-info", s.handleSetPersonalInfo)
	mux.HandleFunc("POST /api/cv/sections", s.handleAddSection)
	mux.HandleFunc("POST /api/cv/sections/reorder", s.handleReorderSections)
	mux.HandleFunc("PUT /api/cv/sections/{id}", s.handleUpdateSection)
	mux.HandleFunc("PUT /api/cv/sections/{id}/entries", s.handleUpdateSectionEntries)
	mux.HandleFunc("DELETE /api/cv/sections/{id}", s.handleRemoveSection)

	// Share endpoints
	mux.HandleFunc("GET /api/cv/share", s.handleShareLink)
	mux.HandleFunc("GET /share/{token}", s.handleSharedCv)

	// AI endpoints
	mux.HandleFunc("POST /api/ai/review-section", s.handleReviewSection)
	mux.HandleFunc("POST /api/ai/adapt", s.handleAdapt)
	mux.HandleFunc("POST /api/ai/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/ai/translate", s.handleTranslate)

	// Export endpoint
	mux.HandleFunc("POST /api/export/{format}", s.handleExport)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(s.withSession(mux))))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Store returns the session document store
func (s *Server) Store() *document.Store {
	return s.store
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("server starting")
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		defer s.rateLimiter.Stop()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.logger.Info().Msg("server stopped")
		return nil
	})

	return g.Wait()
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("error encoding JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failWith maps err to its status code and writes it
func (s *Server) failWith(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	s.errorResponse(w, status, err.Error())
}

// decodeJSON decodes a bounded request body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	return nil
}
