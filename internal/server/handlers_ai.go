package server

import (
	"net/http"

	"github.com/jonathan/cv-builder/internal/logger"
	"github.com/jonathan/cv-builder/internal/types"
)

// handleReviewSection reviews a summary or the rendered entries of a section
func (s *Server) handleReviewSection(w http.ResponseWriter, r *http.Request) {
	var req types.ReviewRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	resp, err := s.reviewer.Review(req)
	if err != nil {
		s.failWith(w, r, err)
		return
	}
	logger.Ctx(r.Context()).Debug().
		Str("section_type", req.SectionType).
		Int("issues", len(resp.Issues)).
		Int("suggestions", len(resp.ImprovedDescriptions)).
		Msg("review completed")
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleAdapt(w http.ResponseWriter, r *http.Request) {
	var req types.AdaptRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	s.jsonResponse(w, http.StatusOK, s.adapter.Adapt(req))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	result, err := s.analyzer.Analyze(req)
	if err != nil {
		s.failWith(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req types.TranslateRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	result, err := s.translator.Translate(req)
	if err != nil {
		s.failWith(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// decodeValid decodes and validates a request body, writing the error response on failure
func (s *Server) decodeValid(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := decodeJSON(w, r, v); err != nil {
		s.failWith(w, r, err)
		return false
	}
	if err := types.Validate(v); err != nil {
		s.failWith(w, r, validationError(err))
		return false
	}
	return true
}
