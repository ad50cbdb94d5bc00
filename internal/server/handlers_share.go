package server

import (
	"net/http"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// handleShareLink derives the read-only link for the session document
func (s *Server) handleShareLink(w http.ResponseWriter, r *http.Request) {
	id := document.FromContext(r.Context()).Snapshot().ID
	s.jsonResponse(w, http.StatusOK, types.ShareLinkResponse{URL: document.ShareLink(s.publicURL, id)})
}

// handleSharedCv serves the session document when the token matches its id
func (s *Server) handleSharedCv(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	cv := document.FromContext(r.Context()).Snapshot()
	if token == "" || token != cv.ID {
		s.failWith(w, r, &ErrShareNotFound{Token: token})
		return
	}
	s.jsonResponse(w, http.StatusOK, cv)
}
