package server

import (
	"net/http"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// handleGetCv returns the current document
func (s *Server) handleGetCv(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, document.FromContext(r.Context()).Snapshot())
}

// handleGetCleanCv returns the clean projection of the current document
func (s *Server) handleGetCleanCv(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, document.Clean(document.FromContext(r.Context()).Snapshot()))
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var patch types.ThemePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.failWith(w, r, err)
		return
	}
	if err := types.Validate(&patch); err != nil {
		s.failWith(w, r, validationError(err))
		return
	}

	store := document.FromContext(r.Context())
	store.SetTheme(patch)
	s.jsonResponse(w, http.StatusOK, store.Snapshot().Theme)
}

func (s *Server) handleSetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	var patch types.PersonalInfoPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.failWith(w, r, err)
		return
	}

	store := document.FromContext(r.Context())
	store.SetPersonalInfo(patch)
	s.jsonResponse(w, http.StatusOK, store.Snapshot().PersonalInfo)
}

// handleAddSection appends a section and returns the id the store assigned
func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.failWith(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failWith(w, r, validationError(err))
		return
	}

	id := document.FromContext(r.Context()).AddSection(types.Section{
		ID:      req.ID,
		Name:    req.Name,
		Type:    req.Type,
		Entries: req.Entries,
	})
	s.jsonResponse(w, http.StatusCreated, types.SectionCreatedResponse{ID: id})
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req types.UpdateSectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.failWith(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failWith(w, r, validationError(err))
		return
	}

	section, ok := document.FromContext(r.Context()).UpdateSection(id, req.Name, req.Type)
	if !ok {
		s.failWith(w, r, &ErrSectionNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, section)
}

func (s *Server) handleUpdateSectionEntries(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req types.UpdateEntriesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.failWith(w, r, err)
		return
	}

	section, ok := document.FromContext(r.Context()).UpdateSectionEntries(id, req.Entries)
	if !ok {
		s.failWith(w, r, &ErrSectionNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, section)
}

// handleRemoveSection deletes a section. Removing an absent id is not an error.
func (s *Server) handleRemoveSection(w http.ResponseWriter, r *http.Request) {
	document.FromContext(r.Context()).RemoveSection(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleReorderSections moves one section. Out-of-range indices leave the order unchanged.
func (s *Server) handleReorderSections(w http.ResponseWriter, r *http.Request) {
	var req types.ReorderSectionsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.failWith(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failWith(w, r, validationError(err))
		return
	}

	store := document.FromContext(r.Context())
	store.ReorderSections(req.SourceIndex, req.DestinationIndex)
	s.jsonResponse(w, http.StatusOK, store.Snapshot().Sections)
}
