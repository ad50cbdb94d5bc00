package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/types"
)

// handleExport renders the posted clean CV, or the session document when the body is empty
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := types.ExportFormat(r.PathValue("format"))
	if !format.Valid() {
		s.failWith(w, r, &ErrValidation{Field: "format", Message: fmt.Sprintf("unknown export format %q", format)})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.failWith(w, r, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	var cv types.CleanCv
	if len(bytes.TrimSpace(body)) == 0 {
		cv = document.Clean(document.FromContext(r.Context()).Snapshot())
	} else if err := json.Unmarshal(body, &cv); err != nil {
		s.failWith(w, r, &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()})
		return
	}

	result, err := export.Export(format, cv)
	if err != nil {
		s.failWith(w, r, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		s.logger.Error().Err(err).Msg("error writing export")
	}
}
