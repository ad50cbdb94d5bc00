package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/llm"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrSectionNotFound indicates the addressed section does not exist
type ErrSectionNotFound struct {
	ID string
}

func (e *ErrSectionNotFound) Error() string {
	return fmt.Sprintf("section not found: %s", e.ID)
}

// ErrShareNotFound indicates a share token that does not match the session document
type ErrShareNotFound struct {
	Token string
}

func (e *ErrShareNotFound) Error() string {
	return fmt.Sprintf("share link not found: %s", e.Token)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		fieldErrs     validator.ValidationErrors
		unknownSvc    *llm.UnknownServiceError
		sectionErr    *ErrSectionNotFound
		shareErr      *ErrShareNotFound
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &fieldErrs), errors.As(err, &unknownSvc):
		return http.StatusBadRequest
	case errors.As(err, &sectionErr), errors.As(err, &shareErr):
		return http.StatusNotFound
	case errors.Is(err, export.ErrUnsupportedFormat):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// validationError turns validator field errors into a single ErrValidation
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			messages = append(messages, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return &ErrValidation{Field: strings.Join(fields, ","), Message: strings.Join(messages, "; ")}
}
