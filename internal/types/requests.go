// Package types provides type definitions for the CV document and the payloads exchanged with the AI and export endpoints.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a struct against its validate tags
func Validate(v any) error {
	return validate.Struct(v)
}

// CreateSectionRequest represents the request to append a section.
// ID is optional; the store assigns one when it is empty or already taken.
type CreateSectionRequest struct {
	ID      string      `json:"id,omitempty"`
	Name    string      `json:"name" validate:"required,max=100"`
	Type    SectionType `json:"type" validate:"required,oneof=text list rich custom"`
	Entries []Entry     `json:"entries,omitempty"`
}

// Validate validates the CreateSectionRequest using the validator.
func (r *CreateSectionRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateSectionRequest represents a rename/retype of a section
type UpdateSectionRequest struct {
	Name string      `json:"name" validate:"required,max=100"`
	Type SectionType `json:"type" validate:"required,oneof=text list rich custom"`
}

// Validate validates the UpdateSectionRequest using the validator.
func (r *UpdateSectionRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateEntriesRequest replaces the entries of a section
type UpdateEntriesRequest struct {
	Entries []Entry `json:"entries"`
}

// ReorderSectionsRequest moves a section from one position to another
type ReorderSectionsRequest struct {
	SourceIndex      int `json:"sourceIndex" validate:"min=0"`
	DestinationIndex int `json:"destinationIndex" validate:"min=0"`
}

// Validate validates the ReorderSectionsRequest using the validator.
func (r *ReorderSectionsRequest) Validate() error {
	return validate.Struct(r)
}

// SectionCreatedResponse is returned after a section was appended
type SectionCreatedResponse struct {
	ID string `json:"id"`
}

// ShareLinkResponse carries a derived share link
type ShareLinkResponse struct {
	URL string `json:"url"`
}
