// Package document owns the CV document: the action set, the pure reducer that applies it,
// the store that serializes dispatches, and the derived projections consumers read.
package document

import "github.com/jonathan/cv-builder/internal/types"

// Action is a single document mutation. The set is closed: only the types in this file implement it.
type Action interface {
	// Name returns a stable identifier used in logs
	Name() string
	isAction()
}

// SetTheme merges a partial theme into the current theme
type SetTheme struct {
	Patch types.ThemePatch
}

// SetPersonalInfo merges partial personal info into the current record
type SetPersonalInfo struct {
	Patch types.PersonalInfoPatch
}

// AddSection appends a fully formed section
type AddSection struct {
	Section types.Section
}

// RemoveSection removes the section with the given id, if present
type RemoveSection struct {
	ID string
}

// UpdateSectionEntries replaces the entries of a section
type UpdateSectionEntries struct {
	ID      string
	Entries []types.Entry
}

// UpdateSection replaces the name and type of a section, leaving entries untouched
type UpdateSection struct {
	ID          string
	SectionName string
	Type        types.SectionType
}

// ReorderSections moves the section at SourceIndex to DestinationIndex.
// DestinationIndex is interpreted against the sequence after the section was removed.
type ReorderSections struct {
	SourceIndex      int
	DestinationIndex int
}

func (SetTheme) Name() string             { return "SET_THEME" }
func (SetPersonalInfo) Name() string      { return "SET_PERSONAL_INFO" }
func (AddSection) Name() string           { return "ADD_SECTION" }
func (RemoveSection) Name() string        { return "REMOVE_SECTION" }
func (UpdateSectionEntries) Name() string { return "UPDATE_SECTION_ENTRIES" }
func (UpdateSection) Name() string        { return "UPDATE_SECTION" }
func (ReorderSections) Name() string      { return "REORDER_SECTIONS" }

func (SetTheme) isAction()             {}
func (SetPersonalInfo) isAction()      {}
func (AddSection) isAction()           {}
func (RemoveSection) isAction()        {}
func (UpdateSectionEntries) isAction() {}
func (UpdateSection) isAction()        {}
func (ReorderSections) isAction()      {}
