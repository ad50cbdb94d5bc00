// Package types provides type definitions for the CV document and the payloads exchanged with the AI and export endpoints.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TemplateName identifies a rendering template
type TemplateName string

// Template constants
const (
	TemplateClassic  TemplateName = "classic"
	TemplateModern   TemplateName = "modern"
	TemplateCreative TemplateName = "creative"
)

// SectionType tells consumers how to interpret a section's entries.
// The store treats it as metadata only.
type SectionType string

// Section type constants
const (
	SectionText   SectionType = "text"
	SectionList   SectionType = "list"
	SectionRich   SectionType = "rich"
	SectionCustom SectionType = "custom"
)

// SectionTypes lists every known section type in display order
var SectionTypes = []SectionType{SectionText, SectionList, SectionRich, SectionCustom}

// Valid reports whether t is one of the known section types
func (t SectionType) Valid() bool {
	for _, known := range SectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Theme holds presentation settings. Values are descriptive and never validated by the store.
type Theme struct {
	TemplateName   TemplateName `json:"templateName"`
	FontFamily     string       `json:"fontFamily"`
	FontSize       string       `json:"fontSize"`
	PrimaryColor   string       `json:"primaryColor"`
	BgColor        string       `json:"bgColor,omitempty"`
	TextColor      string       `json:"textColor,omitempty"`
	PageMargin     string       `json:"pageMargin"`
	SectionSpacing string       `json:"sectionSpacing"`
	LineSpacing    string       `json:"lineSpacing"`
	Pattern        string       `json:"pattern"`
}

// PersonalInfo holds contact fields and the free-text summary
type PersonalInfo struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary"`
}

// Section is a named, typed, ordered collection of entries
type Section struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Type    SectionType `json:"type"`
	Entries []Entry     `json:"entries"`
}

// CvData is the root document value.
// Values are shared structurally between document versions; treat the slices as read-only.
type CvData struct {
	ID           string       `json:"id"`
	Theme        Theme        `json:"theme"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Sections     []Section    `json:"sections"`
}

// SectionByID returns the section with the given id and its index, or -1 when absent
func (cv CvData) SectionByID(id string) (Section, int) {
	for i, section := range cv.Sections {
		if section.ID == id {
			return section, i
		}
	}
	return Section{}, -1
}

// CleanSection is a section without its session identifier
type CleanSection struct {
	Name    string      `json:"name"`
	Type    SectionType `json:"type"`
	Entries []Entry     `json:"entries"`
}

// CleanCv is the outbound view of a document: no document id, no theme, no section ids
type CleanCv struct {
	PersonalInfo PersonalInfo   `json:"personalInfo"`
	Sections     []CleanSection `json:"sections"`
}

// Clone returns a deep copy of the clean CV
func (cv CleanCv) Clone() CleanCv {
	sections := make([]CleanSection, len(cv.Sections))
	for i, section := range cv.Sections {
		section.Entries = CloneEntries(section.Entries)
		sections[i] = section
	}
	cv.Sections = sections
	return cv
}
