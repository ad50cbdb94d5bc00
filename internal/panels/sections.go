package panels

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// SectionPanel manages the document's sections through store operations
type SectionPanel struct {
	store *document.Store
}

// NewSectionPanel creates a section panel
func NewSectionPanel(store *document.Store) *SectionPanel {
	return &SectionPanel{store: store}
}

// Sections returns the sections in render order
func (p *SectionPanel) Sections() []types.Section {
	return p.store.Snapshot().Sections
}

// Add appends an empty section and returns its id. An empty type defaults to text.
func (p *SectionPanel) Add(name string, sectionType types.SectionType) (string, error) {
	name, sectionType, err := checkSection(name, sectionType)
	if err != nil {
		return "", err
	}
	return p.store.AddSection(types.Section{Name: name, Type: sectionType, Entries: []types.Entry{}}), nil
}

// Edit renames and retypes a section, leaving its entries untouched
func (p *SectionPanel) Edit(id, name string, sectionType types.SectionType) error {
	name, sectionType, err := checkSection(name, sectionType)
	if err != nil {
		return err
	}
	p.store.UpdateSection(id, name, sectionType)
	return nil
}

// Delete removes a section; unknown ids are ignored
func (p *SectionPanel) Delete(id string) {
	p.store.RemoveSection(id)
}

// Move reorders a section, dst counted after src has been removed
func (p *SectionPanel) Move(src, dst int) {
	p.store.ReorderSections(src, dst)
}

func checkSection(name string, sectionType types.SectionType) (string, types.SectionType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", invalid("name", "Section name is required")
	}
	if sectionType == "" {
		sectionType = types.SectionText
	}
	if !sectionType.Valid() {
		return "", "", invalid("type", fmt.Sprintf("unknown section type %q", sectionType))
	}
	return name, sectionType, nil
}
