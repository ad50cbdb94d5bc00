package document

import "github.com/jonathan/cv-builder/internal/types"

// Reduce applies an action to a document and returns the next document.
// It never mutates state: the root and the targeted collection are copied, and every
// untouched section (including its entries) is shared with the previous value.
// Actions that do not apply (unknown id, out-of-range index) return state unchanged.
func Reduce(state types.CvData, action Action) types.CvData {
	switch a := action.(type) {
	case SetTheme:
		state.Theme = state.Theme.Merge(a.Patch)
		return state

	case SetPersonalInfo:
		state.PersonalInfo = state.PersonalInfo.Merge(a.Patch)
		return state

	case AddSection:
		sections := make([]types.Section, len(state.Sections), len(state.Sections)+1)
		copy(sections, state.Sections)
		state.Sections = append(sections, a.Section)
		return state

	case RemoveSection:
		if _, idx := state.SectionByID(a.ID); idx < 0 {
			return state
		}
		sections := make([]types.Section, 0, len(state.Sections)-1)
		for _, section := range state.Sections {
			if section.ID != a.ID {
				sections = append(sections, section)
			}
		}
		state.Sections = sections
		return state

	case UpdateSectionEntries:
		return replaceSection(state, a.ID, func(s types.Section) types.Section {
			s.Entries = a.Entries
			return s
		})

	case UpdateSection:
		return replaceSection(state, a.ID, func(s types.Section) types.Section {
			s.Name = a.SectionName
			s.Type = a.Type
			return s
		})

	case ReorderSections:
		return reorder(state, a.SourceIndex, a.DestinationIndex)

	default:
		return state
	}
}

// replaceSection copies the section slice with the matching section rewritten by fn
func replaceSection(state types.CvData, id string, fn func(types.Section) types.Section) types.CvData {
	if _, idx := state.SectionByID(id); idx < 0 {
		return state
	}
	sections := make([]types.Section, len(state.Sections))
	for i, section := range state.Sections {
		if section.ID == id {
			section = fn(section)
		}
		sections[i] = section
	}
	state.Sections = sections
	return state
}

// reorder removes the element at src, then inserts it at dst of the shortened slice.
// Indices outside [0, len) leave the document unchanged.
func reorder(state types.CvData, src, dst int) types.CvData {
	n := len(state.Sections)
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return state
	}

	moved := state.Sections[src]
	rest := make([]types.Section, 0, n)
	rest = append(rest, state.Sections[:src]...)
	rest = append(rest, state.Sections[src+1:]...)

	sections := make([]types.Section, 0, n)
	sections = append(sections, rest[:dst]...)
	sections = append(sections, moved)
	sections = append(sections, rest[dst:]...)

	state.Sections = sections
	return state
}
