package document

import "github.com/jonathan/cv-builder/internal/types"

// Clean projects a document into its outbound form: the document id, the theme and every
// section id are dropped. The result shares nothing with cv.
func Clean(cv types.CvData) types.CleanCv {
	sections := make([]types.CleanSection, len(cv.Sections))
	for i, section := range cv.Sections {
		entries := types.CloneEntries(section.Entries)
		if entries == nil {
			entries = []types.Entry{}
		}
		sections[i] = types.CleanSection{
			Name:    section.Name,
			Type:    section.Type,
			Entries: entries,
		}
	}

	return types.CleanCv{
		PersonalInfo: cv.PersonalInfo,
		Sections:     sections,
	}
}
