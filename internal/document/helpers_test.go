package document

import (
	"fmt"

	"github.com/jonathan/cv-builder/internal/types"
)

// sequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func section(id, name string) types.Section {
	return types.Section{ID: id, Name: name, Type: types.SectionList, Entries: []types.Entry{}}
}

func docWithSections(names ...string) types.CvData {
	cv := types.CvData{ID: "doc", Theme: DefaultTheme()}
	for _, name := range names {
		cv.Sections = append(cv.Sections, section(name, name))
	}
	return cv
}

func sectionNames(cv types.CvData) []string {
	names := make([]string, len(cv.Sections))
	for i, s := range cv.Sections {
		names[i] = s.Name
	}
	return names
}
