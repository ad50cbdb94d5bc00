package document

import "github.com/jonathan/cv-builder/internal/types"

// DefaultTheme is the theme every session starts with
func DefaultTheme() types.Theme {
	return types.Theme{
		TemplateName:   types.TemplateClassic,
		FontFamily:     "Arial",
		FontSize:       "16px",
		PrimaryColor:   "#000000",
		PageMargin:     "1in",
		SectionSpacing: "1.5em",
		LineSpacing:    "1.5",
		Pattern:        "none",
	}
}

// DefaultSectionNames lists the sections of a seeded document, in order
var DefaultSectionNames = []string{"Experience", "Education", "Skills", "Certifications", "Projects", "Languages"}

// Seed builds the document a new session starts from. newID supplies the document and section ids.
func Seed(newID func() string) types.CvData {
	if newID == nil {
		newID = NewID
	}

	field := func(key, value string) types.Field {
		return types.Field{Key: key, Value: value}
	}
	skill := func(name, level string) types.Entry {
		return types.RecordEntry(field("skill", name), field("level", level))
	}

	entries := map[string][]types.Entry{
		"Experience": {
			types.RecordEntry(
				field("company", "Company A"),
				field("position", "Software Engineer"),
				field("startDate", "2020-01-01"),
				field("endDate", "2021-01-01"),
				field("description", "Developed web applications using React and Node.js."),
			),
			types.RecordEntry(
				field("company", "Company B"),
				field("position", "Frontend Developer"),
				field("startDate", "2019-01-01"),
				field("endDate", "2020-01-01"),
				field("description", "Worked on UI/UX design and implementation."),
			),
		},
		"Education": {
			types.RecordEntry(
				field("institution", "University A"),
				field("degree", "Bachelor of Science in Computer Science"),
				field("startDate", "2015-01-01"),
				field("endDate", "2019-01-01"),
				field("description", "Graduated with honors."),
			),
			types.RecordEntry(
				field("institution", "University B"),
				field("degree", "Master of Science in Software Engineering"),
				field("startDate", "2021-01-01"),
				field("endDate", "2023-01-01"),
				field("description", "Thesis on AI and Machine Learning."),
			),
		},
		"Skills": {
			skill("JavaScript", "Advanced"),
			skill("React", "Advanced"),
			skill("Node.js", "Intermediate"),
			skill("CSS", "Advanced"),
		},
	}

	cv := types.CvData{
		ID:    newID(),
		Theme: DefaultTheme(),
		PersonalInfo: types.PersonalInfo{
			Summary: "Software engineer focused on building reliable web applications.",
		},
		Sections: make([]types.Section, 0, len(DefaultSectionNames)),
	}

	for _, name := range DefaultSectionNames {
		sectionEntries := entries[name]
		if sectionEntries == nil {
			sectionEntries = []types.Entry{}
		}
		cv.Sections = append(cv.Sections, types.Section{
			ID:      newID(),
			Name:    name,
			Type:    types.SectionList,
			Entries: sectionEntries,
		})
	}

	return cv
}
