package assistant

import (
	"strings"
	"unicode"

	"github.com/jonathan/cv-builder/internal/types"
)

// stopWords are skipped when extracting keywords from a job description
var stopWords = map[string]bool{
	"and": true, "the": true, "with": true, "for": true, "are": true, "our": true,
	"you": true, "your": true, "will": true, "that": true, "this": true, "from": true,
	"have": true, "has": true, "not": true, "but": true, "who": true, "all": true,
	"can": true, "into": true, "about": true, "their": true, "they": true, "them": true,
	"include": true, "includes": true, "including": true, "key": true, "seeking": true,
	"skilled": true, "experience": true, "years": true, "requirements": true,
	"responsibilities": true, "example": true, "job": true, "description": true,
	"modern": true, "familiarity": true, "proficiency": true, "best": true, "practices": true,
	"across": true, "within": true, "strong": true, "plus": true, "etc": true,
}

// tokenize lowercases text and splits it into words, keeping symbols common in tech names
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
}

// keywords returns the distinct non-stop-word tokens of text in first-seen order
func keywords(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, word := range tokenize(text) {
		if (len(word) < 3 && !strings.ContainsAny(word, "+#")) || stopWords[word] || seen[word] || isNumber(word) {
			continue
		}
		seen[word] = true
		out = append(out, word)
	}
	return out
}

func isNumber(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) && r != '+' {
			return false
		}
	}
	return true
}

// cvText flattens every string in the clean CV into one lowercase blob
func cvText(cv types.CleanCv) string {
	var sb strings.Builder
	info := cv.PersonalInfo
	for _, s := range []string{info.FullName, info.JobTitle, info.Summary} {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	for _, section := range cv.Sections {
		sb.WriteString(section.Name)
		sb.WriteByte('\n')
		for _, entry := range section.Entries {
			sb.WriteString(entryText(entry))
			sb.WriteByte('\n')
		}
	}
	return strings.ToLower(sb.String())
}

// entryText joins an entry's values, or returns its text
func entryText(entry types.Entry) string {
	if !entry.IsRecord() {
		return entry.Text
	}
	values := make([]string, 0, len(entry.Fields))
	for _, field := range entry.Fields {
		values = append(values, entry.GetString(field.Key))
	}
	return strings.Join(values, " ")
}
