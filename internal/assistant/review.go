// Package assistant provides the deterministic backends behind the /api/ai endpoints.
// Nothing here calls a model; each service is resolved through the llm registry
// only so responses can name the model that would have served them.
package assistant

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/cv-builder/internal/llm"
	"github.com/jonathan/cv-builder/internal/types"
)

// minSummaryWords is the length below which a summary is flagged as too short
const minSummaryWords = 10

var (
	entryHeader = regexp.MustCompile(`(?m)^Entry (\d+):[ \t]?(.*)$`)
	fieldLine   = regexp.MustCompile(`^([A-Z][A-Za-z0-9_]*): ?(.*)$`)
)

// Reviewer produces review feedback for the summary or a section's entries
type Reviewer struct {
	registry *llm.Registry
}

// NewReviewer creates a Reviewer
func NewReviewer(registry *llm.Registry) *Reviewer {
	return &Reviewer{registry: registry}
}

// Review inspects req.Text. For the summary it returns one improved description; for a
// section it returns one per record entry, in order, with "" for records that carry no
// description. When nothing can be improved ImprovedDescriptions is empty.
func (r *Reviewer) Review(req types.ReviewRequest) (types.ReviewResponse, error) {
	if _, err := r.registry.Model(req.Service, llm.TierLite); err != nil {
		return types.ReviewResponse{}, err
	}

	resp := types.ReviewResponse{Issues: []string{}, ImprovedDescriptions: []string{}}

	if req.SectionType == types.SummarySectionType {
		text := strings.TrimSpace(req.Text)
		if text == "" {
			return resp, nil
		}
		for _, phrase := range findWeakPhrases(text) {
			resp.Issues = append(resp.Issues, fmt.Sprintf("Summary: replace the weak phrase %q.", phrase))
		}
		if len(strings.Fields(text)) < minSummaryWords {
			resp.Issues = append(resp.Issues, "Summary: expand to two to four sentences describing your focus and strengths.")
		}
		resp.ImprovedDescriptions = append(resp.ImprovedDescriptions, improve(text))
		return resp, nil
	}

	improved := false
	for _, entry := range parseEntries(req.Text) {
		if !entry.record {
			for _, phrase := range findWeakPhrases(entry.text) {
				resp.Issues = append(resp.Issues, fmt.Sprintf("Entry %d: replace the weak phrase %q.", entry.number, phrase))
			}
			continue
		}
		if entry.description == "" {
			resp.Issues = append(resp.Issues, fmt.Sprintf("Entry %d: add a description of what you did.", entry.number))
			resp.ImprovedDescriptions = append(resp.ImprovedDescriptions, "")
			continue
		}
		resp.Issues = append(resp.Issues, descriptionIssues(entry.number, entry.description)...)
		resp.ImprovedDescriptions = append(resp.ImprovedDescriptions, improve(entry.description))
		improved = true
	}

	if !improved {
		resp.ImprovedDescriptions = []string{}
	}
	return resp, nil
}

func descriptionIssues(number int, description string) []string {
	var issues []string
	if !checkStrongVerb(strings.ToLower(strings.TrimSpace(description))) {
		issues = append(issues, fmt.Sprintf("Entry %d: start with a strong action verb such as Led, Built or Delivered.", number))
	}
	if !checkQuantifiedImpact(description) {
		issues = append(issues, fmt.Sprintf("Entry %d: quantify the impact with numbers or percentages.", number))
	}
	for _, phrase := range findWeakPhrases(description) {
		issues = append(issues, fmt.Sprintf("Entry %d: replace the weak phrase %q.", number, phrase))
	}
	return issues
}

type parsedEntry struct {
	number      int
	record      bool
	text        string
	description string
}

// parseEntries splits the "Entry N:" blocks a panel sends. A header followed by text
// on the same line is a text entry; otherwise the block holds "Key: value" lines.
func parseEntries(text string) []parsedEntry {
	headers := entryHeader.FindAllStringSubmatchIndex(text, -1)
	entries := make([]parsedEntry, 0, len(headers))

	for i, h := range headers {
		var number int
		_, _ = fmt.Sscanf(text[h[2]:h[3]], "%d", &number)
		inline := strings.TrimSpace(text[h[4]:h[5]])

		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		body := text[h[1]:end]

		if inline != "" {
			entries = append(entries, parsedEntry{number: number, text: inline})
			continue
		}
		entries = append(entries, parsedEntry{number: number, record: true, description: descriptionOf(body)})
	}
	return entries
}

// descriptionOf extracts the Description field, continuing over lines that are not field lines
func descriptionOf(body string) string {
	var parts []string
	inDescription := false
	for _, line := range strings.Split(body, "\n") {
		if m := fieldLine.FindStringSubmatch(line); m != nil {
			inDescription = m[1] == "Description"
			if inDescription {
				parts = append(parts, m[2])
			}
			continue
		}
		if inDescription {
			parts = append(parts, line)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
