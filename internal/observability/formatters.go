// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs the personal info and an outline of every section.
func (p *Printer) PrintDocument(cv *types.CvData) {
	if cv == nil {
		return
	}

	var sb strings.Builder
	info := cv.PersonalInfo
	sb.WriteString(fmt.Sprintf("ID:       %s\n", cv.ID))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", info.FullName))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", info.JobTitle))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", info.Email))
	sb.WriteString(fmt.Sprintf("Template: %s\n", cv.Theme.TemplateName))
	if info.Summary != "" {
		sb.WriteString(fmt.Sprintf("Summary:  %s\n", info.Summary))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Sections (%d):\n", len(cv.Sections)))
	for i, section := range cv.Sections {
		sb.WriteString(fmt.Sprintf("  %d. %s [%s] %d entries  (%s)\n", i, section.Name, section.Type, len(section.Entries), section.ID))
	}

	p.printBox("CV DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSection outputs the entries of one section, records as key/value lines.
func (p *Printer) PrintSection(section *types.Section) {
	if section == nil {
		return
	}

	var sb strings.Builder
	if len(section.Entries) == 0 {
		sb.WriteString("No entries")
	}
	for i, entry := range section.Entries {
		if !entry.IsRecord() {
			sb.WriteString(fmt.Sprintf("• %s\n", entry.Text))
			continue
		}
		sb.WriteString(fmt.Sprintf("Entry %d:\n", i+1))
		for _, field := range entry.Fields {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", field.Key, field.Value))
		}
	}

	p.printBox(strings.ToUpper(section.Name), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReview outputs the issues and improved descriptions of a review.
func (p *Printer) PrintReview(resp *types.ReviewResponse) {
	if resp == nil {
		return
	}

	var sb strings.Builder
	if len(resp.Issues) > 0 {
		sb.WriteString(fmt.Sprintf("Issues (%d):\n", len(resp.Issues)))
		count := min(len(resp.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", resp.Issues[i]))
		}
		if len(resp.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resp.Issues)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resp.ImprovedDescriptions) == 0 {
		sb.WriteString("No suggestions")
	} else {
		sb.WriteString("Suggestions:\n")
		for i, text := range resp.ImprovedDescriptions {
			if text == "" {
				text = "(unchanged)"
			}
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, text))
		}
	}

	p.printBox("REVIEW", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the overall score and per-section scores.
func (p *Printer) PrintAnalysis(result *types.AnalyzeResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Model:    %s (%s)\n", result.Model, result.Service))
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n\n", result.Score))

	for _, section := range result.Sections {
		sb.WriteString(fmt.Sprintf("%-20s %3d\n", section.Name, section.Score))
		if section.Advice != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", section.Advice))
		}
	}

	if len(result.Advice) > 0 {
		sb.WriteString("\nAdvice:\n")
		for _, advice := range result.Advice {
			sb.WriteString(fmt.Sprintf("  • %s\n", advice))
		}
	}

	p.printBox("CV ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAdaptation outputs the keyword overlap with a job description.
func (p *Printer) PrintAdaptation(result *types.AdaptResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(result.Message + "\n\n")
	sb.WriteString(fmt.Sprintf("Matched:  %s\n", keywordList(result.MatchedKeywords)))
	sb.WriteString(fmt.Sprintf("Missing:  %s\n", keywordList(result.MissingKeywords)))

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range result.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("JOB ADAPTATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs the result of validating a document against a schema.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(schema string, problems []string) {
	if len(problems) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ VALID "+schema)
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(problems)))
	for _, problem := range problems {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", problem))
	}

	p.printBox("SCHEMA VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func keywordList(words []string) string {
	if len(words) == 0 {
		return "-"
	}
	count := min(len(words), maxItemsToShow)
	list := strings.Join(words[:count], ", ")
	if len(words) > maxItemsToShow {
		list += fmt.Sprintf(" (+%d)", len(words)-maxItemsToShow)
	}
	return list
}
