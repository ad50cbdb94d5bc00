// Package types provides type definitions for the CV document and the payloads exchanged with the AI and export endpoints.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AIService names the engine a user picks for an AI request
type AIService string

// AI service constants
const (
	ServiceOpenAI AIService = "openai"
	ServiceGemini AIService = "gemini"
	ServiceClaude AIService = "claude"
)

// AIServices lists the selectable services in display order
var AIServices = []AIService{ServiceClaude, ServiceOpenAI, ServiceGemini}

// Valid reports whether s is a known service
func (s AIService) Valid() bool {
	for _, known := range AIServices {
		if s == known {
			return true
		}
	}
	return false
}

// SummarySectionType is the sectionType sent when reviewing the personal summary
const SummarySectionType = "summary"

// ReviewRequest is the body of POST /api/ai/review-section
type ReviewRequest struct {
	Text        string    `json:"text" validate:"required"`
	SectionType string    `json:"sectionType" validate:"required"`
	Service     AIService `json:"service" validate:"required,oneof=openai gemini claude"`
}

// ReviewResponse is the 200 body of POST /api/ai/review-section
type ReviewResponse struct {
	Issues               []string `json:"issues"`
	ImprovedDescriptions []string `json:"improvedDescriptions"`
}

// AdaptRequest asks for a CV tailored to a job description
type AdaptRequest struct {
	JobDescription string  `json:"jobDescription" validate:"required,max=2000"`
	Cv             CleanCv `json:"cv"`
}

// AdaptResult is the response of POST /api/ai/adapt
type AdaptResult struct {
	Message         string   `json:"message"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Suggestions     []string `json:"suggestions"`
}

// AnalyzeRequest asks for a quality assessment of a CV
type AnalyzeRequest struct {
	Service        AIService `json:"service" validate:"required,oneof=openai gemini claude"`
	TargetPosition string    `json:"targetPosition,omitempty"`
	Cv             CleanCv   `json:"cv"`
}

// SectionScore is the per-section part of an analysis
type SectionScore struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Advice string `json:"advice,omitempty"`
}

// AnalyzeResult is the response of POST /api/ai/analyze
type AnalyzeResult struct {
	Service  AIService      `json:"service"`
	Model    string         `json:"model"`
	Score    int            `json:"score"`
	Sections []SectionScore `json:"sections"`
	Advice   []string       `json:"advice"`
}

// TranslateRequest asks for a CV translated into another language
type TranslateRequest struct {
	Service        AIService `json:"service" validate:"required,oneof=openai gemini claude"`
	TargetLanguage string    `json:"targetLanguage" validate:"required,oneof=english spanish german italian portuguese dutch russian chinese japanese arabic"`
	Cv             CleanCv   `json:"cv"`
}

// TranslateResult is the response of POST /api/ai/translate
type TranslateResult struct {
	Service        AIService `json:"service"`
	TargetLanguage string    `json:"targetLanguage"`
	Cv             CleanCv   `json:"cv"`
	Note           string    `json:"note,omitempty"`
}

// Language is a selectable translation target
type Language struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Languages lists the supported translation targets
var Languages = []Language{
	{ID: "english", Name: "English"},
	{ID: "spanish", Name: "Spanish"},
	{ID: "german", Name: "German"},
	{ID: "italian", Name: "Italian"},
	{ID: "portuguese", Name: "Portuguese"},
	{ID: "dutch", Name: "Dutch"},
	{ID: "russian", Name: "Russian"},
	{ID: "chinese", Name: "Chinese"},
	{ID: "japanese", Name: "Japanese"},
	{ID: "arabic", Name: "Arabic"},
}

// LanguageByID looks up a supported translation target
func LanguageByID(id string) (Language, bool) {
	for _, lang := range Languages {
		if lang.ID == id {
			return lang, true
		}
	}
	return Language{}, false
}

// ExportFormat names a download format
type ExportFormat string

// Export format constants
const (
	FormatPDF  ExportFormat = "pdf"
	FormatCSV  ExportFormat = "csv"
	FormatText ExportFormat = "txt"
	FormatJSON ExportFormat = "json"
)

// ExportFormats lists the download formats in display order
var ExportFormats = []ExportFormat{FormatPDF, FormatCSV, FormatText, FormatJSON}

// Valid reports whether f is a known export format
func (f ExportFormat) Valid() bool {
	for _, known := range ExportFormats {
		if f == known {
			return true
		}
	}
	return false
}
