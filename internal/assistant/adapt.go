package assistant

import (
	"fmt"

	"github.com/jonathan/cv-builder/internal/types"
)

// maxSuggestions caps how many missing keywords become suggestions
const maxSuggestions = 5

// AdaptedMessage is the message returned with every adaptation
const AdaptedMessage = "CV adapted successfully! Review changes below."

// Adapter compares a CV against a job description
type Adapter struct{}

// NewAdapter creates an Adapter
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Adapt reports which job keywords the CV already mentions and which it lacks
func (a *Adapter) Adapt(req types.AdaptRequest) types.AdaptResult {
	haystack := make(map[string]bool)
	for _, word := range tokenize(cvText(req.Cv)) {
		haystack[word] = true
	}

	result := types.AdaptResult{
		Message:         AdaptedMessage,
		MatchedKeywords: []string{},
		MissingKeywords: []string{},
		Suggestions:     []string{},
	}
	for _, word := range keywords(req.JobDescription) {
		if haystack[word] {
			result.MatchedKeywords = append(result.MatchedKeywords, word)
		} else {
			result.MissingKeywords = append(result.MissingKeywords, word)
		}
	}

	for i, word := range result.MissingKeywords {
		if i == maxSuggestions {
			break
		}
		result.Suggestions = append(result.Suggestions, fmt.Sprintf("Mention %q in your summary or experience if it applies to you.", word))
	}
	if len(result.MatchedKeywords) == 0 {
		result.Suggestions = append(result.Suggestions, "Your CV shares no keywords with this job description; tailor your summary to the role.")
	}
	return result
}
