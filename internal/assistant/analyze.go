package assistant

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-builder/internal/llm"
	"github.com/jonathan/cv-builder/internal/types"
)

// personalInfoPenalty is deducted from the overall score per missing key contact field
const personalInfoPenalty = 10

// Analyzer scores a CV's completeness
type Analyzer struct {
	registry *llm.Registry
}

// NewAnalyzer creates an Analyzer
func NewAnalyzer(registry *llm.Registry) *Analyzer {
	return &Analyzer{registry: registry}
}

// Analyze scores every section and the CV as a whole
func (a *Analyzer) Analyze(req types.AnalyzeRequest) (types.AnalyzeResult, error) {
	model, err := a.registry.Model(req.Service, llm.TierStandard)
	if err != nil {
		return types.AnalyzeResult{}, err
	}

	result := types.AnalyzeResult{
		Service:  req.Service,
		Model:    model,
		Sections: make([]types.SectionScore, 0, len(req.Cv.Sections)),
		Advice:   []string{},
	}

	total := 0
	for _, section := range req.Cv.Sections {
		score := scoreSection(section)
		result.Sections = append(result.Sections, score)
		total += score.Score
	}
	if len(result.Sections) > 0 {
		result.Score = total / len(result.Sections)
	}

	info := req.Cv.PersonalInfo
	for _, field := range []struct{ value, advice string }{
		{info.FullName, "Add your full name."},
		{info.Email, "Add an email address so recruiters can reach you."},
		{info.Summary, "Write a short professional summary."},
	} {
		if strings.TrimSpace(field.value) == "" {
			result.Advice = append(result.Advice, field.advice)
			result.Score -= personalInfoPenalty
		}
	}

	if target := strings.TrimSpace(req.TargetPosition); target != "" {
		mentioned := strings.Contains(strings.ToLower(info.JobTitle+" "+info.Summary), strings.ToLower(target))
		if !mentioned {
			result.Advice = append(result.Advice, fmt.Sprintf("Mention %q in your job title or summary.", target))
		}
	}

	if result.Score < 0 {
		result.Score = 0
	}
	return result, nil
}

func scoreSection(section types.CleanSection) types.SectionScore {
	score := types.SectionScore{Name: section.Name}
	if len(section.Entries) == 0 {
		score.Advice = fmt.Sprintf("Add at least one entry to %s.", section.Name)
		return score
	}

	score.Score = 40 + 10*min(len(section.Entries), 3)

	described := true
	for _, entry := range section.Entries {
		if entry.IsRecord() {
			if _, ok := entry.Get("description"); !ok || strings.TrimSpace(entry.GetString("description")) == "" {
				described = false
			}
		} else if strings.TrimSpace(entry.Text) == "" {
			described = false
		}
	}
	if described {
		score.Score += 30
	} else {
		score.Advice = fmt.Sprintf("Describe your impact in each %s entry.", section.Name)
	}
	return score
}
