package assistant

import (
	"fmt"

	"github.com/jonathan/cv-builder/internal/llm"
	"github.com/jonathan/cv-builder/internal/types"
)

// Translator returns a CV tagged with its target language
type Translator struct {
	registry *llm.Registry
}

// NewTranslator creates a Translator
func NewTranslator(registry *llm.Registry) *Translator {
	return &Translator{registry: registry}
}

// Translate returns a copy of the CV for the target language. No translation engine is
// configured, so the content comes back unchanged with a note saying so.
func (t *Translator) Translate(req types.TranslateRequest) (types.TranslateResult, error) {
	model, err := t.registry.Model(req.Service, llm.TierStandard)
	if err != nil {
		return types.TranslateResult{}, err
	}

	lang, ok := types.LanguageByID(req.TargetLanguage)
	if !ok {
		return types.TranslateResult{}, fmt.Errorf("unsupported target language %q", req.TargetLanguage)
	}

	return types.TranslateResult{
		Service:        req.Service,
		TargetLanguage: lang.ID,
		Cv:             req.Cv.Clone(),
		Note:           fmt.Sprintf("%s translation via %s is not configured; content is returned unchanged.", lang.Name, model),
	}, nil
}
