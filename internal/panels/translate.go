package panels

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/outbound"
	"github.com/jonathan/cv-builder/internal/types"
)

// TranslatePath is the endpoint the translate panel posts to
const TranslatePath = "/api/ai/translate"

// DefaultLanguage is the initially selected translation target
const DefaultLanguage = "english"

// TranslatePanel requests a translated copy of the clean CV
type TranslatePanel struct {
	status

	store  *document.Store
	client *outbound.Client
	gate   *gate

	mu       sync.Mutex
	service  types.AIService
	language string
	result   *types.TranslateResult
}

// NewTranslatePanel creates a translate panel targeting English
func NewTranslatePanel(store *document.Store, client *outbound.Client) *TranslatePanel {
	return &TranslatePanel{
		store:    store,
		client:   client,
		gate:     newGate(),
		service:  types.ServiceClaude,
		language: DefaultLanguage,
	}
}

// UseService picks the AI engine
func (p *TranslatePanel) UseService(service types.AIService) error {
	if !service.Valid() {
		return invalid("service", fmt.Sprintf("unknown AI service %q", service))
	}
	p.mu.Lock()
	p.service = service
	p.mu.Unlock()
	return nil
}

// SetLanguage selects the target language by id
func (p *TranslatePanel) SetLanguage(id string) error {
	if _, ok := types.LanguageByID(id); !ok {
		return invalid("targetLanguage", fmt.Sprintf("unsupported language %q", id))
	}
	p.mu.Lock()
	p.language = id
	p.mu.Unlock()
	return nil
}

// Language returns the selected language id
func (p *TranslatePanel) Language() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.language
}

// Result returns the last translation, if any
func (p *TranslatePanel) Result() (types.TranslateResult, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.result == nil {
		return types.TranslateResult{}, false
	}
	return *p.result, true
}

// Translate submits the clean CV for translation
func (p *TranslatePanel) Translate(ctx context.Context) (types.TranslateResult, error) {
	ctx, done, err := p.gate.begin(ctx)
	if err != nil {
		return types.TranslateResult{}, err
	}
	defer done()

	p.setLoading(true)
	defer p.setLoading(false)
	p.clearError()

	p.mu.Lock()
	req := types.TranslateRequest{
		Service:        p.service,
		TargetLanguage: p.language,
		Cv:             document.Clean(p.store.Snapshot()),
	}
	p.mu.Unlock()

	var result types.TranslateResult
	err = p.client.PostJSON(ctx, TranslatePath, req, &result)
	if !p.gate.live() {
		return types.TranslateResult{}, ErrPanelClosed
	}
	if err != nil {
		p.setError(userMessage(err, msgAIFailed))
		return types.TranslateResult{}, err
	}

	p.mu.Lock()
	p.result = &result
	p.mu.Unlock()
	return result, nil
}

// Close cancels an in-flight request; its result is discarded
func (p *TranslatePanel) Close() {
	p.gate.close()
}
