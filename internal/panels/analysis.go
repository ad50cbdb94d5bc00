package panels

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/outbound"
	"github.com/jonathan/cv-builder/internal/types"
)

// AnalyzePath is the endpoint the analysis panel posts to
const AnalyzePath = "/api/ai/analyze"

// AnalysisPanel asks for a quality assessment of the CV
type AnalysisPanel struct {
	status

	store  *document.Store
	client *outbound.Client
	gate   *gate

	mu             sync.Mutex
	service        types.AIService
	targetPosition string
	result         *types.AnalyzeResult
}

// NewAnalysisPanel creates an analysis panel using the default service
func NewAnalysisPanel(store *document.Store, client *outbound.Client) *AnalysisPanel {
	return &AnalysisPanel{store: store, client: client, gate: newGate(), service: types.ServiceClaude}
}

// UseService picks the AI engine
func (p *AnalysisPanel) UseService(service types.AIService) error {
	if !service.Valid() {
		return invalid("service", fmt.Sprintf("unknown AI service %q", service))
	}
	p.mu.Lock()
	p.service = service
	p.mu.Unlock()
	return nil
}

// SetTargetPosition sets the optional position the CV is analyzed against
func (p *AnalysisPanel) SetTargetPosition(position string) {
	p.mu.Lock()
	p.targetPosition = strings.TrimSpace(position)
	p.mu.Unlock()
}

// Request returns the payload Analyze would send
func (p *AnalysisPanel) Request() types.AnalyzeRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return types.AnalyzeRequest{
		Service:        p.service,
		TargetPosition: p.targetPosition,
		Cv:             document.Clean(p.store.Snapshot()),
	}
}

// Result returns the last analysis, if any
func (p *AnalysisPanel) Result() (types.AnalyzeResult, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.result == nil {
		return types.AnalyzeResult{}, false
	}
	return *p.result, true
}

// Analyze submits the clean CV for analysis
func (p *AnalysisPanel) Analyze(ctx context.Context) (types.AnalyzeResult, error) {
	ctx, done, err := p.gate.begin(ctx)
	if err != nil {
		return types.AnalyzeResult{}, err
	}
	defer done()

	p.setLoading(true)
	defer p.setLoading(false)
	p.clearError()

	var result types.AnalyzeResult
	err = p.client.PostJSON(ctx, AnalyzePath, p.Request(), &result)
	if !p.gate.live() {
		return types.AnalyzeResult{}, ErrPanelClosed
	}
	if err != nil {
		p.setError(userMessage(err, msgAIFailed))
		return types.AnalyzeResult{}, err
	}

	p.mu.Lock()
	p.result = &result
	p.mu.Unlock()
	return result, nil
}

// Close cancels an in-flight request; its result is discarded
func (p *AnalysisPanel) Close() {
	p.gate.close()
}
