package panels

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/outbound"
	"github.com/jonathan/cv-builder/internal/types"
)

// AdaptPath is the endpoint the adapt panel posts to
const AdaptPath = "/api/ai/adapt"

// MaxJobDescription is the longest job description the adapt panel accepts
const MaxJobDescription = 2000

// ExampleJobDescription is loaded by AdaptPanel.LoadExample
const ExampleJobDescription = `Example Job Description:
We are seeking a skilled React developer with experience in TypeScript and modern frontend frameworks. Key responsibilities include:
- Developing responsive user interfaces
- Collaborating with cross-functional teams
- Optimizing application performance
- Maintaining code quality and best practices

Requirements:
- 3+ years of React experience
- Proficiency in TypeScript
- Experience with state management (Redux/MobX)
- Familiarity with REST APIs and modern tooling`

// AdaptPanel tailors the clean CV to a job description
type AdaptPanel struct {
	status

	store  *document.Store
	client *outbound.Client
	gate   *gate

	mu             sync.Mutex
	jobDescription string
	result         *types.AdaptResult
}

// NewAdaptPanel creates an adapt panel
func NewAdaptPanel(store *document.Store, client *outbound.Client) *AdaptPanel {
	return &AdaptPanel{store: store, client: client, gate: newGate()}
}

// SetJobDescription replaces the job description and clears any inline error
func (p *AdaptPanel) SetJobDescription(text string) {
	p.mu.Lock()
	p.jobDescription = text
	p.mu.Unlock()
	p.clearError()
}

// JobDescription returns the current job description
func (p *AdaptPanel) JobDescription() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.jobDescription
}

// LoadExample fills in a sample job description
func (p *AdaptPanel) LoadExample() {
	p.SetJobDescription(ExampleJobDescription)
}

// Result returns the last successful adaptation, if any
func (p *AdaptPanel) Result() (types.AdaptResult, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.result == nil {
		return types.AdaptResult{}, false
	}
	return *p.result, true
}

// Adapt sends the job description and the clean CV for adaptation
func (p *AdaptPanel) Adapt(ctx context.Context) (types.AdaptResult, error) {
	jobDescription := p.JobDescription()
	if strings.TrimSpace(jobDescription) == "" {
		err := invalid("jobDescription", "Please enter a job description")
		p.setError(err.Message)
		return types.AdaptResult{}, err
	}
	if utf8.RuneCountInString(jobDescription) > MaxJobDescription {
		err := invalid("jobDescription", "Job description must be at most 2000 characters")
		p.setError(err.Message)
		return types.AdaptResult{}, err
	}

	ctx, done, err := p.gate.begin(ctx)
	if err != nil {
		return types.AdaptResult{}, err
	}
	defer done()

	p.setLoading(true)
	defer p.setLoading(false)
	p.clearError()

	req := types.AdaptRequest{
		JobDescription: jobDescription,
		Cv:             document.Clean(p.store.Snapshot()),
	}

	var result types.AdaptResult
	err = p.client.PostJSON(ctx, AdaptPath, req, &result)
	if !p.gate.live() {
		return types.AdaptResult{}, ErrPanelClosed
	}
	if err != nil {
		p.setError(userMessage(err, "Failed to adapt your CV. Please try again."))
		return types.AdaptResult{}, err
	}

	p.mu.Lock()
	p.result = &result
	p.mu.Unlock()
	return result, nil
}

// Close cancels an in-flight request; its result is discarded
func (p *AdaptPanel) Close() {
	p.gate.close()
}
