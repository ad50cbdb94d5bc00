package panels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/outbound"
	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
	rootschemas "github.com/jonathan/cv-builder/schemas"
)

// ReviewPath is the endpoint the revise panel posts to
const ReviewPath = "/api/ai/review-section"

// SummaryTarget selects the personal summary instead of a section
const SummaryTarget = "summary"

// DescriptionField is the record key that receives improved descriptions
const DescriptionField = "description"

var (
	errNoSuggestions = errors.New("The AI did not return any suggestions.") //nolint:staticcheck // shown verbatim to the user
	// ErrNoReview is returned by Apply when there is no pending review result
	ErrNoReview = errors.New("no review result to apply")
)

// RevisePanel reviews the summary or a section's entries and applies the suggestions
type RevisePanel struct {
	status

	store  *document.Store
	client *outbound.Client
	gate   *gate

	mu       sync.Mutex
	target   string
	service  types.AIService
	result   *types.ReviewResponse
	reviewed string // target the pending result was produced for
}

// NewRevisePanel creates a revise panel targeting the summary with the default service
func NewRevisePanel(store *document.Store, client *outbound.Client) *RevisePanel {
	return &RevisePanel{
		store:   store,
		client:  client,
		gate:    newGate(),
		target:  SummaryTarget,
		service: types.ServiceClaude,
	}
}

// Select chooses the summary or a section id as the review target
func (p *RevisePanel) Select(target string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if target == "" {
		target = SummaryTarget
	}
	p.target = target
}

// Target returns the current review target
func (p *RevisePanel) Target() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target
}

// UseService picks the AI engine for the next review
func (p *RevisePanel) UseService(service types.AIService) error {
	if !service.Valid() {
		return invalid("service", fmt.Sprintf("unknown AI service %q", service))
	}
	p.mu.Lock()
	p.service = service
	p.mu.Unlock()
	return nil
}

// Service returns the selected AI engine
func (p *RevisePanel) Service() types.AIService {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.service
}

// Preview returns the text that a review would send
func (p *RevisePanel) Preview() string {
	target := p.Target()
	cv := p.store.Snapshot()
	if target == SummaryTarget {
		return cv.PersonalInfo.Summary
	}
	section, _ := cv.SectionByID(target)
	return EntriesText(section.Entries)
}

// Result returns the pending review result, if any
func (p *RevisePanel) Result() (types.ReviewResponse, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.result == nil {
		return types.ReviewResponse{}, false
	}
	return *p.result, true
}

// Review validates the target and requests suggestions for it.
// A response without improved descriptions is an error, never an empty success.
func (p *RevisePanel) Review(ctx context.Context) (types.ReviewResponse, error) {
	p.mu.Lock()
	target, service := p.target, p.service
	p.mu.Unlock()

	req, err := p.request(target, service)
	if err != nil {
		p.setError(userMessage(err, msgAIFailed))
		return types.ReviewResponse{}, err
	}

	ctx, done, err := p.gate.begin(ctx)
	if err != nil {
		return types.ReviewResponse{}, err
	}
	defer done()

	p.setLoading(true)
	defer p.setLoading(false)
	p.clearError()
	p.mu.Lock()
	p.result = nil
	p.mu.Unlock()

	resp, err := p.send(ctx, req)
	if !p.gate.live() {
		return types.ReviewResponse{}, ErrPanelClosed
	}
	if err != nil {
		p.setError(userMessage(err, msgAIFailed))
		return types.ReviewResponse{}, err
	}

	p.mu.Lock()
	p.result = &resp
	p.reviewed = target
	p.mu.Unlock()
	return resp, nil
}

func (p *RevisePanel) request(target string, service types.AIService) (types.ReviewRequest, error) {
	cv := p.store.Snapshot()
	if target == SummaryTarget {
		if strings.TrimSpace(cv.PersonalInfo.Summary) == "" {
			return types.ReviewRequest{}, invalid("summary", "Your summary is empty. Please add one first.")
		}
		return types.ReviewRequest{
			Text:        cv.PersonalInfo.Summary,
			SectionType: types.SummarySectionType,
			Service:     service,
		}, nil
	}

	section, idx := cv.SectionByID(target)
	if idx < 0 || len(section.Entries) == 0 {
		return types.ReviewRequest{}, invalid("section", "No entries found in this section.")
	}
	return types.ReviewRequest{
		Text:        EntriesText(section.Entries),
		SectionType: string(section.Type),
		Service:     service,
	}, nil
}

func (p *RevisePanel) send(ctx context.Context, req types.ReviewRequest) (types.ReviewResponse, error) {
	body, _, err := p.client.Post(ctx, ReviewPath, req)
	if err != nil {
		return types.ReviewResponse{}, err
	}

	if err := schemas.Validate(rootschemas.ReviewResponse, body); err != nil {
		return types.ReviewResponse{}, &outbound.APICallError{Path: ReviewPath, Message: "malformed review response", Cause: err}
	}

	var resp types.ReviewResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return types.ReviewResponse{}, &outbound.APICallError{Path: ReviewPath, Message: "failed to decode review response", Cause: err}
	}
	if len(resp.ImprovedDescriptions) == 0 {
		return types.ReviewResponse{}, errNoSuggestions
	}
	return resp, nil
}

// Apply writes the pending suggestions into the document and clears the result.
// Suggestions go to the target that was reviewed, even if another one was selected since.
// For the summary the first description replaces it. For a section the descriptions
// are distributed in order over its record entries; text entries are left alone and a
// record without a matching description keeps its current one.
func (p *RevisePanel) Apply() error {
	p.mu.Lock()
	result, target := p.result, p.reviewed
	p.result = nil
	p.mu.Unlock()

	if result == nil {
		return ErrNoReview
	}

	if target == SummaryTarget {
		if improved := result.ImprovedDescriptions[0]; improved != "" {
			p.store.SetPersonalInfo(types.PersonalInfoPatch{Summary: types.String(improved)})
		}
		return nil
	}

	section, idx := p.store.Snapshot().SectionByID(target)
	if idx < 0 {
		return nil
	}
	p.store.UpdateSectionEntries(target, distribute(section.Entries, result.ImprovedDescriptions))
	return nil
}

// Discard drops the pending review result
func (p *RevisePanel) Discard() {
	p.mu.Lock()
	p.result = nil
	p.mu.Unlock()
}

// Close cancels an in-flight review; its result is discarded
func (p *RevisePanel) Close() {
	p.gate.close()
}

func distribute(entries []types.Entry, descriptions []string) []types.Entry {
	updated := make([]types.Entry, len(entries))
	next := 0
	for i, entry := range entries {
		if !entry.IsRecord() {
			updated[i] = entry
			continue
		}
		if next < len(descriptions) && descriptions[next] != "" {
			updated[i] = entry.With(DescriptionField, descriptions[next])
		} else {
			updated[i] = entry
		}
		next++
	}
	return updated
}

// EntriesText renders entries as numbered blocks, one "Key: value" line per record field
func EntriesText(entries []types.Entry) string {
	blocks := make([]string, 0, len(entries))
	for i, entry := range entries {
		if !entry.IsRecord() {
			blocks = append(blocks, fmt.Sprintf("Entry %d: %s", i+1, entry.Text))
			continue
		}
		lines := make([]string, 0, len(entry.Fields))
		for _, field := range entry.Fields {
			lines = append(lines, fmt.Sprintf("%s: %s", capitalize(field.Key), entry.GetString(field.Key)))
		}
		blocks = append(blocks, fmt.Sprintf("Entry %d:\n%s", i+1, strings.Join(lines, "\n")))
	}
	return strings.Join(blocks, "\n\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
