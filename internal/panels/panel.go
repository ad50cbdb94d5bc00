// Package panels implements the dashboard's external-action panels. Each panel reads
// the session document, collects its own input, and either issues one outbound
// request or dispatches a store operation.
package panels

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/jonathan/cv-builder/internal/outbound"
)

// Sentinel errors shared by every panel
var (
	// ErrRequestInFlight is returned when a panel is triggered while its request is pending
	ErrRequestInFlight = errors.New("a request is already in progress")
	// ErrPanelClosed is returned for requests started on, or finished after, a closed panel
	ErrPanelClosed = errors.New("panel closed")
)

// Default user-facing messages for failed requests
const (
	msgUnexpected = "An unexpected error occurred."
	msgAIFailed   = "AI service failed to process the request."
)

// ValidationError is an input problem detected before any request is issued
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// gate allows one in-flight request per panel and cancels it on Close
type gate struct {
	sem *semaphore.Weighted

	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool
}

func newGate() *gate {
	return &gate{sem: semaphore.NewWeighted(1)}
}

// begin claims the gate. The returned context is cancelled by close, and done must be called exactly once.
func (g *gate) begin(ctx context.Context) (context.Context, func(), error) {
	if !g.sem.TryAcquire(1) {
		return nil, nil, ErrRequestInFlight
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		g.sem.Release(1)
		return nil, nil, ErrPanelClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	g.mu.Unlock()

	done := func() {
		g.mu.Lock()
		g.cancel = nil
		g.mu.Unlock()
		cancel()
		g.sem.Release(1)
	}
	return ctx, done, nil
}

// live reports whether a result produced now may still be applied
func (g *gate) live() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.closed
}

func (g *gate) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	if g.cancel != nil {
		g.cancel()
	}
}

// status is the loading flag and inline error message a panel shows
type status struct {
	mu      sync.RWMutex
	loading bool
	errMsg  string
}

// Loading reports whether a request is pending
func (s *status) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// ErrorMessage returns the message currently shown to the user, or ""
func (s *status) ErrorMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *status) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *status) setError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}

func (s *status) clearError() {
	s.setError("")
}

// userMessage normalizes err into the text shown next to the triggering control
func userMessage(err error, requestFailed string) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	if errors.Is(err, errNoSuggestions) {
		return errNoSuggestions.Error()
	}
	var apiErr *outbound.APICallError
	if errors.As(err, &apiErr) {
		return requestFailed
	}
	return msgUnexpected
}
