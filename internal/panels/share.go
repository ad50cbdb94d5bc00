package panels

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/jonathan/cv-builder/internal/document"
)

// Clipboard is the write-only clipboard the share panel copies into
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// ErrNoShareLink is returned by Copy before a link was created
var ErrNoShareLink = errors.New("create a share link first")

// SharePanel derives a share link from the document id and copies it
type SharePanel struct {
	store *document.Store
	base  *url.URL

	mu     sync.Mutex
	link   string
	copied bool
	errMsg string
}

// NewSharePanel creates a share panel producing links under base
func NewSharePanel(store *document.Store, base *url.URL) *SharePanel {
	return &SharePanel{store: store, base: base}
}

// CreateLink derives the share link for the current document
func (p *SharePanel) CreateLink() string {
	link := document.ShareLink(p.base, p.store.Snapshot().ID)
	p.mu.Lock()
	p.link = link
	p.copied = false
	p.errMsg = ""
	p.mu.Unlock()
	return link
}

// Link returns the created link, or "" before CreateLink
func (p *SharePanel) Link() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.link
}

// Copied reports whether the current link was copied
func (p *SharePanel) Copied() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.copied
}

// ErrorMessage returns the message currently shown to the user, or ""
func (p *SharePanel) ErrorMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// Copy writes the created link to the clipboard
func (p *SharePanel) Copy(ctx context.Context, clipboard Clipboard) error {
	link := p.Link()
	if link == "" {
		return ErrNoShareLink
	}
	if err := clipboard.WriteText(ctx, link); err != nil {
		p.mu.Lock()
		p.copied = false
		p.errMsg = "Failed to copy link."
		p.mu.Unlock()
		return err
	}
	p.mu.Lock()
	p.copied = true
	p.errMsg = ""
	p.mu.Unlock()
	return nil
}
