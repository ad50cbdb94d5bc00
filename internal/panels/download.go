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

// ExportPath returns the export endpoint for format
func ExportPath(format types.ExportFormat) string {
	return "/api/export/" + string(format)
}

// Download is an exported document ready to be saved
type Download struct {
	Format      types.ExportFormat
	Filename    string
	ContentType string
	Data        []byte
}

// DownloadPanel exports the CV in one of the supported formats
type DownloadPanel struct {
	store  *document.Store
	client *outbound.Client

	mu      sync.Mutex
	gates   map[types.ExportFormat]*gate
	loading map[types.ExportFormat]bool
	errMsg  string
	last    types.ExportFormat
}

// NewDownloadPanel creates a download panel
func NewDownloadPanel(store *document.Store, client *outbound.Client) *DownloadPanel {
	p := &DownloadPanel{
		store:   store,
		client:  client,
		gates:   make(map[types.ExportFormat]*gate, len(types.ExportFormats)),
		loading: make(map[types.ExportFormat]bool, len(types.ExportFormats)),
	}
	for _, format := range types.ExportFormats {
		p.gates[format] = newGate()
	}
	return p
}

// Loading reports whether a download in format is pending
func (p *DownloadPanel) Loading(format types.ExportFormat) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading[format]
}

// ErrorMessage returns the message currently shown to the user, or ""
func (p *DownloadPanel) ErrorMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// LastSuccess returns the format of the most recent successful download, or ""
func (p *DownloadPanel) LastSuccess() types.ExportFormat {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Download exports the clean CV in format. Different formats may download concurrently.
func (p *DownloadPanel) Download(ctx context.Context, format types.ExportFormat) (Download, error) {
	g, ok := p.gates[format]
	if !ok {
		err := invalid("format", fmt.Sprintf("unsupported format %q", format))
		p.setError(err.Message)
		return Download{}, err
	}

	ctx, done, err := g.begin(ctx)
	if err != nil {
		return Download{}, err
	}
	defer done()

	p.mu.Lock()
	p.loading[format] = true
	p.errMsg = ""
	p.last = ""
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.loading[format] = false
		p.mu.Unlock()
	}()

	data, contentType, err := p.client.Post(ctx, ExportPath(format), document.Clean(p.store.Snapshot()))
	if !g.live() {
		return Download{}, ErrPanelClosed
	}
	if err != nil {
		msg := "Download failed. Please try again."
		if outbound.IsNotImplemented(err) {
			msg = fmt.Sprintf("%s export is not available yet.", formatLabel(format))
		}
		p.setError(userMessage(err, msg))
		return Download{}, err
	}

	p.mu.Lock()
	p.last = format
	p.mu.Unlock()

	return Download{
		Format:      format,
		Filename:    "cv." + string(format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// Close cancels every pending download
func (p *DownloadPanel) Close() {
	for _, g := range p.gates {
		g.close()
	}
}

func (p *DownloadPanel) setError(msg string) {
	p.mu.Lock()
	p.errMsg = msg
	p.mu.Unlock()
}

func formatLabel(format types.ExportFormat) string {
	if format == types.FormatText {
		return "Text"
	}
	return strings.ToUpper(string(format))
}
