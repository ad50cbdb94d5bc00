package panels

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/outbound"
	"github.com/jonathan/cv-builder/internal/types"
)

func TestDownloadPanel_Download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/export/csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte("section,type,entry,field,value\n"))
		case "/api/export/pdf":
			w.WriteHeader(http.StatusNotImplemented)
			_, _ = w.Write([]byte(`{"error": "unsupported export format"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	panel := NewDownloadPanel(newTestStore(), outbound.New(srv.URL))

	dl, err := panel.Download(context.Background(), types.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "cv.csv", dl.Filename)
	assert.Equal(t, "text/csv", dl.ContentType)
	assert.Equal(t, "section,type,entry,field,value\n", string(dl.Data))
	assert.Equal(t, types.FormatCSV, panel.LastSuccess())
	assert.False(t, panel.Loading(types.FormatCSV))

	_, err = panel.Download(context.Background(), types.FormatPDF)
	require.Error(t, err)
	assert.True(t, outbound.IsNotImplemented(err))
	assert.Equal(t, "PDF export is not available yet.", panel.ErrorMessage())
	assert.Empty(t, panel.LastSuccess())
}

func TestDownloadPanel_UnknownFormat(t *testing.T) {
	panel := NewDownloadPanel(newTestStore(), outbound.New("http://unused"))

	_, err := panel.Download(context.Background(), "docx")
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, panel.ErrorMessage())
}

func TestDownloadPanel_LoadingIsPerFormat(t *testing.T) {
	api := newBlockingAPI(t, `{}`)
	panel := NewDownloadPanel(newTestStore(), api.client())

	errCh := make(chan error, 1)
	go func() {
		_, err := panel.Download(context.Background(), types.FormatJSON)
		errCh <- err
	}()
	<-api.entered

	assert.True(t, panel.Loading(types.FormatJSON))
	assert.False(t, panel.Loading(types.FormatCSV))

	_, err := panel.Download(context.Background(), types.FormatJSON)
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(api.release)
	require.NoError(t, <-errCh)
}
