package panels

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/outbound"
	"github.com/jonathan/cv-builder/internal/types"
)

func sequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("id-%d", n.Add(1))
	}
}

func newTestStore() *document.Store {
	ids := sequentialIDs()
	return document.NewStore(document.Seed(ids), document.WithIDGenerator(ids))
}

// fakeAPI records the last request body and answers with a fixed status and body
type fakeAPI struct {
	server   *httptest.Server
	calls    atomic.Int32
	lastBody chan []byte
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	api := &fakeAPI{lastBody: make(chan []byte, 16)}
	api.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.calls.Add(1)
		var raw json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&raw)
		api.lastBody <- raw
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(api.server.Close)
	return api
}

func (a *fakeAPI) client() *outbound.Client {
	return outbound.New(a.server.URL)
}

func (a *fakeAPI) body(t *testing.T) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(<-a.lastBody, &decoded))
	return decoded
}

// blockingAPI holds every request until released, cancelled or the test ends
type blockingAPI struct {
	server  *httptest.Server
	entered chan struct{}
	release chan struct{}
	stop    chan struct{}
}

func newBlockingAPI(t *testing.T, body string) *blockingAPI {
	t.Helper()
	api := &blockingAPI{
		entered: make(chan struct{}, 16),
		release: make(chan struct{}),
		stop:    make(chan struct{}),
	}
	api.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the server only notices a dropped client once the body is consumed
		_, _ = io.Copy(io.Discard, r.Body)
		api.entered <- struct{}{}
		select {
		case <-api.release:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		case <-r.Context().Done():
		case <-api.stop:
		}
	}))
	// cleanups run last-in first-out, so handlers are unblocked before Close waits on them
	t.Cleanup(api.server.Close)
	t.Cleanup(func() { close(api.stop) })
	return api
}

func (a *blockingAPI) client() *outbound.Client {
	return outbound.New(a.server.URL)
}

func sectionID(t *testing.T, store *document.Store, name string) string {
	t.Helper()
	for _, section := range store.Snapshot().Sections {
		if section.Name == name {
			return section.ID
		}
	}
	t.Fatalf("no section named %q", name)
	return ""
}

func record(pairs ...string) types.Entry {
	fields := make([]types.Field, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fields = append(fields, types.Field{Key: pairs[i], Value: pairs[i+1]})
	}
	return types.RecordEntry(fields...)
}
