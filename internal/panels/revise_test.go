package panels

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/outbound"
	"github.com/jonathan/cv-builder/internal/types"
)

func TestRevisePanel_SummaryApply(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"issues": [], "improvedDescriptions": ["Improved summary text"]}`)
	store := newTestStore()
	store.SetPersonalInfo(types.PersonalInfoPatch{Summary: types.String("i build web apps")})

	panel := NewRevisePanel(store, api.client())
	resp, err := panel.Review(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Improved summary text"}, resp.ImprovedDescriptions)

	body := api.body(t)
	assert.Equal(t, "i build web apps", body["text"])
	assert.Equal(t, "summary", body["sectionType"])
	assert.Equal(t, "claude", body["service"])

	require.NoError(t, panel.Apply())
	assert.Equal(t, "Improved summary text", store.Snapshot().PersonalInfo.Summary)

	_, pending := panel.Result()
	assert.False(t, pending, "apply clears the pending result")
	assert.ErrorIs(t, panel.Apply(), ErrNoReview)
}

func TestRevisePanel_EmptySuggestionsIsAnError(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"issues": ["Too vague"], "improvedDescriptions": []}`)
	store := newTestStore()
	summary := store.Snapshot().PersonalInfo.Summary

	panel := NewRevisePanel(store, api.client())
	_, err := panel.Review(context.Background())
	require.Error(t, err)

	assert.Equal(t, "The AI did not return any suggestions.", panel.ErrorMessage())
	_, pending := panel.Result()
	assert.False(t, pending)
	assert.Equal(t, summary, store.Snapshot().PersonalInfo.Summary)
}

func TestRevisePanel_ValidationBeforeRequest(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"issues": [], "improvedDescriptions": ["x"]}`)
	store := newTestStore()
	store.SetPersonalInfo(types.PersonalInfoPatch{Summary: types.String("   ")})
	awards := store.AddSection(types.Section{Name: "Awards", Type: types.SectionText})

	panel := NewRevisePanel(store, api.client())

	_, err := panel.Review(context.Background())
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Your summary is empty. Please add one first.", panel.ErrorMessage())

	panel.Select(awards)
	_, err = panel.Review(context.Background())
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "No entries found in this section.", panel.ErrorMessage())

	panel.Select("missing")
	_, err = panel.Review(context.Background())
	assert.Error(t, err)

	assert.Zero(t, api.calls.Load(), "no request is issued for invalid input")
}

func TestRevisePanel_ErrorClearedOnNextValidAttempt(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"issues": [], "improvedDescriptions": ["Better"]}`)
	store := newTestStore()
	store.SetPersonalInfo(types.PersonalInfoPatch{Summary: types.String("")})

	panel := NewRevisePanel(store, api.client())
	_, err := panel.Review(context.Background())
	require.Error(t, err)
	require.NotEmpty(t, panel.ErrorMessage())

	store.SetPersonalInfo(types.PersonalInfoPatch{Summary: types.String("Now filled in")})
	_, err = panel.Review(context.Background())
	require.NoError(t, err)
	assert.Empty(t, panel.ErrorMessage())
}

func TestRevisePanel_RequestFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error": "boom"}`},
		{name: "missing improvedDescriptions", status: http.StatusOK, body: `{"issues": []}`},
		{name: "not json", status: http.StatusOK, body: `<html></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t, tt.status, tt.body)
			panel := NewRevisePanel(newTestStore(), api.client())

			_, err := panel.Review(context.Background())
			require.Error(t, err)

			var apiErr *outbound.APICallError
			assert.True(t, errors.As(err, &apiErr))
			assert.Equal(t, "AI service failed to process the request.", panel.ErrorMessage())
			assert.False(t, panel.Loading())
		})
	}
}

func TestRevisePanel_SectionRequestAndApply(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"issues": [], "improvedDescriptions": ["Led the frontend rewrite."]}`)
	store := newTestStore()
	id := store.AddSection(types.Section{
		Name: "Jobs",
		Type: types.SectionList,
		Entries: []types.Entry{
			record("company", "Acme", "description", "did frontend"),
			types.TextEntry("Volunteer work"),
			record("company", "Globex", "description", "kept as is"),
			record("company", "Initech"),
		},
	})

	panel := NewRevisePanel(store, api.client())
	panel.Select(id)
	require.NoError(t, panel.UseService(types.ServiceGemini))

	_, err := panel.Review(context.Background())
	require.NoError(t, err)

	body := api.body(t)
	assert.Equal(t, "list", body["sectionType"])
	assert.Equal(t, "gemini", body["service"])
	assert.Equal(t, panel.Preview(), body["text"])

	require.NoError(t, panel.Apply())

	section, _ := store.Snapshot().SectionByID(id)
	require.Len(t, section.Entries, 4)
	assert.Equal(t, "Led the frontend rewrite.", section.Entries[0].GetString("description"))
	assert.Equal(t, "Acme", section.Entries[0].GetString("company"))
	assert.Equal(t, types.TextEntry("Volunteer work"), section.Entries[1])
	assert.Equal(t, "kept as is", section.Entries[2].GetString("description"))
	_, has := section.Entries[3].Get("description")
	assert.False(t, has)
}

func TestRevisePanel_ApplyUsesReviewedTarget(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"issues": [], "improvedDescriptions": ["Improved summary text"]}`)
	store := newTestStore()
	store.SetPersonalInfo(types.PersonalInfoPatch{Summary: types.String("i build web apps")})
	experience := sectionID(t, store, "Experience")
	before, _ := store.Snapshot().SectionByID(experience)

	panel := NewRevisePanel(store, api.client())
	_, err := panel.Review(context.Background())
	require.NoError(t, err)

	panel.Select(experience)
	require.NoError(t, panel.Apply())

	cv := store.Snapshot()
	assert.Equal(t, "Improved summary text", cv.PersonalInfo.Summary)
	after, _ := cv.SectionByID(experience)
	assert.Equal(t, before.Entries, after.Entries)
	assert.Equal(t, experience, panel.Target())
}

func TestRevisePanel_Discard(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"issues": [], "improvedDescriptions": ["Better"]}`)
	store := newTestStore()
	before := store.Snapshot().PersonalInfo.Summary

	panel := NewRevisePanel(store, api.client())
	_, err := panel.Review(context.Background())
	require.NoError(t, err)

	panel.Discard()
	assert.ErrorIs(t, panel.Apply(), ErrNoReview)
	assert.Equal(t, before, store.Snapshot().PersonalInfo.Summary)
}

func TestRevisePanel_OneRequestInFlight(t *testing.T) {
	api := newBlockingAPI(t, `{"issues": [], "improvedDescriptions": ["Better"]}`)
	panel := NewRevisePanel(newTestStore(), api.client())

	errCh := make(chan error, 1)
	go func() {
		_, err := panel.Review(context.Background())
		errCh <- err
	}()
	<-api.entered

	assert.True(t, panel.Loading())
	_, err := panel.Review(context.Background())
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(api.release)
	require.NoError(t, <-errCh)
	assert.False(t, panel.Loading())
}

func TestRevisePanel_CloseDiscardsLateResult(t *testing.T) {
	api := newBlockingAPI(t, `{"issues": [], "improvedDescriptions": ["Better"]}`)
	panel := NewRevisePanel(newTestStore(), api.client())

	errCh := make(chan error, 1)
	go func() {
		_, err := panel.Review(context.Background())
		errCh <- err
	}()
	<-api.entered

	panel.Close()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrPanelClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("review did not return after Close")
	}
	_, pending := panel.Result()
	assert.False(t, pending)

	_, err := panel.Review(context.Background())
	assert.ErrorIs(t, err, ErrPanelClosed)
}

func TestRevisePanel_UseServiceRejectsUnknown(t *testing.T) {
	panel := NewRevisePanel(newTestStore(), outbound.New("http://unused"))
	err := panel.UseService("mistral")
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, types.ServiceClaude, panel.Service())
}

func TestEntriesText(t *testing.T) {
	text := EntriesText([]types.Entry{
		record("company", "Company A", "position", "Software Engineer"),
		types.TextEntry("Fluent in French"),
	})

	assert.Equal(t, "Entry 1:\nCompany: Company A\nPosition: Software Engineer\n\nEntry 2: Fluent in French", text)
	assert.Equal(t, "", EntriesText(nil))
}
