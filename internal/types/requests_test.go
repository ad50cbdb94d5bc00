package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSectionRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateSectionRequest
		wantErr bool
	}{
		{name: "valid", req: CreateSectionRequest{Name: "Awards", Type: SectionText}},
		{name: "valid with id", req: CreateSectionRequest{ID: "x", Name: "Awards", Type: SectionCustom}},
		{name: "missing name", req: CreateSectionRequest{Type: SectionText}, wantErr: true},
		{name: "unknown type", req: CreateSectionRequest{Name: "Awards", Type: "table"}, wantErr: true},
		{name: "name too long", req: CreateSectionRequest{Name: strings.Repeat("a", 101), Type: SectionList}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReorderSectionsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ReorderSectionsRequest{SourceIndex: 0, DestinationIndex: 3}).Validate())
	assert.Error(t, (&ReorderSectionsRequest{SourceIndex: -1, DestinationIndex: 0}).Validate())
}

func TestReviewRequest_Validate(t *testing.T) {
	assert.NoError(t, Validate(ReviewRequest{Text: "x", SectionType: "summary", Service: ServiceClaude}))
	assert.Error(t, Validate(ReviewRequest{Text: "x", SectionType: "summary", Service: "mistral"}))
	assert.Error(t, Validate(ReviewRequest{SectionType: "summary", Service: ServiceGemini}))
}

func TestTranslateRequest_LanguagesMatchValidation(t *testing.T) {
	for _, lang := range Languages {
		req := TranslateRequest{Service: ServiceOpenAI, TargetLanguage: lang.ID}
		assert.NoError(t, Validate(req), lang.ID)
	}
	assert.Error(t, Validate(TranslateRequest{Service: ServiceOpenAI, TargetLanguage: "klingon"}))
}

func TestLanguageByID(t *testing.T) {
	lang, ok := LanguageByID("japanese")
	require.True(t, ok)
	assert.Equal(t, "Japanese", lang.Name)

	_, ok = LanguageByID("")
	assert.False(t, ok)
	_, ok = LanguageByID("Japanese")
	assert.False(t, ok, "ids are case sensitive")
}

func TestSectionType_Valid(t *testing.T) {
	for _, st := range SectionTypes {
		assert.True(t, st.Valid())
	}
	assert.False(t, SectionType("table").Valid())
	assert.True(t, ServiceClaude.Valid())
	assert.False(t, AIService("").Valid())
}
