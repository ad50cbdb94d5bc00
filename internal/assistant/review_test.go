package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/llm"
	"github.com/jonathan/cv-builder/internal/types"
)

func TestCheckStrongVerb(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"Strong verb - built", "built a system", true},
		{"Strong verb - led", "led a team of 4", true},
		{"Past tense ed", "migrated the database", true},
		{"Weak start - I", "i worked on", false},
		{"Weak start - The", "the system was", false},
		{"Empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, checkStrongVerb(tt.text), "checkStrongVerb(%q)", tt.text)
		})
	}
}

func TestCheckQuantifiedImpact(t *testing.T) {
	assert.True(t, checkQuantifiedImpact("Increased revenue by 50%"))
	assert.True(t, checkQuantifiedImpact("Handled 1M requests"))
	assert.False(t, checkQuantifiedImpact("Built a great system"))
	assert.False(t, checkQuantifiedImpact(""))
}

func TestFindWeakPhrases(t *testing.T) {
	assert.Equal(t, []string{"was responsible for"}, findWeakPhrases("I was Responsible For hiring"))
	assert.Equal(t, []string{"worked on", "helped with"}, findWeakPhrases("worked on X and helped with Y"))
	assert.Nil(t, findWeakPhrases("Led the platform team"))
}

func TestImprove(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"worked on the   checkout flow", "Built the checkout flow."},
		{"i was responsible for web apps", "I owned web apps."},
		{"Shipped it!", "Shipped it!"},
		{"  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, improve(tt.in), tt.in)
	}
}

func TestReviewer_Summary(t *testing.T) {
	r := NewReviewer(llm.NewRegistry())

	resp, err := r.Review(types.ReviewRequest{
		Text:        "i was responsible for web apps",
		SectionType: types.SummarySectionType,
		Service:     types.ServiceClaude,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"I owned web apps."}, resp.ImprovedDescriptions)
	assert.Len(t, resp.Issues, 2)
}

func TestReviewer_SectionEntries(t *testing.T) {
	r := NewReviewer(llm.NewRegistry())
	text := "Entry 1:\nCompany: Acme\nDescription: worked on the checkout flow\n\n" +
		"Entry 2: Fluent in French\n\n" +
		"Entry 3:\nCompany: Globex"

	resp, err := r.Review(types.ReviewRequest{Text: text, SectionType: "list", Service: types.ServiceOpenAI})
	require.NoError(t, err)

	assert.Equal(t, []string{"Built the checkout flow.", ""}, resp.ImprovedDescriptions,
		"one description per record entry, text entries skipped")
	assert.Contains(t, resp.Issues, "Entry 1: quantify the impact with numbers or percentages.")
	assert.Contains(t, resp.Issues, `Entry 1: replace the weak phrase "worked on".`)
	assert.Contains(t, resp.Issues, "Entry 3: add a description of what you did.")
}

func TestReviewer_MultilineDescription(t *testing.T) {
	entries := parseEntries("Entry 1:\nDescription: Led 3 launches\nacross two regions\nCompany: Acme")
	require.Len(t, entries, 1)
	assert.Equal(t, "Led 3 launches\nacross two regions", entries[0].description)
}

func TestReviewer_NothingToImprove(t *testing.T) {
	r := NewReviewer(llm.NewRegistry())

	resp, err := r.Review(types.ReviewRequest{
		Text:        "Entry 1:\nSkill: Go\nLevel: Advanced",
		SectionType: "list",
		Service:     types.ServiceGemini,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.ImprovedDescriptions)
	assert.NotNil(t, resp.ImprovedDescriptions, "encodes as [] rather than null")
	assert.NotEmpty(t, resp.Issues)
}

func TestReviewer_UnknownService(t *testing.T) {
	_, err := NewReviewer(llm.NewRegistry()).Review(types.ReviewRequest{Text: "x", SectionType: "summary", Service: "mistral"})
	assert.Error(t, err)
}
