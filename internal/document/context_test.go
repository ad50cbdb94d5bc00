package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_ReturnsAttachedStore(t *testing.T) {
	store := NewSessionStore()
	ctx := NewContext(context.Background(), store)

	assert.Same(t, store, FromContext(ctx))
}

func TestFromContext_PanicsOutsideSession(t *testing.T) {
	assert.PanicsWithValue(t,
		"document: store accessed outside an active session; wrap the context with document.NewContext",
		func() { FromContext(context.Background()) })

	assert.Panics(t, func() { FromContext(NewContext(context.Background(), nil)) })
}

func TestSeed_UsesGeneratorForEveryID(t *testing.T) {
	cv := Seed(sequentialIDs("id"))

	assert.Equal(t, "id-1", cv.ID)
	assert.Equal(t, DefaultSectionNames, sectionNames(cv))
	for i, s := range cv.Sections {
		assert.NotEmpty(t, s.ID)
		assert.NotNil(t, s.Entries, "section %d", i)
	}
	assert.Equal(t, DefaultTheme(), cv.Theme)
}
