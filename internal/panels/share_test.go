package panels

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteText(_ context.Context, text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func TestSharePanel_CreateAndCopy(t *testing.T) {
	store := newTestStore()
	base, err := url.Parse("https://cv.example.com")
	require.NoError(t, err)
	panel := NewSharePanel(store, base)

	clipboard := &fakeClipboard{}
	assert.ErrorIs(t, panel.Copy(context.Background(), clipboard), ErrNoShareLink)

	link := panel.CreateLink()
	assert.Equal(t, "https://cv.example.com/share/"+store.Snapshot().ID, link)
	assert.Equal(t, link, panel.Link())

	require.NoError(t, panel.Copy(context.Background(), clipboard))
	assert.Equal(t, link, clipboard.text)
	assert.True(t, panel.Copied())

	assert.Equal(t, link, panel.CreateLink(), "derivation is deterministic")
	assert.False(t, panel.Copied())
}

func TestSharePanel_CopyFailure(t *testing.T) {
	panel := NewSharePanel(newTestStore(), nil)
	panel.CreateLink()

	err := panel.Copy(context.Background(), &fakeClipboard{err: errors.New("denied")})
	require.Error(t, err)
	assert.False(t, panel.Copied())
	assert.Equal(t, "Failed to copy link.", panel.ErrorMessage())
}
