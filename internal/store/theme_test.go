package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kosmos/internal/blobstore"
	"kosmos/internal/event"
	"kosmos/internal/model"
)

func TestThemeStore(t *testing.T) {
	t.Run("falls back when nothing is stored", func(t *testing.T) {
		s := NewThemeStore(blobstore.NewMemory(), event.NewBus(), nil, model.ThemeDark)
		assert.Equal(t, model.ThemeDark, s.Theme())
	})

	t.Run("falls back on an invalid stored value", func(t *testing.T) {
		kv := blobstore.NewMemory()
		require.NoError(t, kv.Set(context.Background(), KeyTheme, []byte(`"solarized"`)))

		s := NewThemeStore(kv, event.NewBus(), nil, model.ThemeLight)
		assert.Equal(t, model.ThemeLight, s.Theme())
	})

	t.Run("set persists and a reopen restores it", func(t *testing.T) {
		kv := blobstore.NewMemory()
		s := NewThemeStore(kv, event.NewBus(), nil, model.ThemeLight)
		s.Set(model.ThemeDark)

		reopened := NewThemeStore(kv, event.NewBus(), nil, model.ThemeLight)
		assert.Equal(t, model.ThemeDark, reopened.Theme())
	})

	t.Run("toggle flips between light and dark", func(t *testing.T) {
		s := NewThemeStore(blobstore.NewMemory(), event.NewBus(), nil, model.ThemeLight)

		assert.Equal(t, model.ThemeDark, s.Toggle())
		assert.Equal(t, model.ThemeLight, s.Toggle())
	})
}
