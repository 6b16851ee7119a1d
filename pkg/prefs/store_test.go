package prefs_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrymomot/qrstudio/pkg/prefs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeValid(t *testing.T) {
	t.Parallel()

	assert.True(t, prefs.ThemeLight.Valid())
	assert.True(t, prefs.ThemeDark.Valid())
	assert.False(t, prefs.Theme("sepia").Valid())
	assert.False(t, prefs.Theme("").Valid())
}

func TestThemeToggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, prefs.ThemeDark, prefs.ThemeLight.Toggle())
	assert.Equal(t, prefs.ThemeLight, prefs.ThemeDark.Toggle())
	assert.Equal(t, prefs.ThemeDark, prefs.Theme("").Toggle(), "unset theme toggles to dark from the light default")
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	t.Run("defaults to light", func(t *testing.T) {
		t.Parallel()
		store := prefs.NewMemoryStore()

		theme, err := store.Theme(context.Background())

		require.NoError(t, err)
		assert.Equal(t, prefs.ThemeLight, theme)
	})

	t.Run("round-trips the preference", func(t *testing.T) {
		t.Parallel()
		store := prefs.NewMemoryStore()

		require.NoError(t, store.SetTheme(context.Background(), prefs.ThemeDark))

		theme, err := store.Theme(context.Background())
		require.NoError(t, err)
		assert.Equal(t, prefs.ThemeDark, theme)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Parallel()
		store := prefs.NewMemoryStore()

		err := store.SetTheme(context.Background(), prefs.Theme("sepia"))

		assert.True(t, errors.Is(err, prefs.ErrInvalidTheme))
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()
		store := prefs.NewMemoryStore()

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = store.SetTheme(context.Background(), prefs.ThemeDark)
			}()
			go func() {
				defer wg.Done()
				_, _ = store.Theme(context.Background())
			}()
		}
		wg.Wait()

		theme, err := store.Theme(context.Background())
		require.NoError(t, err)
		assert.Equal(t, prefs.ThemeDark, theme)
	})
}
