package prefs

import (
	"context"
	"sync"
)

// Key is the fixed storage key for the theme preference.
const Key = "qrstudio:theme"

// Theme is the page appearance preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a recognized theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Store persists the theme preference. Implementations must read a missing
// or unrecognized value as ThemeLight.
type Store interface {
	Theme(ctx context.Context) (Theme, error)
	SetTheme(ctx context.Context, t Theme) error
}

// MemoryStore keeps the preference in process memory. Safe for concurrent
// use.
type MemoryStore struct {
	mu    sync.RWMutex
	theme Theme
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Theme(ctx context.Context) (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.theme.Valid() {
		return ThemeLight, nil
	}
	return s.theme, nil
}

func (s *MemoryStore) SetTheme(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return ErrInvalidTheme
	}

	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()
	return nil
}
