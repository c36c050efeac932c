package store

import (
	"sync"

	"kosmos/internal/blobstore"
	"kosmos/internal/event"
	"kosmos/internal/model"
)

// ThemeStore holds the UI theme preference, persisted under KeyTheme. When
// no valid value is stored the injected fallback applies; the composition
// root derives it from config or the shell's OS dark-mode preference.
type ThemeStore struct {
	notifier
	mu    sync.RWMutex
	kv    blobstore.Store
	bus   event.Bus
	diag  Diag
	theme model.Theme
}

func NewThemeStore(kv blobstore.Store, bus event.Bus, diag Diag, fallback model.Theme) *ThemeStore {
	s := &ThemeStore{kv: kv, bus: bus, diag: diag, theme: fallback}

	var raw string
	if loadJSON(kv, KeyTheme, &raw) {
		if theme, ok := model.ParseTheme(raw); ok {
			s.theme = theme
		}
	}
	return s
}

// Theme returns the current theme.
func (s *ThemeStore) Theme() model.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.theme
}

// Set stores and persists the theme.
func (s *ThemeStore) Set(theme model.Theme) {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()

	persistJSON(s.kv, s.diag, KeyTheme, string(theme))
	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeThemeChanged, theme))
	}
	s.notify()
}

// Toggle flips between light and dark and returns the new theme.
func (s *ThemeStore) Toggle() model.Theme {
	s.mu.RLock()
	current := s.theme
	s.mu.RUnlock()

	next := model.ThemeDark
	if current == model.ThemeDark {
		next = model.ThemeLight
	}
	s.Set(next)
	return next
}
