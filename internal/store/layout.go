package store

import (
	"sync"

	"kosmos/internal/event"
	"kosmos/internal/layout"
	"kosmos/internal/model"
)

// LayoutStore tracks the active panel arrangement. SetLayout replaces the
// whole arrangement with the catalog entry, discarding any visibility edits
// made against the previous one.
type LayoutStore struct {
	notifier
	mu      sync.RWMutex
	bus     event.Bus
	current layout.Config
}

func NewLayoutStore(bus event.Bus) *LayoutStore {
	cfg, _ := layout.Lookup(layout.Default)
	return &LayoutStore{bus: bus, current: cfg}
}

// Current returns a copy of the active layout.
func (s *LayoutStore) Current() layout.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.Clone()
}

// SetLayout activates the catalog entry for id.
func (s *LayoutStore) SetLayout(id layout.ID) error {
	cfg, ok := layout.Lookup(id)
	if !ok {
		return model.ErrLayoutNotFound
	}

	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeLayoutChanged, id))
	}
	s.notify()
	return nil
}

// SetPanelVisibility flips the visibility flag of every panel with the
// given id across all regions of the active layout. An unknown panel id is
// a silent no-op.
func (s *LayoutStore) SetPanelVisibility(panelID layout.PanelID, visible bool) {
	s.mu.Lock()
	matched := false
	for region, panels := range s.current.Panels {
		for i := range panels {
			if panels[i].ID == panelID {
				panels[i].Visible = visible
				matched = true
			}
		}
		s.current.Panels[region] = panels
	}
	s.mu.Unlock()

	if !matched {
		return
	}
	if s.bus != nil {
		s.bus.Publish(event.New(event.TypePanelToggled, panelID))
	}
	s.notify()
}
