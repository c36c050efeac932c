package store

import (
	"sync"

	"kosmos/internal/event"
	"kosmos/internal/model"
)

// WorkspaceStore is the transient navigation state: which folder the user
// is looking at and its listing. Scoped to the running session, never
// persisted.
type WorkspaceStore struct {
	notifier
	mu    sync.RWMutex
	bus   event.Bus
	state model.WorkspaceFolder
}

func NewWorkspaceStore(bus event.Bus) *WorkspaceStore {
	return &WorkspaceStore{bus: bus, state: emptyWorkspace()}
}

func emptyWorkspace() model.WorkspaceFolder {
	return model.WorkspaceFolder{Files: []model.DirEntry{}}
}

// SetFolder points navigation at a new folder and flips loading on. The
// previous listing is retained until SetFiles replaces it, so the UI keeps
// showing the last known contents while the new one loads.
func (s *WorkspaceStore) SetFolder(path string, name string) {
	s.mu.Lock()
	s.state.Path = path
	s.state.Name = name
	s.state.Loading = true
	s.mu.Unlock()

	s.changed()
}

// SetFiles replaces the listing and flips loading off.
func (s *WorkspaceStore) SetFiles(files []model.DirEntry) {
	s.mu.Lock()
	s.state.Files = append([]model.DirEntry(nil), files...)
	s.state.Loading = false
	s.mu.Unlock()

	s.changed()
}

// SetLoading overrides the loading flag independently.
func (s *WorkspaceStore) SetLoading(loading bool) {
	s.mu.Lock()
	s.state.Loading = loading
	s.mu.Unlock()

	s.changed()
}

// Clear resets navigation to the initial empty state.
func (s *WorkspaceStore) Clear() {
	s.mu.Lock()
	s.state = emptyWorkspace()
	s.mu.Unlock()

	s.changed()
}

// Snapshot returns a copy of the current navigation state.
func (s *WorkspaceStore) Snapshot() model.WorkspaceFolder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	out.Files = append([]model.DirEntry(nil), s.state.Files...)
	return out
}

func (s *WorkspaceStore) changed() {
	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeNavigationChanged, nil))
	}
	s.notify()
}
