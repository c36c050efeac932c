package store

import (
	"sync"

	"kosmos/internal/event"
	"kosmos/internal/model"
)

// OperationStore holds the outcomes of organize runs for the current
// session plus the transient progress of a running execution. Nothing here
// is persisted; outcomes are ephemeral session data, distinct from the
// durable history ledger.
type OperationStore struct {
	notifier
	mu       sync.RWMutex
	bus      event.Bus
	results  []model.OperationResult
	progress *model.OperationProgress
}

func NewOperationStore(bus event.Bus) *OperationStore {
	return &OperationStore{bus: bus}
}

// AddResult prepends the result of a finished run.
func (s *OperationStore) AddResult(result model.OperationResult) {
	s.mu.Lock()
	s.results = append([]model.OperationResult{result}, s.results...)
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeOperationResult, result))
	}
	s.notify()
}

// Results returns all outcomes, newest first.
func (s *OperationStore) Results() []model.OperationResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.OperationResult(nil), s.results...)
}

// Clear drops all outcomes and any progress snapshot.
func (s *OperationStore) Clear() {
	s.mu.Lock()
	s.results = nil
	s.progress = nil
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeOperationsCleared, nil))
	}
	s.notify()
}

// SetProgress records the latest progress snapshot, last write wins.
func (s *OperationStore) SetProgress(p model.OperationProgress) {
	s.mu.Lock()
	s.progress = &p
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeOperationProgress, p))
	}
	s.notify()
}

// Progress returns the latest progress snapshot, if any.
func (s *OperationStore) Progress() (model.OperationProgress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.progress == nil {
		return model.OperationProgress{}, false
	}
	return *s.progress, true
}
