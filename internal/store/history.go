package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"kosmos/internal/blobstore"
	"kosmos/internal/event"
	"kosmos/internal/model"
)

// HistoryStore is the append-oriented ledger of past organize runs, newest
// first. Entries are immutable once appended; the only mutations are
// prepend, removal by id and full clear.
type HistoryStore struct {
	notifier
	mu      sync.RWMutex
	kv      blobstore.Store
	bus     event.Bus
	diag    Diag
	entries []model.HistoryEntry
}

func NewHistoryStore(kv blobstore.Store, bus event.Bus, diag Diag) *HistoryStore {
	s := &HistoryStore{kv: kv, bus: bus, diag: diag}
	loadJSON(kv, KeyHistory, &s.entries)
	return s
}

// Add prepends entry and persists the ledger. Blank ID and zero Timestamp
// are filled in. Returns the entry as stored.
func (s *HistoryStore) Add(entry model.HistoryEntry) model.HistoryEntry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	s.mu.Lock()
	s.entries = append([]model.HistoryEntry{entry}, s.entries...)
	snapshot := append([]model.HistoryEntry(nil), s.entries...)
	s.mu.Unlock()

	persistJSON(s.kv, s.diag, KeyHistory, snapshot)
	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeHistoryAdded, entry.ID))
	}
	s.notify()
	return entry
}

// Remove drops the entry with the given id. A second call with the same id
// is a no-op: nothing is persisted and no notification fires.
func (s *HistoryStore) Remove(id string) {
	s.mu.Lock()
	kept := s.entries[:0:0]
	for _, entry := range s.entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(s.entries) {
		s.mu.Unlock()
		return
	}
	s.entries = kept
	snapshot := append([]model.HistoryEntry(nil), kept...)
	s.mu.Unlock()

	persistJSON(s.kv, s.diag, KeyHistory, snapshot)
	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeHistoryRemoved, id))
	}
	s.notify()
}

// Clear empties the ledger and removes the persisted blob.
func (s *HistoryStore) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	removeBlob(s.kv, s.diag, KeyHistory)
	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeHistoryCleared, nil))
	}
	s.notify()
}

// Entries returns the ledger newest-first.
func (s *HistoryStore) Entries() []model.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.HistoryEntry(nil), s.entries...)
}
