package store

import (
	"sort"
	"sync"
	"time"

	"kosmos/internal/blobstore"
	"kosmos/internal/event"
	"kosmos/internal/model"
)

// favoriteThreshold is the access count from which a folder counts as a
// favorite.
const favoriteThreshold = 2

// FolderStore is the frequency/recency ledger of scanned folders, keyed by
// path. Entries are never removed individually; the whole ledger clears.
type FolderStore struct {
	notifier
	mu      sync.RWMutex
	kv      blobstore.Store
	bus     event.Bus
	diag    Diag
	entries []model.FolderAccess
}

func NewFolderStore(kv blobstore.Store, bus event.Bus, diag Diag) *FolderStore {
	s := &FolderStore{kv: kv, bus: bus, diag: diag}
	loadJSON(kv, KeyFolderAccess, &s.entries)
	return s
}

// TrackAccess upserts the entry for path: an existing entry gets its count
// incremented and timestamp refreshed, a new one starts at count 1. The
// ledger is persisted after every call; the in-memory update succeeds even
// when the write does not.
func (s *FolderStore) TrackAccess(path string, name string) {
	now := time.Now().UTC()

	s.mu.Lock()
	found := false
	for i := range s.entries {
		if s.entries[i].Path == path {
			s.entries[i].Count++
			s.entries[i].LastAccessed = now
			found = true
			break
		}
	}
	if !found {
		s.entries = append(s.entries, model.FolderAccess{
			Path:         path,
			Name:         name,
			Count:        1,
			LastAccessed: now,
		})
	}
	snapshot := append([]model.FolderAccess(nil), s.entries...)
	s.mu.Unlock()

	persistJSON(s.kv, s.diag, KeyFolderAccess, snapshot)
	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeFolderAccessed, path))
	}
	s.notify()
}

// Favorites returns folders accessed at least twice, descending by count.
// Equal counts keep first-access insertion order (stable sort).
func (s *FolderStore) Favorites() []model.FolderAccess {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.FolderAccess, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.Count >= favoriteThreshold {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i int, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// All returns every ledger entry in insertion order.
func (s *FolderStore) All() []model.FolderAccess {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.FolderAccess(nil), s.entries...)
}

// Clear empties the ledger and removes the persisted blob.
func (s *FolderStore) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	removeBlob(s.kv, s.diag, KeyFolderAccess)
	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeFoldersCleared, nil))
	}
	s.notify()
}
