package store

import (
	"context"
	"encoding/json"
	"sync"

	"kosmos/internal/blobstore"
	"kosmos/internal/event"
	"kosmos/internal/model"
)

// ScanStore owns the current scan snapshot. The snapshot is replaced
// wholesale on each new scan and persisted under KeyScan.
type ScanStore struct {
	notifier
	mu     sync.RWMutex
	kv     blobstore.Store
	bus    event.Bus
	diag   Diag
	result *model.ScanResult
}

func NewScanStore(kv blobstore.Store, bus event.Bus, diag Diag) *ScanStore {
	s := &ScanStore{kv: kv, bus: bus, diag: diag}
	s.result = loadScanResult(kv)
	// The legacy key is cleared whenever the modern key is touched.
	removeBlob(kv, diag, KeyScanLegacy)
	return s
}

// loadScanResult rehydrates the persisted snapshot. A blob without a files
// sequence, or one that does not parse, is discarded; rehydration never
// fails loudly.
func loadScanResult(kv blobstore.Store) *model.ScanResult {
	data, err := kv.Get(context.Background(), KeyScan)
	if err != nil {
		return nil
	}

	var probe struct {
		Files *[]model.FileMetadata `json:"files"`
	}
	if json.Unmarshal(data, &probe) != nil || probe.Files == nil {
		return nil
	}

	var result model.ScanResult
	if json.Unmarshal(data, &result) != nil {
		return nil
	}
	return &result
}

// SetScanResult replaces the snapshot wholesale and persists it.
func (s *ScanStore) SetScanResult(result model.ScanResult) {
	s.mu.Lock()
	s.result = &result
	s.mu.Unlock()

	persistJSON(s.kv, s.diag, KeyScan, result)
	removeBlob(s.kv, s.diag, KeyScanLegacy)
	s.publish(event.TypeScanUpdated, result.RootPath)
	s.notify()
}

// Clear drops the snapshot and removes the persisted copy, including any
// copy under the superseded legacy key.
func (s *ScanStore) Clear() {
	s.mu.Lock()
	s.result = nil
	s.mu.Unlock()

	removeBlob(s.kv, s.diag, KeyScan)
	removeBlob(s.kv, s.diag, KeyScanLegacy)
	s.publish(event.TypeScanCleared, nil)
	s.notify()
}

// UpdateFile merges update into the file matching path and re-persists the
// snapshot. A missing path is a silent no-op. Stats keep their scan-time
// values; per-file edits do not recompute them.
func (s *ScanStore) UpdateFile(path string, update model.FileUpdate) {
	s.mu.Lock()
	if s.result == nil {
		s.mu.Unlock()
		return
	}

	matched := false
	files := make([]model.FileMetadata, len(s.result.Files))
	for i, f := range s.result.Files {
		if f.FilePath == path {
			files[i] = update.Apply(f)
			matched = true
			continue
		}
		files[i] = f
	}
	if !matched {
		s.mu.Unlock()
		return
	}

	next := *s.result
	next.Files = files
	s.result = &next
	snapshot := next
	s.mu.Unlock()

	persistJSON(s.kv, s.diag, KeyScan, snapshot)
	s.publish(event.TypeScanFileUpdated, path)
	s.notify()
}

// Result returns the current snapshot, or nil when no scan is held. The
// files slice is copied so callers cannot mutate store state.
func (s *ScanStore) Result() *model.ScanResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return nil
	}
	out := *s.result
	out.Files = append([]model.FileMetadata(nil), s.result.Files...)
	return &out
}

// FileCount reports the number of files in the current snapshot.
func (s *ScanStore) FileCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return 0
	}
	return len(s.result.Files)
}

// TotalSize reports the scan-time total size from stats.
func (s *ScanStore) TotalSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return 0
	}
	return s.result.Stats.TotalSize
}

// Screenshots returns the files flagged as screenshots.
func (s *ScanStore) Screenshots() []model.FileMetadata {
	return s.filter(func(f model.FileMetadata) bool { return f.IsScreenshot })
}

// NonScreenshots returns the files not flagged as screenshots.
func (s *ScanStore) NonScreenshots() []model.FileMetadata {
	return s.filter(func(f model.FileMetadata) bool { return !f.IsScreenshot })
}

// Duplicates returns the files flagged as duplicates.
func (s *ScanStore) Duplicates() []model.FileMetadata {
	return s.filter(func(f model.FileMetadata) bool { return f.IsDuplicate })
}

// FilesByType returns the files of the given type.
func (s *ScanStore) FilesByType(t model.FileType) []model.FileMetadata {
	return s.filter(func(f model.FileMetadata) bool { return f.FileType == t })
}

func (s *ScanStore) filter(keep func(model.FileMetadata) bool) []model.FileMetadata {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return []model.FileMetadata{}
	}
	out := make([]model.FileMetadata, 0, len(s.result.Files))
	for _, f := range s.result.Files {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

func (s *ScanStore) publish(t event.Type, payload any) {
	if s.bus != nil {
		s.bus.Publish(event.New(t, payload))
	}
}
