// Package store holds the workspace state containers: scan snapshot, folder
// access ledger, organize history, operation outcomes, navigation state,
// theme and layout. Stores are owned by the composition root and injected
// where needed; there are no package-level singletons.
//
// Mutations run synchronously to completion. Persistence is best-effort:
// a failed write is logged and reported through the optional Diag callback,
// the in-memory state stays authoritative and the next successful write
// reconciles the stored copy.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"kosmos/internal/blobstore"
)

// Persisted blob keys, one per durable store.
const (
	KeyScan         = "fileStore"
	KeyScanLegacy   = "photoStore" // superseded by KeyScan, deleted on read/write
	KeyHistory      = "workspaceHistory"
	KeyFolderAccess = "folderAccessHistory"
	KeyTheme        = "theme"
)

// Diag receives persistence failures that are otherwise swallowed.
type Diag func(key string, err error)

// notifier implements synchronous change subscriptions. Listeners are
// invoked on the mutating goroutine, after the store's lock is released.
type notifier struct {
	mu        sync.Mutex
	listeners map[string]func()
}

// Subscribe registers fn to run after every accepted mutation. The returned
// handle removes the registration; calling it twice is harmless.
func (n *notifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.listeners == nil {
		n.listeners = make(map[string]func())
	}
	id := uuid.NewString()
	n.listeners[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// persistJSON writes v under key, best-effort.
func persistJSON(kv blobstore.Store, diag Diag, key string, v any) {
	data, err := json.Marshal(v)
	if err == nil {
		err = kv.Set(context.Background(), key, data)
	}
	if err != nil {
		slog.Warn("state write failed", "key", key, "error", err)
		if diag != nil {
			diag(key, err)
		}
	}
}

// removeBlob deletes key, best-effort.
func removeBlob(kv blobstore.Store, diag Diag, key string) {
	if err := kv.Delete(context.Background(), key); err != nil {
		slog.Warn("state delete failed", "key", key, "error", err)
		if diag != nil {
			diag(key, err)
		}
	}
}

// loadJSON rehydrates v from key. Returns false for absent or malformed
// blobs; both mean the store starts empty.
func loadJSON(kv blobstore.Store, key string, v any) bool {
	data, err := kv.Get(context.Background(), key)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}
