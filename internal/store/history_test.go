package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kosmos/internal/blobstore"
	"kosmos/internal/event"
	"kosmos/internal/model"
)

func TestHistoryStore_Add(t *testing.T) {
	t.Run("newest entry is always at index 0", func(t *testing.T) {
		s := NewHistoryStore(blobstore.NewMemory(), event.NewBus(), nil)

		for i := 0; i < 5; i++ {
			s.Add(model.HistoryEntry{
				ID:         fmt.Sprintf("run-%d", i),
				FolderPath: "/photos",
				Status:     model.HistorySuccess,
			})
			entries := s.Entries()
			require.Len(t, entries, i+1)
			assert.Equal(t, fmt.Sprintf("run-%d", i), entries[0].ID)
		}
	})

	t.Run("fills in blank id and timestamp", func(t *testing.T) {
		s := NewHistoryStore(blobstore.NewMemory(), event.NewBus(), nil)

		stored := s.Add(model.HistoryEntry{FolderPath: "/photos", Status: model.HistoryWarning})

		assert.NotEmpty(t, stored.ID)
		assert.False(t, stored.Timestamp.IsZero())
		assert.Equal(t, stored, s.Entries()[0])
	})

	t.Run("ledger survives a reopen newest-first", func(t *testing.T) {
		kv := blobstore.NewMemory()
		s := NewHistoryStore(kv, event.NewBus(), nil)
		s.Add(model.HistoryEntry{ID: "old"})
		s.Add(model.HistoryEntry{ID: "new"})

		reopened := NewHistoryStore(kv, event.NewBus(), nil)
		entries := reopened.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "new", entries[0].ID)
		assert.Equal(t, "old", entries[1].ID)
	})

	t.Run("malformed persisted ledger starts empty", func(t *testing.T) {
		kv := blobstore.NewMemory()
		require.NoError(t, kv.Set(context.Background(), KeyHistory, []byte("[{broken")))

		s := NewHistoryStore(kv, event.NewBus(), nil)
		assert.Empty(t, s.Entries())
	})
}

func TestHistoryStore_Remove(t *testing.T) {
	s := NewHistoryStore(blobstore.NewMemory(), event.NewBus(), nil)
	s.Add(model.HistoryEntry{ID: "keep"})
	s.Add(model.HistoryEntry{ID: "drop"})

	fired := 0
	unsubscribe := s.Subscribe(func() { fired++ })
	defer unsubscribe()

	s.Remove("drop")
	require.Len(t, s.Entries(), 1)
	assert.Equal(t, "keep", s.Entries()[0].ID)
	assert.Equal(t, 1, fired)

	// Removing the same id again is a no-op and stays silent.
	s.Remove("drop")
	assert.Len(t, s.Entries(), 1)
	assert.Equal(t, 1, fired)
}

func TestHistoryStore_Clear(t *testing.T) {
	kv := blobstore.NewMemory()
	s := NewHistoryStore(kv, event.NewBus(), nil)
	s.Add(model.HistoryEntry{ID: "a"})

	s.Clear()

	assert.Empty(t, s.Entries())
	_, err := kv.Get(context.Background(), KeyHistory)
	assert.ErrorIs(t, err, blobstore.ErrKeyNotFound)
}
