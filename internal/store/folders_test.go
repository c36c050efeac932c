package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kosmos/internal/blobstore"
	"kosmos/internal/event"
)

// failingKV rejects every write so tests can exercise the best-effort
// persistence path.
type failingKV struct {
	*blobstore.Memory
}

var errDiskFull = errors.New("disk full")

func (f *failingKV) Set(_ context.Context, _ string, _ []byte) error {
	return errDiskFull
}

func TestFolderStore_TrackAccess(t *testing.T) {
	t.Run("one entry per distinct path with call counts", func(t *testing.T) {
		s := NewFolderStore(blobstore.NewMemory(), event.NewBus(), nil)

		s.TrackAccess("/a", "a")
		s.TrackAccess("/b", "b")
		s.TrackAccess("/a", "a")
		s.TrackAccess("/a", "a")
		s.TrackAccess("/c", "c")

		all := s.All()
		require.Len(t, all, 3)

		counts := map[string]int{}
		for _, entry := range all {
			counts[entry.Path] = entry.Count
		}
		assert.Equal(t, map[string]int{"/a": 3, "/b": 1, "/c": 1}, counts)
	})

	t.Run("repeat access refreshes the timestamp", func(t *testing.T) {
		s := NewFolderStore(blobstore.NewMemory(), event.NewBus(), nil)

		s.TrackAccess("/a", "a")
		first := s.All()[0].LastAccessed
		s.TrackAccess("/a", "a")
		second := s.All()[0].LastAccessed

		assert.False(t, second.Before(first))
	})

	t.Run("ledger survives a reopen", func(t *testing.T) {
		kv := blobstore.NewMemory()
		s := NewFolderStore(kv, event.NewBus(), nil)
		s.TrackAccess("/a", "a")
		s.TrackAccess("/a", "a")

		reopened := NewFolderStore(kv, event.NewBus(), nil)
		all := reopened.All()
		require.Len(t, all, 1)
		assert.Equal(t, 2, all[0].Count)
	})
}

func TestFolderStore_Favorites(t *testing.T) {
	s := NewFolderStore(blobstore.NewMemory(), event.NewBus(), nil)

	// /first and /second tie at 2 accesses, /top leads with 3, /once stays out.
	s.TrackAccess("/first", "first")
	s.TrackAccess("/second", "second")
	s.TrackAccess("/top", "top")
	s.TrackAccess("/first", "first")
	s.TrackAccess("/second", "second")
	s.TrackAccess("/top", "top")
	s.TrackAccess("/top", "top")
	s.TrackAccess("/once", "once")

	favorites := s.Favorites()
	require.Len(t, favorites, 3)

	assert.Equal(t, "/top", favorites[0].Path)
	// Equal counts keep insertion order.
	assert.Equal(t, "/first", favorites[1].Path)
	assert.Equal(t, "/second", favorites[2].Path)

	for _, favorite := range favorites {
		assert.GreaterOrEqual(t, favorite.Count, 2)
	}
}

func TestFolderStore_Clear(t *testing.T) {
	kv := blobstore.NewMemory()
	s := NewFolderStore(kv, event.NewBus(), nil)
	s.TrackAccess("/a", "a")

	s.Clear()

	assert.Empty(t, s.All())
	_, err := kv.Get(context.Background(), KeyFolderAccess)
	assert.ErrorIs(t, err, blobstore.ErrKeyNotFound)
}

func TestFolderStore_PersistFailureIsSwallowed(t *testing.T) {
	var diagKey string
	var diagErr error
	kv := &failingKV{Memory: blobstore.NewMemory()}
	s := NewFolderStore(kv, event.NewBus(), func(key string, err error) {
		diagKey = key
		diagErr = err
	})

	// Must not panic; the in-memory update still lands.
	s.TrackAccess("/a", "a")

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, 1, all[0].Count)
	assert.Equal(t, KeyFolderAccess, diagKey)
	assert.ErrorIs(t, diagErr, errDiskFull)
}
