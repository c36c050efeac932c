package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kosmos/internal/event"
	"kosmos/internal/model"
)

func TestWorkspaceStore_Navigation(t *testing.T) {
	s := NewWorkspaceStore(event.NewBus())

	t.Run("set folder flips loading and keeps the old listing", func(t *testing.T) {
		s.SetFiles([]model.DirEntry{{Name: "old.txt", Path: "/old/old.txt"}})
		s.SetFolder("/new", "new")

		snap := s.Snapshot()
		assert.Equal(t, "/new", snap.Path)
		assert.Equal(t, "new", snap.Name)
		assert.True(t, snap.Loading)
		// Prior listing stays visible while the new one loads.
		require.Len(t, snap.Files, 1)
		assert.Equal(t, "old.txt", snap.Files[0].Name)
	})

	t.Run("set files replaces the listing and ends loading", func(t *testing.T) {
		s.SetFiles([]model.DirEntry{
			{Name: "a.txt", Path: "/new/a.txt"},
			{Name: "b.txt", Path: "/new/b.txt"},
		})

		snap := s.Snapshot()
		assert.False(t, snap.Loading)
		assert.Len(t, snap.Files, 2)
	})

	t.Run("loading override is independent", func(t *testing.T) {
		s.SetLoading(true)
		assert.True(t, s.Snapshot().Loading)
		s.SetLoading(false)
		assert.False(t, s.Snapshot().Loading)
	})

	t.Run("clear resets to the initial state", func(t *testing.T) {
		s.Clear()

		snap := s.Snapshot()
		assert.Empty(t, snap.Path)
		assert.Empty(t, snap.Name)
		assert.Empty(t, snap.Files)
		assert.False(t, snap.Loading)
	})
}

func TestWorkspaceStore_SnapshotIsACopy(t *testing.T) {
	s := NewWorkspaceStore(event.NewBus())
	s.SetFiles([]model.DirEntry{{Name: "a.txt"}})

	snap := s.Snapshot()
	snap.Files[0].Name = "mutated"

	assert.Equal(t, "a.txt", s.Snapshot().Files[0].Name)
}
