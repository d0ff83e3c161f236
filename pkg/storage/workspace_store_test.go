package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dir := t.TempDir()
	cfg := &model.Config{
		DatabaseType: "sqlite",
		DatabaseDir:  dir,
		DatabaseFile: "workspace.db",
		LogFolder:    dir,
		CommandLog:   "commands.log",
		ErrorLog:     "errors.log",
		InfoLog:      "info.log",
	}
	logger, err := log.NewLogger(cfg, log.LevelInfo)
	require.NoError(t, err)
	store, err := NewStorage(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
		logger.Close()
	})
	return store
}

func addTestProfile(t *testing.T, store *Storage, name string) int {
	t.Helper()
	id, err := store.ProfileAdd(model.ProfileInfo{Name: name, PasswordHash: []byte("hash"), Active: true})
	require.NoError(t, err)
	return id
}

func TestRecentFiles(t *testing.T) {
	store := newTestStorage(t)
	profileID := addTestProfile(t, store, "tester")

	t.Run("NewestFirst", func(t *testing.T) {
		require.NoError(t, store.RecentFileAdd(profileID, "/tmp/a.xml"))
		require.NoError(t, store.RecentFileAdd(profileID, "/tmp/b.xml"))

		files, err := store.RecentFileGet(profileID, 10)
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "/tmp/b.xml", files[0].Path)
		assert.Equal(t, "/tmp/a.xml", files[1].Path)
	})

	t.Run("ReopenRefreshesInsteadOfDuplicating", func(t *testing.T) {
		require.NoError(t, store.RecentFileAdd(profileID, "/tmp/a.xml"))

		files, err := store.RecentFileGet(profileID, 10)
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "/tmp/a.xml", files[0].Path)
	})

	t.Run("LimitApplies", func(t *testing.T) {
		files, err := store.RecentFileGet(profileID, 1)
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("OtherProfileSeesNothing", func(t *testing.T) {
		otherID := addTestProfile(t, store, "other")
		files, err := store.RecentFileGet(otherID, 10)
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestSnapshots(t *testing.T) {
	store := newTestStorage(t)
	profileID := addTestProfile(t, store, "tester")

	t.Run("StoresPayload", func(t *testing.T) {
		id, err := store.SnapshotAdd(profileID, "/tmp/a.xml", []byte("<xml/>"), 10)
		require.NoError(t, err)
		assert.Positive(t, id)

		snaps, err := store.SnapshotGet(profileID, 10)
		require.NoError(t, err)
		require.Len(t, snaps, 1)
		assert.Equal(t, []byte("<xml/>"), snaps[0].Payload)
		assert.Equal(t, "/tmp/a.xml", snaps[0].Path)
	})

	t.Run("PrunesToLimit", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			_, err := store.SnapshotAdd(profileID, "/tmp/a.xml", []byte(fmt.Sprintf("payload-%d", i)), 3)
			require.NoError(t, err)
		}

		snaps, err := store.SnapshotGet(profileID, 10)
		require.NoError(t, err)
		require.Len(t, snaps, 3)
		assert.Equal(t, []byte("payload-4"), snaps[0].Payload)
	})
}

func TestProfileStore(t *testing.T) {
	store := newTestStorage(t)

	t.Run("AddAndGet", func(t *testing.T) {
		id := addTestProfile(t, store, "alex")
		profiles, err := store.ProfileGet(model.ProfileInfo{Name: "alex"}, model.ProfileFilter{Name: true})
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, id, profiles[0].ID)
		assert.Equal(t, []byte("hash"), profiles[0].PasswordHash)
		assert.True(t, profiles[0].Active)
	})

	t.Run("GetMissing", func(t *testing.T) {
		profiles, err := store.ProfileGet(model.ProfileInfo{Name: "ghost"}, model.ProfileFilter{Name: true})
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})

	t.Run("Delete", func(t *testing.T) {
		id := addTestProfile(t, store, "temp")
		require.NoError(t, store.ProfileDelete(&model.Profile{ID: id}))
		profiles, err := store.ProfileGet(model.ProfileInfo{Name: "temp"}, model.ProfileFilter{Name: true})
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})

	t.Run("DeleteCascadesWorkspaceRows", func(t *testing.T) {
		id := addTestProfile(t, store, "doomed")
		require.NoError(t, store.RecentFileAdd(id, "/tmp/x.xml"))
		_, err := store.SnapshotAdd(id, "/tmp/x.xml", []byte("payload"), 10)
		require.NoError(t, err)

		require.NoError(t, store.ProfileDelete(&model.Profile{ID: id}))

		files, err := store.RecentFileGet(id, 10)
		require.NoError(t, err)
		assert.Empty(t, files)
		snaps, err := store.SnapshotGet(id, 10)
		require.NoError(t, err)
		assert.Empty(t, snaps)
	})
}
