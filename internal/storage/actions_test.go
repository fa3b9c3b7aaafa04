package storage

import (
	"path/filepath"
	"testing"

	"github.com/berrythewa/copycopy/internal/actions"
	"github.com/berrythewa/copycopy/internal/source"
	"github.com/berrythewa/copycopy/internal/types"
	"github.com/google/uuid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func openTestStore(t *testing.T, path string) *ActionStore {
	t.Helper()
	store, err := NewActionStore(StoreConfig{DBPath: path})
	require.NoError(t, err)
	return store
}

func names(list []actions.CustomAction) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Name)
	}
	return out
}

func TestActionStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "actions.db")
	store := openTestStore(t, path)
	defer store.Close()

	defaults := actions.DefaultActions()

	t.Run("SeededWithDefaults", func(t *testing.T) {
		list, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, defaults, list)
	})

	custom := actions.New("Open in Editor", actions.ShellCommand, "code {text:trimmed}")
	custom.ContentFilter = actions.ContentText
	custom.SourceFilter = actions.SourceTerminal

	t.Run("Add", func(t *testing.T) {
		require.NoError(t, store.Add(custom))

		list, err := store.Load()
		require.NoError(t, err)
		require.Len(t, list, len(defaults)+1)
		assert.Equal(t, custom, list[len(list)-1])

		assert.ErrorIs(t, store.Add(custom), ErrDuplicateAction)
	})

	t.Run("AddInvalid", func(t *testing.T) {
		bad := actions.New("No Template", actions.OpenURL, "")
		assert.Error(t, store.Add(bad))
	})

	t.Run("Update", func(t *testing.T) {
		updated := custom
		updated.Name = "Open in VS Code"
		updated.BuiltIn = true // ignored
		require.NoError(t, store.Update(updated))

		list, err := store.Load()
		require.NoError(t, err)
		last := list[len(list)-1]
		assert.Equal(t, "Open in VS Code", last.Name)
		assert.False(t, last.BuiltIn)

		missing := actions.New("Ghost", actions.OpenFile, "")
		assert.ErrorIs(t, store.Update(missing), ErrActionNotFound)
	})

	t.Run("Enabled", func(t *testing.T) {
		got, err := store.Enabled(types.KindPlainText, source.Terminal, types.EntityNone)
		require.NoError(t, err)
		assert.Contains(t, names(got), "Open in VS Code")
		assert.Contains(t, names(got), "Strip ANSI Codes")

		got, err = store.Enabled(types.KindPlainText, source.Browser, types.EntityNone)
		require.NoError(t, err)
		assert.NotContains(t, names(got), "Open in VS Code")
		assert.NotContains(t, names(got), "Strip ANSI Codes")

		got, err = store.Enabled(types.KindPlainText, source.Other, types.EntityEmail)
		require.NoError(t, err)
		assert.Contains(t, names(got), "Compose Email")
	})

	t.Run("SetEnabled", func(t *testing.T) {
		require.NoError(t, store.SetEnabled(custom.ID, false))
		got, err := store.Enabled(types.KindPlainText, source.Terminal, types.EntityNone)
		require.NoError(t, err)
		assert.NotContains(t, names(got), "Open in VS Code")

		assert.ErrorIs(t, store.SetEnabled(uuid.New(), true), ErrActionNotFound)
	})

	t.Run("Move", func(t *testing.T) {
		before, err := store.Load()
		require.NoError(t, err)
		last := len(before) - 1

		require.NoError(t, store.Move(last, 0))
		after, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, before[last].ID, after[0].ID)
		assert.Equal(t, before[0].ID, after[1].ID)
		assert.Len(t, after, len(before))

		require.NoError(t, store.Move(0, last))
		again, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, before, again)

		assert.ErrorIs(t, store.Move(0, len(before)), ErrInvalidPosition)
		assert.ErrorIs(t, store.Move(-1, 0), ErrInvalidPosition)
	})

	t.Run("RemoveBuiltIn", func(t *testing.T) {
		assert.ErrorIs(t, store.Remove(defaults[0].ID), ErrBuiltInAction)
		assert.ErrorIs(t, store.Remove(uuid.New()), ErrActionNotFound)
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, store.Remove(custom.ID))
		list, err := store.Load()
		require.NoError(t, err)
		assert.Len(t, list, len(defaults))
	})

	t.Run("Reset", func(t *testing.T) {
		require.NoError(t, store.SetEnabled(defaults[0].ID, false))
		require.NoError(t, store.Add(actions.New("Temp", actions.OpenFile, "")))
		require.NoError(t, store.Reset())

		list, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, defaults, list)
	})
}

func TestActionStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.db")

	store := openTestStore(t, path)
	a := actions.New("Persisted", actions.CopyToClipboard, "{text:trimmed}")
	require.NoError(t, store.Add(a))
	require.NoError(t, store.Close())

	store = openTestStore(t, path)
	defer store.Close()

	list, err := store.Load()
	require.NoError(t, err)
	assert.Contains(t, names(list), "Persisted")
}

func TestActionStoreRestoresBuiltIns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.db")

	store := openTestStore(t, path)
	require.NoError(t, store.Save(nil))
	require.NoError(t, store.Close())

	// an emptied store only gets its built-ins back
	store = openTestStore(t, path)
	defer store.Close()

	list, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, actions.DefaultActions(), list)
}

func TestActionStoreMergesMissingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.db")
	defaults := actions.DefaultActions()

	store := openTestStore(t, path)
	user := actions.New("Mine", actions.OpenFile, "")
	require.NoError(t, store.Save([]actions.CustomAction{defaults[1], user}))
	require.NoError(t, store.Close())

	store = openTestStore(t, path)
	defer store.Close()

	list, err := store.Load()
	require.NoError(t, err)
	require.Len(t, list, len(defaults)+1)
	assert.Equal(t, defaults[1].ID, list[0].ID)
	assert.Equal(t, user.ID, list[1].ID)
	assert.Equal(t, defaults[0].ID, list[2].ID)
}

func TestActionStoreCorruptEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.db")
	store := openTestStore(t, path)
	defer store.Close()

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(actionsBucket)).Put(positionKey(999), []byte("{not json"))
	})
	require.NoError(t, err)

	_, err = store.Load()
	assert.ErrorContains(t, err, "failed to unmarshal action")
}
