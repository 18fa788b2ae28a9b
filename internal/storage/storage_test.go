package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactories lets the same contract tests run against every Store
// implementation.
var storeFactories = map[string]func(t *testing.T) Store{
	"sqlite": func(t *testing.T) Store {
		store, err := New(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
		return store
	},
	"memory": func(t *testing.T) Store {
		return NewMemory()
	},
}

func TestStore_GetMissingKey(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			ctx := context.Background()

			value, ok, err := store.Get(ctx, "absent")

			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, value)
		})
	}
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, KeyTasks, `[{"id":1}]`))

			value, ok, err := store.Get(ctx, KeyTasks)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":1}]`, value)
		})
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, KeyTheme, "light"))
			require.NoError(t, store.Set(ctx, KeyTheme, "dark"))

			value, ok, err := store.Get(ctx, KeyTheme)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "dark", value)
		})
	}
}

func TestStore_KeysAreIndependent(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, KeyTasks, "[]"))
			require.NoError(t, store.Set(ctx, KeyCategories, `["Work"]`))
			require.NoError(t, store.Set(ctx, KeyTasks, `[{"id":2}]`))

			value, ok, err := store.Get(ctx, KeyCategories)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `["Work"]`, value)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, KeyUser, `{"username":"sam"}`))
			require.NoError(t, store.Delete(ctx, KeyUser))

			_, ok, err := store.Get(ctx, KeyUser)
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting an absent key is not an error
			assert.NoError(t, store.Delete(ctx, KeyUser))
		})
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, KeyLocation, `{"latitude":51.5,"longitude":-0.1}`))
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, KeyLocation)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"latitude":51.5,"longitude":-0.1}`, value)
}
