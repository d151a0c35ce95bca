package kvstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-sleep-remind/internal/config"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/kvstore"
)

// runStoreContract exercises the behaviour every Store backend shares.
func runStoreContract(t *testing.T, newStore func(t *testing.T) kvstore.Store) {
	t.Helper()

	ctx := context.Background()

	t.Run("get of missing key returns ErrKeyNotFound", func(t *testing.T) {
		store := newStore(t)

		value, err := store.Get(ctx, "sleepSchedule")

		assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
		assert.Nil(t, value)
	})

	t.Run("set then get returns value", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "sleepSchedule", []byte(`{"bedtime":"23:00","wakeup":"07:00"}`)))

		value, err := store.Get(ctx, "sleepSchedule")

		require.NoError(t, err)
		assert.JSONEq(t, `{"bedtime":"23:00","wakeup":"07:00"}`, string(value))
	})

	t.Run("set overwrites previous value", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "sleepNotificationIds", []byte(`{"bedtime":"a","wakeup":null}`)))
		require.NoError(t, store.Set(ctx, "sleepNotificationIds", []byte(`{"bedtime":"b","wakeup":"c"}`)))

		value, err := store.Get(ctx, "sleepNotificationIds")

		require.NoError(t, err)
		assert.JSONEq(t, `{"bedtime":"b","wakeup":"c"}`, string(value))
	})

	t.Run("remove deletes value", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "sleepSchedule", []byte(`{}`)))
		require.NoError(t, store.Remove(ctx, "sleepSchedule"))

		_, err := store.Get(ctx, "sleepSchedule")

		assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
	})

	t.Run("remove of missing key succeeds", func(t *testing.T) {
		store := newStore(t)

		assert.NoError(t, store.Remove(ctx, "sleepSchedule"))
		assert.NoError(t, store.Remove(ctx, "sleepSchedule"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "sleepSchedule", []byte(`1`)))
		require.NoError(t, store.Set(ctx, "sleepNotificationIds", []byte(`2`)))
		require.NoError(t, store.Remove(ctx, "sleepSchedule"))

		value, err := store.Get(ctx, "sleepNotificationIds")

		require.NoError(t, err)
		assert.Equal(t, []byte(`2`), value)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) kvstore.Store {
		return kvstore.NewMemoryStore()
	})
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", value))

	value[0] = 'x'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[0] = 'y'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestFileStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) kvstore.Store {
		store, err := kvstore.NewFileStore(afero.NewMemMapFs(), "data")
		require.NoError(t, err)

		return store
	})
}

func TestFileStoreWritesJSONFile(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	store, err := kvstore.NewFileStore(fs, "data")
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "sleepSchedule", []byte(`{"bedtime":"23:00"}`)))

	data, err := afero.ReadFile(fs, filepath.Join("data", "sleepSchedule.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"bedtime":"23:00"}`, string(data))

	exists, err := afero.Exists(fs, filepath.Join("data", "sleepSchedule.json.tmp"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFileStoreRejectsInvalidKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "path traversal", key: "../secret"},
		{name: "separator", key: "a/b"},
		{name: "empty", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := kvstore.NewFileStore(afero.NewMemMapFs(), "data")
			require.NoError(t, err)

			assert.Error(t, store.Set(context.Background(), tt.key, []byte(`1`)))

			_, err = store.Get(context.Background(), tt.key)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, kvstore.ErrKeyNotFound)
		})
	}
}

func TestSQLiteStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) kvstore.Store {
		store, err := kvstore.NewSQLiteStore(":memory:")
		require.NoError(t, err)

		t.Cleanup(func() { _ = store.Close() })

		return store
	})
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sleep.db")

	store, err := kvstore.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "sleepSchedule", []byte(`{"bedtime":"22:30","wakeup":"06:30"}`)))
	require.NoError(t, store.Close())

	reopened, err := kvstore.NewSQLiteStore(path)
	require.NoError(t, err)

	defer reopened.Close()

	value, err := reopened.Get(ctx, "sleepSchedule")
	require.NoError(t, err)
	assert.JSONEq(t, `{"bedtime":"22:30","wakeup":"06:30"}`, string(value))
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(dir string) config.StoreConfig
		wantErr bool
	}{
		{
			name: "memory",
			cfg: func(string) config.StoreConfig {
				return config.StoreConfig{Backend: config.StoreBackendMemory}
			},
		},
		{
			name: "file",
			cfg: func(dir string) config.StoreConfig {
				return config.StoreConfig{Backend: config.StoreBackendFile, Dir: filepath.Join(dir, "data")}
			},
		},
		{
			name: "sqlite creates parent directory",
			cfg: func(dir string) config.StoreConfig {
				return config.StoreConfig{Backend: config.StoreBackendSQLite, SQLitePath: filepath.Join(dir, "nested", "kv.db")}
			},
		},
		{
			name: "unknown backend",
			cfg: func(string) config.StoreConfig {
				return config.StoreConfig{Backend: "redis"}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := kvstore.Open(context.Background(), tt.cfg(t.TempDir()))

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, store)

				return
			}

			require.NoError(t, err)

			defer store.Close()

			require.NoError(t, store.Set(context.Background(), "k", []byte(`1`)))
		})
	}
}
