package storage_test

import (
	"path/filepath"
	"testing"

	"buildops_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetRoundtrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("materials", `[{"id":"m-1"}]`))

	value, ok, err := store.Get("materials")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"m-1"}]`, value)
}

func TestGet_AbsentKeyIsNotAnError(t *testing.T) {
	store := newTestStore(t)

	value, ok, err := store.Get("never-written")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSet_OverwritesPreviousValue(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("sales", "[]"))
	require.NoError(t, store.Set("sales", `[{"id":"s-1"}]`))

	value, ok, err := store.Get("sales")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"s-1"}]`, value)
}

func TestInitializeIfEmpty_SeedsOnceOnly(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.InitializeIfEmpty(map[string]string{
		storage.KeyMaterials: `[{"id":"m-1"}]`,
		storage.KeyCustomers: `[{"id":"c-1"}]`,
	}))

	value, ok, err := store.Get(storage.KeyCustomers)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"c-1"}]`, value)

	// A second call must not clobber existing data.
	require.NoError(t, store.InitializeIfEmpty(map[string]string{
		storage.KeyMaterials: `[]`,
		storage.KeyCustomers: `[]`,
	}))

	value, _, err = store.Get(storage.KeyCustomers)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"c-1"}]`, value)
}

func TestDataSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := storage.New(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("boqs", `[{"id":"b-1"}]`))
	require.NoError(t, store.Close())

	reopened, err := storage.New(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("boqs")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"b-1"}]`, value)
}
