package filestorage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKeyValueStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := NewFileKeyValueStore(path)
	require.NoError(t, err)

	// Чтение до первой записи - пустое значение, не ошибка
	value, err := store.Get(ctx, "wishlist")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, store.Set(ctx, "wishlist", []byte(`[{"id":1}]`)))
	require.NoError(t, store.Set(ctx, "session", []byte(`{"token":"t"}`)))

	value, err = store.Get(ctx, "wishlist")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(value))

	// Ключи независимы
	require.NoError(t, store.Clear(ctx, "session"))
	value, err = store.Get(ctx, "session")
	require.NoError(t, err)
	assert.Nil(t, value)
	value, err = store.Get(ctx, "wishlist")
	require.NoError(t, err)
	assert.NotNil(t, value)
}

// Значения читаются другим экземпляром поверх того же файла.
func TestFileKeyValueStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	first, err := NewFileKeyValueStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "wishlist", []byte(`[]`)))

	second, err := NewFileKeyValueStore(path)
	require.NoError(t, err)
	value, err := second.Get(ctx, "wishlist")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(value))
}

func TestFileKeyValueStoreClearMissingKey(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileKeyValueStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	assert.NoError(t, store.Clear(ctx, "nothing"))
}

func TestNewFileKeyValueStoreEmptyPath(t *testing.T) {
	_, err := NewFileKeyValueStore("")
	assert.Error(t, err)
}
