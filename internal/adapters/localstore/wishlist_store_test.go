package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-frontend/internal/core/domain"
)

// fakeKV - in-memory реализация KeyValueStorePort для тестов.
type fakeKV struct {
	data map[string][]byte
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	return f.data[key], nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	f.data[key] = value
	return nil
}

func (f *fakeKV) Clear(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func record(id int64, title string) domain.PropertyRecord {
	return domain.PropertyRecord{
		ID:            id,
		PropertyTitle: title,
		Location:      "Bangalore",
		PropertyType:  domain.SegmentBuy,
		Price:         40000,
	}
}

func TestWishlistToggleAddsAndRemoves(t *testing.T) {
	ctx := context.Background()
	store, err := NewWishlistStore(newFakeKV())
	require.NoError(t, err)

	items, err := store.Toggle(ctx, record(1, "Villa"))
	require.NoError(t, err)
	require.Len(t, items, 1)

	contains, err := store.Contains(ctx, 1)
	require.NoError(t, err)
	assert.True(t, contains)

	// Повторный toggle того же объекта убирает его
	items, err = store.Toggle(ctx, record(1, "Villa"))
	require.NoError(t, err)
	assert.Empty(t, items)

	contains, err = store.Contains(ctx, 1)
	require.NoError(t, err)
	assert.False(t, contains)
}

func TestWishlistPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store, err := NewWishlistStore(newFakeKV())
	require.NoError(t, err)

	_, err = store.Toggle(ctx, record(3, "Villa"))
	require.NoError(t, err)
	_, err = store.Toggle(ctx, record(1, "Flat"))
	require.NoError(t, err)
	items, err := store.Toggle(ctx, record(2, "Plot"))
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, int64(1), items[1].ID)
	assert.Equal(t, int64(2), items[2].ID)
}

// Избранное переживает пересоздание хранилища поверх того же KV:
// каждая мутация сохраняется синхронно до возврата.
func TestWishlistSurvivesReload(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()

	store, err := NewWishlistStore(kv)
	require.NoError(t, err)
	_, err = store.Toggle(ctx, record(7, "Villa"))
	require.NoError(t, err)

	reloaded, err := NewWishlistStore(kv)
	require.NoError(t, err)

	items, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].ID)
	assert.Equal(t, "Villa", items[0].PropertyTitle)
}

func TestWishlistRemove(t *testing.T) {
	ctx := context.Background()
	store, err := NewWishlistStore(newFakeKV())
	require.NoError(t, err)

	_, err = store.Toggle(ctx, record(1, "Villa"))
	require.NoError(t, err)
	_, err = store.Toggle(ctx, record(2, "Flat"))
	require.NoError(t, err)

	items, err := store.Remove(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)

	// Удаление отсутствующего объекта не ошибка
	items, err = store.Remove(ctx, 99)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewSessionStore(newFakeKV())
	require.NoError(t, err)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	session := domain.Session{Token: "jwt-token", Username: "alice", Role: "BUYER"}
	require.NoError(t, store.Save(ctx, session))

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, session, *loaded)

	require.NoError(t, store.Clear(ctx))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
