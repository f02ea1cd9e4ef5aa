package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurea-shop/aurea/internal/gateway/cache"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	storage, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = storage.Close()
	})

	return storage
}

func TestSaveGetEntry(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	entry := &cache.Entry{
		Key:       "products:page=1",
		Tag:       "products",
		Data:      []byte(`{"products":[]}`),
		ExpiresAt: time.Now().Add(time.Minute).Truncate(time.Second),
	}

	require.NoError(t, storage.SaveEntry(ctx, entry))

	got, err := storage.GetEntry(ctx, "products:page=1")
	require.NoError(t, err)
	assert.Equal(t, entry.Key, got.Key)
	assert.Equal(t, entry.Tag, got.Tag)
	assert.Equal(t, entry.Data, got.Data)
	assert.Equal(t, entry.ExpiresAt.Unix(), got.ExpiresAt.Unix())
}

func TestGetEntry_NotFound(t *testing.T) {
	storage := setupTestStorage(t)

	_, err := storage.GetEntry(context.Background(), "missing")
	assert.ErrorIs(t, err, cache.ErrEntryNotFound)
}

func TestSaveEntry_Overwrite(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	entry := &cache.Entry{
		Key:       "categories",
		Tag:       "categories",
		Data:      []byte("v1"),
		ExpiresAt: time.Now().Add(time.Minute),
	}
	require.NoError(t, storage.SaveEntry(ctx, entry))

	entry.Data = []byte("v2")
	require.NoError(t, storage.SaveEntry(ctx, entry))

	got, err := storage.GetEntry(ctx, "categories")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got.Data)
}

func TestDeleteTag(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	entries := []*cache.Entry{
		{Key: "products:1", Tag: "products", Data: []byte("p1"), ExpiresAt: time.Now().Add(time.Minute)},
		{Key: "products:2", Tag: "products", Data: []byte("p2"), ExpiresAt: time.Now().Add(time.Minute)},
		{Key: "categories", Tag: "categories", Data: []byte("c"), ExpiresAt: time.Now().Add(time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, storage.SaveEntry(ctx, e))
	}

	require.NoError(t, storage.DeleteTag(ctx, "products"))

	_, err := storage.GetEntry(ctx, "products:1")
	assert.ErrorIs(t, err, cache.ErrEntryNotFound)
	_, err = storage.GetEntry(ctx, "products:2")
	assert.ErrorIs(t, err, cache.ErrEntryNotFound)

	// другой тег не затронут
	_, err = storage.GetEntry(ctx, "categories")
	assert.NoError(t, err)
}

func TestDeleteExpired(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	now := time.Now()

	expired := &cache.Entry{Key: "old", Tag: "products", Data: []byte("x"), ExpiresAt: now.Add(-time.Minute)}
	fresh := &cache.Entry{Key: "new", Tag: "products", Data: []byte("y"), ExpiresAt: now.Add(time.Minute)}

	require.NoError(t, storage.SaveEntry(ctx, expired))
	require.NoError(t, storage.SaveEntry(ctx, fresh))

	require.NoError(t, storage.DeleteExpired(ctx, now))

	_, err := storage.GetEntry(ctx, "old")
	assert.ErrorIs(t, err, cache.ErrEntryNotFound)

	_, err = storage.GetEntry(ctx, "new")
	assert.NoError(t, err)
}
