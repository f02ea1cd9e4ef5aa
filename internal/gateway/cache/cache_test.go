package cache

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCache_SetGet(t *testing.T) {
	c := New(testLogger())
	defer func() { _ = c.Stop() }()

	ctx := context.Background()

	c.Set(ctx, "products:page=1", "products", []byte(`{"products":[]}`), time.Minute)

	data, ok := c.Get(ctx, "products:page=1")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"products":[]}`), data)

	_, ok = c.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestCache_Expiration(t *testing.T) {
	c := New(testLogger())
	defer func() { _ = c.Stop() }()

	ctx := context.Background()

	c.Set(ctx, "key", "products", []byte("data"), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)
}

func TestCache_InvalidateTag(t *testing.T) {
	c := New(testLogger())
	defer func() { _ = c.Stop() }()

	ctx := context.Background()

	c.Set(ctx, "products:1", "products", []byte("p1"), time.Minute)
	c.Set(ctx, "products:2", "products", []byte("p2"), time.Minute)
	c.Set(ctx, "categories", "categories", []byte("c"), time.Minute)

	removed, err := c.InvalidateTag(ctx, "products")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, ok := c.Get(ctx, "products:1")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "products:2")
	assert.False(t, ok)

	// другой тег не затронут
	_, ok = c.Get(ctx, "categories")
	assert.True(t, ok)
}

func TestCache_StoreWriteThrough(t *testing.T) {
	saved := make(map[string]*Entry)
	store := &StoreMock{
		SaveEntryFunc: func(ctx context.Context, entry *Entry) error {
			saved[entry.Key] = entry
			return nil
		},
		GetEntryFunc: func(ctx context.Context, key string) (*Entry, error) {
			if e, ok := saved[key]; ok {
				return e, nil
			}
			return nil, ErrEntryNotFound
		},
		DeleteTagFunc: func(ctx context.Context, tag string) error { return nil },
		CloseFunc:     func() error { return nil },
	}

	c := New(testLogger(), WithStore(store))
	defer func() { _ = c.Stop() }()

	ctx := context.Background()

	c.Set(ctx, "key", "products", []byte("data"), time.Minute)
	require.Len(t, store.SaveEntryCalls(), 1)
	assert.Equal(t, "products", saved["key"].Tag)
}

func TestCache_GetPromotesFromStore(t *testing.T) {
	store := &StoreMock{
		GetEntryFunc: func(ctx context.Context, key string) (*Entry, error) {
			return &Entry{
				Key:       key,
				Tag:       "categories",
				Data:      []byte("tree"),
				ExpiresAt: time.Now().Add(time.Minute),
			}, nil
		},
		CloseFunc: func() error { return nil },
	}

	c := New(testLogger(), WithStore(store))
	defer func() { _ = c.Stop() }()

	ctx := context.Background()

	data, ok := c.Get(ctx, "categories")
	require.True(t, ok)
	assert.Equal(t, []byte("tree"), data)
	require.Len(t, store.GetEntryCalls(), 1)

	// повторное чтение идет из памяти, store не трогаем
	_, ok = c.Get(ctx, "categories")
	assert.True(t, ok)
	assert.Len(t, store.GetEntryCalls(), 1)
}

func TestCache_GetIgnoresExpiredStoreEntry(t *testing.T) {
	store := &StoreMock{
		GetEntryFunc: func(ctx context.Context, key string) (*Entry, error) {
			return &Entry{
				Key:       key,
				Tag:       "products",
				Data:      []byte("stale"),
				ExpiresAt: time.Now().Add(-time.Minute),
			}, nil
		},
		CloseFunc: func() error { return nil },
	}

	c := New(testLogger(), WithStore(store))
	defer func() { _ = c.Stop() }()

	_, ok := c.Get(context.Background(), "products")
	assert.False(t, ok)
}

func TestCache_InvalidateTagStoreError(t *testing.T) {
	store := &StoreMock{
		SaveEntryFunc: func(ctx context.Context, entry *Entry) error {
			return nil
		},
		GetEntryFunc: func(ctx context.Context, key string) (*Entry, error) {
			return nil, ErrEntryNotFound
		},
		DeleteTagFunc: func(ctx context.Context, tag string) error {
			return errors.New("disk error")
		},
		CloseFunc: func() error { return nil },
	}

	c := New(testLogger(), WithStore(store))
	defer func() { _ = c.Stop() }()

	ctx := context.Background()
	c.Set(ctx, "key", "products", []byte("data"), time.Minute)

	_, err := c.InvalidateTag(ctx, "products")
	require.Error(t, err)

	// память при этом инвалидирована
	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)
}

func TestCache_StoreWriteFailureDoesNotBreakSet(t *testing.T) {
	store := &StoreMock{
		SaveEntryFunc: func(ctx context.Context, entry *Entry) error {
			return errors.New("disk full")
		},
		CloseFunc: func() error { return nil },
	}

	c := New(testLogger(), WithStore(store))
	defer func() { _ = c.Stop() }()

	ctx := context.Background()
	c.Set(ctx, "key", "products", []byte("data"), time.Minute)

	// запись в память прошла, несмотря на ошибку store
	data, ok := c.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("data"), data)
}
