package boltdb

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/aurea-shop/aurea/internal/client/storage"
	"github.com/aurea-shop/aurea/internal/models"
)

func TestSaveGetCart(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	record := storage.NewCartRecord()
	record.State.Items = []models.CartItem{
		{ID: "p1", Name: "Silk Dress", Price: 450, Quantity: 2},
		{ID: "p2", VariantID: "v1", Name: "Leather Bag", Price: 1200, Quantity: 1},
	}

	require.NoError(t, store.SaveCart(ctx, record))

	got, err := store.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, storage.CartRecordVersion, got.Version)
	require.Len(t, got.State.Items, 2)
	assert.Equal(t, "p1", got.State.Items[0].ID)
	assert.Equal(t, "p2:v1", got.State.Items[1].Key())
	assert.False(t, got.State.IsAuthenticated)
}

func TestGetCart_NotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetCart(context.Background())
	assert.ErrorIs(t, err, storage.ErrCartNotFound)
}

func TestSaveCart_Overwrites(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	record := storage.NewCartRecord()
	record.State.Items = []models.CartItem{{ID: "p1", Quantity: 2}}
	require.NoError(t, store.SaveCart(ctx, record))

	// Очистка корзины — это сохранение пустой записи,
	// отдельной операции удаления нет
	require.NoError(t, store.SaveCart(ctx, storage.NewCartRecord()))

	got, err := store.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.State.Items)
}

func TestCartRecord_WireFormat(t *testing.T) {
	// Формат записи совместим с гостевой корзиной веб-приложения:
	// {state:{items:[...]}, version}
	store := newTestStorage(t)
	ctx := context.Background()

	record := storage.NewCartRecord()
	record.State.Items = []models.CartItem{{ID: "p1", Quantity: 1}}
	require.NoError(t, store.SaveCart(ctx, record))

	var raw map[string]json.RawMessage
	err := store.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketCart).Get(cartKey)
		return json.Unmarshal(data, &raw)
	})
	require.NoError(t, err)
	assert.Contains(t, raw, "state")
	assert.Contains(t, raw, "version")
}
