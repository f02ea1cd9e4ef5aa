package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/aurea-shop/aurea/internal/client/storage"
)

// Ключ записи корзины совпадает с ключом гостевой корзины
// веб-приложения, формат записи общий: {state:{items:[...]}, version}
var cartKey = []byte("aurea-guest-cart")

// SaveCart stores the cart record
func (s *Storage) SaveCart(ctx context.Context, record *storage.CartRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal cart record: %w", err)
		}

		if err := bucket.Put(cartKey, data); err != nil {
			return fmt.Errorf("failed to save cart record: %w", err)
		}

		return nil
	})
}

// GetCart retrieves the stored cart record
func (s *Storage) GetCart(ctx context.Context) (*storage.CartRecord, error) {
	var record *storage.CartRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}

		data := bucket.Get(cartKey)
		if data == nil {
			return storage.ErrCartNotFound
		}

		record = &storage.CartRecord{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to unmarshal cart record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return record, nil
}
