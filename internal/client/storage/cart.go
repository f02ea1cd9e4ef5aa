package storage

import (
	"context"

	"github.com/aurea-shop/aurea/internal/models"
)

// CartRecordVersion — текущая версия формата записи корзины
const CartRecordVersion = 1

// CartStorage defines interface for persisting the cart on client
type CartStorage interface {
	// SaveCart stores the cart record, overwriting the previous one
	SaveCart(ctx context.Context, record *CartRecord) error

	// GetCart retrieves the stored cart record.
	// Returns ErrCartNotFound if no cart exists.
	GetCart(ctx context.Context) (*CartRecord, error)
}

// CartRecord — запись корзины в формате {state:{...}, version},
// совместимая с записью гостевой корзины веб-приложения.
type CartRecord struct {
	State   CartState `json:"state"`
	Version int       `json:"version"`
}

// CartState содержит строки корзины и флаги режима
type CartState struct {
	Items []models.CartItem `json:"items"`
	// IsAuthenticated разделяет гостевую и авторизованную корзину
	IsAuthenticated bool `json:"isAuthenticated"`
	// Merged защищает от повторного слияния гостевой корзины
	// в рамках одной авторизованной сессии
	Merged bool `json:"merged"`
}

// NewCartRecord создает пустую гостевую корзину
func NewCartRecord() *CartRecord {
	return &CartRecord{
		State:   CartState{Items: []models.CartItem{}},
		Version: CartRecordVersion,
	}
}
