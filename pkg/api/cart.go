package api

// CartLine представляет одну позицию корзины в wire-формате
// для синхронизации с серверной корзиной
type CartLine struct {
	ProductID string `json:"productId"`           // ID товара
	VariantID string `json:"variantId,omitempty"` // ID варианта, если есть
	Quantity  int    `json:"quantity"`            // количество, всегда > 0
}

// CartSyncRequest представляет запрос на отправку локальной корзины
// на сервер. Серверная корзина — внешняя зависимость: upstream API
// может ее не поддерживать
type CartSyncRequest struct {
	Lines []CartLine `json:"lines"`
}
