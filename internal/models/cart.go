package models

// CartItem представляет одну позицию корзины
// Уникальность позиции определяется парой (ID, VariantID):
// товар с вариантом и тот же товар без варианта — разные позиции
type CartItem struct {
	ID                string            `json:"id"`                          // ID товара
	Name              string            `json:"name"`                        // название на момент добавления
	Brand             string            `json:"brand,omitempty"`             // бренд
	ImageURL          string            `json:"imageUrl,omitempty"`          // изображение
	VariantID         string            `json:"variantId,omitempty"`         // ID варианта (размер/цвет)
	VariantSKU        string            `json:"variantSku,omitempty"`        // SKU варианта
	VariantAttributes map[string]string `json:"variantAttributes,omitempty"` // атрибуты варианта (size: M)
	Price             float64           `json:"price"`                       // цена за единицу
	Quantity          int               `json:"quantity"`                    // количество, позиция удаляется при <= 0
	InStock           bool              `json:"inStock,omitempty"`           // доступность на момент добавления
	AvailableStock    int               `json:"availableStock,omitempty"`    // остаток на складе
}

// Key возвращает ключ уникальности позиции корзины.
// Для товара с вариантом это "id:variantId", иначе просто "id".
func (i CartItem) Key() string {
	if i.VariantID != "" {
		return i.ID + ":" + i.VariantID
	}
	return i.ID
}

// Subtotal возвращает стоимость позиции
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
