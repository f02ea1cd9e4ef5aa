package api

// Product представляет товар, как его отдает upstream API
type Product struct {
	ID             string   `json:"id"`                       // UUID товара
	Name           string   `json:"name"`                     // название
	Brand          string   `json:"brand,omitempty"`          // бренд
	Slug           string   `json:"slug,omitempty"`           // URL-safe идентификатор
	ImageURL       string   `json:"imageUrl,omitempty"`       // основное изображение
	Price          float64  `json:"price"`                    // цена в базовой валюте
	InStock        bool     `json:"inStock"`                  // доступность
	AvailableStock int      `json:"availableStock,omitempty"` // остаток на складе
	Sizes          []string `json:"sizes,omitempty"`          // доступные размеры
	Colors         []string `json:"colors,omitempty"`         // доступные цвета
}

// Category представляет узел дерева категорий upstream API
// Дерево рекурсивное: children могут содержать свои children
type Category struct {
	ID       string     `json:"id"`                 // внутренний ID категории
	Slug     string     `json:"slug"`               // человекочитаемый идентификатор
	Name     string     `json:"name"`               // отображаемое имя
	Children []Category `json:"children,omitempty"` // дочерние категории
}

// Meta представляет пагинацию ответа поиска товаров
type Meta struct {
	Page          int `json:"page"`          // текущая страница (1-based)
	Size          int `json:"size"`          // размер страницы
	TotalElements int `json:"totalElements"` // всего товаров
	TotalPages    int `json:"totalPages"`    // всего страниц
}

// ProductSearchResponse представляет ответ upstream API на поиск товаров
type ProductSearchResponse struct {
	Products []Product `json:"products"`
	Meta     Meta      `json:"meta"`
}

// ShopResponse представляет агрегированный ответ BFF endpoint /api/bff/shop
// Склеивает товары и дерево категорий в один payload,
// чтобы клиент не делал два последовательных запроса
type ShopResponse struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
	Meta       Meta       `json:"meta"`
}
