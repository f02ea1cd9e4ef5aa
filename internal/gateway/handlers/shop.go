package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/aurea-shop/aurea/internal/gateway/cache"
	"github.com/aurea-shop/aurea/internal/gateway/upstream"
	"github.com/aurea-shop/aurea/pkg/api"
)

// Cache tags агрегатора. Инвалидируются через POST /api/revalidate.
const (
	TagCategories = "categories"
	TagProducts   = "products"
)

// ShopHandler агрегирует категории и товары в один ответ.
// Категории запрашиваются строго до товаров: разрешение slug -> ID
// зависит от дерева категорий.
type ShopHandler struct {
	logger        *slog.Logger
	upstream      upstream.ClientAPI
	cache         *cache.Cache
	categoriesTTL time.Duration
	productsTTL   time.Duration
}

// NewShopHandler создает новый shop aggregator handler
func NewShopHandler(logger *slog.Logger, upstreamAPI upstream.ClientAPI, c *cache.Cache, categoriesTTL, productsTTL time.Duration) *ShopHandler {
	return &ShopHandler{
		logger:        logger,
		upstream:      upstreamAPI,
		cache:         c,
		categoriesTTL: categoriesTTL,
		productsTTL:   productsTTL,
	}
}

// Shop обрабатывает GET /api/bff/shop
// Query params: page, size, sort, keyword, category (slug), minPrice, maxPrice, color, inStock
func (h *ShopHandler) Shop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.loadCategories(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "shop: failed to load categories", slog.Any("error", err))
		h.sendEmpty(w)
		return
	}

	query := r.URL.Query()

	// Разрешаем category slug в ID. Ненайденный slug — не ошибка:
	// фильтр молча отбрасывается
	categoryID := ""
	if slug := query.Get("category"); slug != "" {
		if node := FindCategoryBySlug(categories, slug); node != nil {
			categoryID = node.ID
		} else {
			h.logger.WarnContext(ctx, "shop: unknown category slug, dropping filter", slog.String("slug", slug))
		}
	}

	products, err := h.loadProducts(ctx, buildProductQuery(query, categoryID))
	if err != nil {
		h.logger.ErrorContext(ctx, "shop: failed to load products", slog.Any("error", err))
		h.sendEmpty(w)
		return
	}

	resp := api.ShopResponse{
		Products:   products.Products,
		Categories: categories,
		Meta:       products.Meta,
	}

	w.Header().Set("Cache-Control", "public, s-maxage=30, stale-while-revalidate=120")
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// sendEmpty возвращает 500 с пустыми списками и обнуленной пагинацией.
// Агрегатор никогда не отдает частичный результат.
func (h *ShopHandler) sendEmpty(w http.ResponseWriter) {
	sendJSON(h.logger, w, api.ShopResponse{
		Products:   []api.Product{},
		Categories: []api.Category{},
		Meta:       api.Meta{},
	}, http.StatusInternalServerError)
}

// loadCategories возвращает дерево категорий из кеша или upstream
func (h *ShopHandler) loadCategories(ctx context.Context) ([]api.Category, error) {
	if data, ok := h.cache.Get(ctx, "categories"); ok {
		var categories []api.Category
		if err := json.Unmarshal(data, &categories); err == nil {
			return categories, nil
		}
		// Битую запись игнорируем и идем в upstream
		h.logger.Warn("shop: corrupted categories cache entry")
	}

	categories, err := h.upstream.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	if data, err := json.Marshal(categories); err == nil {
		h.cache.Set(ctx, "categories", TagCategories, data, h.categoriesTTL)
	}

	return categories, nil
}

// loadProducts возвращает страницу товаров из кеша или upstream.
// Ключ кеша включает весь набор параметров поиска.
func (h *ShopHandler) loadProducts(ctx context.Context, query url.Values) (*api.ProductSearchResponse, error) {
	cacheKey := "products:" + query.Encode()

	if data, ok := h.cache.Get(ctx, cacheKey); ok {
		var resp api.ProductSearchResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
		h.logger.Warn("shop: corrupted products cache entry", "key", cacheKey)
	}

	resp, err := h.upstream.SearchProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	if data, err := json.Marshal(resp); err == nil {
		h.cache.Set(ctx, cacheKey, TagProducts, data, h.productsTTL)
	}

	return resp, nil
}

// buildProductQuery собирает параметры поиска товаров для upstream
// из входных параметров и разрешенного categoryId
func buildProductQuery(in url.Values, categoryID string) url.Values {
	out := url.Values{}

	for _, key := range []string{"page", "size", "sort", "keyword", "minPrice", "maxPrice", "color", "inStock"} {
		if v := in.Get(key); v != "" {
			out.Set(key, v)
		}
	}

	if categoryID != "" {
		out.Set("categoryId", categoryID)
	}

	return out
}

// FindCategoryBySlug ищет узел с данным slug обходом дерева в глубину.
// Возвращает nil, если slug не найден.
func FindCategoryBySlug(categories []api.Category, slug string) *api.Category {
	for i := range categories {
		if categories[i].Slug == slug {
			return &categories[i]
		}
		if found := FindCategoryBySlug(categories[i].Children, slug); found != nil {
			return found
		}
	}
	return nil
}
