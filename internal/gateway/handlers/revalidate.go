package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/aurea-shop/aurea/internal/gateway/cache"
	"github.com/aurea-shop/aurea/pkg/api"
)

// RevalidateHandler инвалидирует cache tags по внешнему запросу
// (например, webhook админки после изменения каталога)
type RevalidateHandler struct {
	logger *slog.Logger
	cache  *cache.Cache
	secret string // пусто = проверка секрета отключена (development)
}

// NewRevalidateHandler создает новый revalidate handler
func NewRevalidateHandler(logger *slog.Logger, c *cache.Cache, secret string) *RevalidateHandler {
	return &RevalidateHandler{
		logger: logger,
		cache:  c,
		secret: secret,
	}
}

// Revalidate обрабатывает POST /api/revalidate?tag=products&secret=...
func (h *RevalidateHandler) Revalidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.secret != "" {
		got := r.URL.Query().Get("secret")
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.logger.WarnContext(ctx, "revalidate: invalid secret")
			sendError(h.logger, w, "invalid secret", http.StatusUnauthorized)
			return
		}
	}

	tag := r.URL.Query().Get("tag")
	if tag == "" {
		sendError(h.logger, w, "tag is required", http.StatusBadRequest)
		return
	}

	if _, err := h.cache.InvalidateTag(ctx, tag); err != nil {
		h.logger.ErrorContext(ctx, "revalidate: invalidation failed",
			slog.String("tag", tag),
			slog.Any("error", err))
		sendError(h.logger, w, "failed to invalidate tag", http.StatusInternalServerError)
		return
	}

	resp := api.RevalidateResponse{
		Success:     true,
		Revalidated: tag,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
