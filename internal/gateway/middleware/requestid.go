package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

// requestIDKey — ключ request id в контексте запроса
const requestIDKey contextKey = "request_id"

// RequestIDHeader — заголовок, в котором gateway отдает request id
const RequestIDHeader = "X-Request-Id"

// RequestID создает middleware, присваивающее каждому запросу UUID.
// Входящий X-Request-Id (от reverse proxy) переиспользуется.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID возвращает request id из контекста или пустую строку
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
