package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aurea-shop/aurea/internal/permissions"
)

// claimsKey — ключ claims в контексте запроса
const claimsKey contextKey = "claims"

// Claims представляет JWT claims access token, выданного upstream.
// Gateway может их читать, когда HMAC секрет общий с upstream
// (AUTH_JWT_SECRET); для клиента токен остается opaque.
type Claims struct {
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// Authenticate создает middleware, извлекающее claims из access token
// (Authorization заголовок или accessToken cookie). Аутентификация
// опциональна: запрос без валидного токена проходит дальше без claims,
// запрет решает RequirePermission.
func Authenticate(logger *slog.Logger, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				if cookie, err := r.Cookie("accessToken"); err == nil {
					tokenString = cookie.Value
				}
			}

			if tokenString == "" || len(secret) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := parseClaims(tokenString, secret)
			if err != nil {
				logger.Debug("invalid access token", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission создает middleware, требующее хотя бы один
// из перечисленных permissions.
// Fail-closed: без claims или без подходящего permission — 403.
func RequirePermission(logger *slog.Logger, required ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r.Context())

			if claims == nil || !permissions.HasAnyPermission(claims.Permissions, required...) {
				email := ""
				if claims != nil {
					email = claims.Email
				}
				logger.Warn("permission denied",
					"path", r.URL.Path,
					"method", r.Method,
					"required", strings.Join(required, "|"),
					"email", email,
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":{"message":"forbidden"}}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetClaims возвращает claims из контекста или nil
func GetClaims(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(claimsKey).(*Claims); ok {
		return claims
	}
	return nil
}

// bearerToken извлекает токен из Authorization заголовка
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}

// parseClaims валидирует подпись и срок токена
func parseClaims(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Принимаем только HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
