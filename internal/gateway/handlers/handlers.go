// Package handlers содержит HTTP обработчики BFF gateway.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/aurea-shop/aurea/pkg/api"
)

// Имена cookies с токенами. HTTP-only: токены не доступны
// из браузерного JS, клиент их не декодирует.
const (
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
)

// Время жизни cookies (не токенов: срок токенов контролирует upstream)
const (
	accessCookieMaxAge  = 7 * 24 * time.Hour
	refreshCookieMaxAge = 30 * 24 * time.Hour
)

// sendJSON пишет JSON ответ с заданным статусом
func sendJSON(logger *slog.Logger, w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// sendError пишет error envelope {"error":{"message":"..."}}
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, status int) {
	sendJSON(logger, w, api.ErrorResponse{Error: api.ErrorDetail{Message: message}}, status)
}

// setTokenCookies ставит оба токена в HTTP-only cookies.
// Secure включается в production (secure=true).
func setTokenCookies(w http.ResponseWriter, tokens *api.TokenResponse, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieAccessToken,
		Value:    tokens.AccessToken,
		Path:     "/",
		MaxAge:   int(accessCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     CookieRefreshToken,
		Value:    tokens.RefreshToken,
		Path:     "/",
		MaxAge:   int(refreshCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearTokenCookies удаляет оба токена (logout, неудачный refresh)
func clearTokenCookies(w http.ResponseWriter, secure bool) {
	for _, name := range []string{CookieAccessToken, CookieRefreshToken} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// cookieValue возвращает значение cookie или пустую строку
func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
