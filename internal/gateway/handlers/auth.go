package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/aurea-shop/aurea/internal/gateway/upstream"
	"github.com/aurea-shop/aurea/pkg/api"
)

// AuthHandler управляет cookie-сессией: login/logout против upstream
// и обмен Google authorization code
type AuthHandler struct {
	logger   *slog.Logger
	upstream upstream.ClientAPI
	oauth    *oauth2.Config // nil = Google login не сконфигурирован
	secure   bool
}

// NewAuthHandler создает новый auth handler
func NewAuthHandler(logger *slog.Logger, upstreamAPI upstream.ClientAPI, oauth *oauth2.Config, secure bool) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		upstream: upstreamAPI,
		oauth:    oauth,
		secure:   secure,
	}
}

// Login обрабатывает POST /api/auth/login
// Пробрасывает credentials на upstream и кладет токены в cookies
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "login: failed to decode request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		sendError(h.logger, w, "email and password are required", http.StatusBadRequest)
		return
	}

	tokens, err := h.upstream.Login(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", slog.String("email", req.Email), slog.Any("error", err))
		sendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	setTokenCookies(w, tokens, h.secure)

	h.logger.InfoContext(ctx, "user logged in", slog.String("email", req.Email))

	w.WriteHeader(http.StatusNoContent)
}

// Logout обрабатывает POST /api/auth/logout
// Инвалидирует сессию на upstream (best-effort) и чистит cookies
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if accessToken := cookieValue(r, CookieAccessToken); accessToken != "" {
		if err := h.upstream.Logout(ctx, accessToken); err != nil {
			// Cookies чистим в любом случае
			h.logger.WarnContext(ctx, "logout: upstream call failed", slog.Any("error", err))
		}
	}

	clearTokenCookies(w, h.secure)

	w.WriteHeader(http.StatusNoContent)
}

// GoogleCallback обрабатывает GET /api/auth/google/callback?code=...
// Обменивает authorization code на пару токенов через token endpoint
// upstream и редиректит на главную
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.oauth == nil {
		sendError(h.logger, w, "google login is not configured", http.StatusNotImplemented)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		sendError(h.logger, w, "code is required", http.StatusBadRequest)
		return
	}

	token, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		h.logger.WarnContext(ctx, "google callback: code exchange failed", slog.Any("error", err))
		sendError(h.logger, w, "code exchange failed", http.StatusUnauthorized)
		return
	}

	setTokenCookies(w, &api.TokenResponse{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, h.secure)

	h.logger.InfoContext(ctx, "user logged in via google")

	http.Redirect(w, r, "/", http.StatusFound)
}
