package handlers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aurea-shop/aurea/internal/gateway/upstream"
)

// ProxyHandler пробрасывает запросы к upstream API, подставляя
// bearer token из HTTP-only cookie. При 401 от upstream делает
// ровно одну попытку refresh-and-retry.
type ProxyHandler struct {
	logger      *slog.Logger
	upstream    upstream.ClientAPI
	httpClient  *http.Client
	upstreamURL string
	secure      bool
}

// NewProxyHandler создает новый proxy handler
func NewProxyHandler(logger *slog.Logger, upstreamAPI upstream.ClientAPI, upstreamURL string, secure bool) *ProxyHandler {
	return &ProxyHandler{
		logger:      logger,
		upstream:    upstreamAPI,
		upstreamURL: upstreamURL,
		secure:      secure,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// upstreamResult — прочитанный целиком ответ upstream,
// чтобы его можно было вернуть после неудачного refresh
type upstreamResult struct {
	header http.Header
	body   []byte
	status int
}

// Proxy обрабатывает ANY /api/proxy/{path...}
func (h *ProxyHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	path := r.PathValue("path")
	targetURL := h.upstreamURL + "/api/v1/" + path
	if r.URL.RawQuery != "" {
		targetURL += "?" + r.URL.RawQuery
	}

	// Тело читаем целиком: оно понадобится повторно при retry
	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			h.logger.ErrorContext(ctx, "proxy: failed to read request body", slog.Any("error", err))
			sendError(h.logger, w, "failed to read request body", http.StatusInternalServerError)
			return
		}
	}

	accessToken := cookieValue(r, CookieAccessToken)

	// Без cookie пробрасываем Authorization заголовок как есть
	// (так ходит терминальный клиент)
	authorization := r.Header.Get("Authorization")
	if accessToken != "" {
		authorization = "Bearer " + accessToken
	}

	result, err := h.forward(ctx, r.Method, targetURL, r.Header.Get("Content-Type"), authorization, body)
	if err != nil {
		h.logger.ErrorContext(ctx, "proxy: upstream request failed",
			slog.String("path", path),
			slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Refresh branch: 401 при наличии access token и refresh cookie
	if result.status == http.StatusUnauthorized && accessToken != "" {
		refreshToken := cookieValue(r, CookieRefreshToken)
		if refreshToken == "" {
			// Refresh невозможен: убираем протухший access token
			clearTokenCookies(w, h.secure)
			h.writeResult(w, result)
			return
		}

		tokens, refreshErr := h.upstream.Refresh(ctx, refreshToken)
		if refreshErr != nil {
			h.logger.WarnContext(ctx, "proxy: token refresh failed", slog.Any("error", refreshErr))
			clearTokenCookies(w, h.secure)
			// Возвращаем исходный 401, не ошибку refresh
			h.writeResult(w, result)
			return
		}

		setTokenCookies(w, tokens, h.secure)

		h.logger.InfoContext(ctx, "proxy: token refreshed, retrying request", slog.String("path", path))

		// Ровно один retry с новым access token
		retry, retryErr := h.forward(ctx, r.Method, targetURL, r.Header.Get("Content-Type"), "Bearer "+tokens.AccessToken, body)
		if retryErr != nil {
			h.logger.ErrorContext(ctx, "proxy: retry failed", slog.Any("error", retryErr))
			sendError(h.logger, w, retryErr.Error(), http.StatusInternalServerError)
			return
		}

		h.writeResult(w, retry)
		return
	}

	h.writeResult(w, result)
}

// forward выполняет один запрос к upstream и читает ответ целиком
func (h *ProxyHandler) forward(ctx context.Context, method, targetURL, contentType, authorization string, body []byte) (*upstreamResult, error) {
	var bodyReader io.Reader
	if len(body) > 0 {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, targetURL, bodyReader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &upstreamResult{
		status: resp.StatusCode,
		header: resp.Header,
		body:   respBody,
	}, nil
}

// writeResult возвращает ответ upstream клиенту verbatim
func (h *ProxyHandler) writeResult(w http.ResponseWriter, result *upstreamResult) {
	if ct := result.header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(result.status)
	if _, err := w.Write(result.body); err != nil {
		h.logger.Error("proxy: failed to write response", slog.Any("error", err))
	}
}
