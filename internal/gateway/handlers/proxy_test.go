package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurea-shop/aurea/internal/gateway/upstream"
	"github.com/aurea-shop/aurea/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// proxyMux оборачивает ProxyHandler в mux, чтобы работал PathValue
func proxyMux(h *ProxyHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/proxy/{path...}", h.Proxy)
	return mux
}

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestProxy_ForwardsRequest(t *testing.T) {
	fakeUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		assert.Equal(t, "page=2", r.URL.RawQuery)
		assert.Equal(t, "Bearer valid-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"orders":[]}`))
	}))
	defer fakeUpstream.Close()

	h := NewProxyHandler(testLogger(), &upstream.ClientAPIMock{}, fakeUpstream.URL, false)

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/orders?page=2", nil)
	req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "valid-token"})

	w := httptest.NewRecorder()
	proxyMux(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"orders":[]}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestProxy_RefreshAndRetry(t *testing.T) {
	// Upstream принимает только новый токен
	fakeUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer new-access" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"token expired"}}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"profile":"ok"}`))
	}))
	defer fakeUpstream.Close()

	mockAPI := &upstream.ClientAPIMock{
		RefreshFunc: func(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
			assert.Equal(t, "valid-refresh", refreshToken)
			return &api.TokenResponse{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
				ExpiresIn:    900,
			}, nil
		},
	}

	h := NewProxyHandler(testLogger(), mockAPI, fakeUpstream.URL, false)

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/users/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "expired-access"})
	req.AddCookie(&http.Cookie{Name: CookieRefreshToken, Value: "valid-refresh"})

	w := httptest.NewRecorder()
	proxyMux(h).ServeHTTP(w, req)

	// Caller получает результат retry, не исходный 401
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"profile":"ok"}`, w.Body.String())
	assert.Len(t, mockAPI.RefreshCalls(), 1)

	resp := w.Result()
	access := findCookie(t, resp, CookieAccessToken)
	require.NotNil(t, access)
	assert.Equal(t, "new-access", access.Value)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, access.SameSite)

	refresh := findCookie(t, resp, CookieRefreshToken)
	require.NotNil(t, refresh)
	assert.Equal(t, "new-refresh", refresh.Value)
	assert.Greater(t, refresh.MaxAge, access.MaxAge)
}

func TestProxy_NoRefreshToken(t *testing.T) {
	fakeUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"unauthorized"}}`))
	}))
	defer fakeUpstream.Close()

	h := NewProxyHandler(testLogger(), &upstream.ClientAPIMock{}, fakeUpstream.URL, false)

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/users/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "expired-access"})
	// refresh cookie отсутствует

	w := httptest.NewRecorder()
	proxyMux(h).ServeHTTP(w, req)

	// Исходный 401 body возвращается без изменений
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `{"error":{"message":"unauthorized"}}`, w.Body.String())

	// Access token cookie удален
	access := findCookie(t, w.Result(), CookieAccessToken)
	require.NotNil(t, access)
	assert.Empty(t, access.Value)
	assert.Less(t, access.MaxAge, 0)
}

func TestProxy_RefreshFailureClearsCookies(t *testing.T) {
	fakeUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"token expired"}}`))
	}))
	defer fakeUpstream.Close()

	mockAPI := &upstream.ClientAPIMock{
		RefreshFunc: func(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
			return nil, assert.AnError
		},
	}

	h := NewProxyHandler(testLogger(), mockAPI, fakeUpstream.URL, false)

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/users/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "expired-access"})
	req.AddCookie(&http.Cookie{Name: CookieRefreshToken, Value: "stale-refresh"})

	w := httptest.NewRecorder()
	proxyMux(h).ServeHTTP(w, req)

	// Возвращается исходный 401 body
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `{"error":{"message":"token expired"}}`, w.Body.String())
	assert.Len(t, mockAPI.RefreshCalls(), 1)

	// Оба cookies удалены
	resp := w.Result()
	for _, name := range []string{CookieAccessToken, CookieRefreshToken} {
		c := findCookie(t, resp, name)
		require.NotNil(t, c, name)
		assert.Empty(t, c.Value)
		assert.Less(t, c.MaxAge, 0)
	}
}

func TestProxy_NoRetryWithoutAccessToken(t *testing.T) {
	// 401 без access token не запускает refresh branch
	fakeUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"unauthorized"}}`))
	}))
	defer fakeUpstream.Close()

	mockAPI := &upstream.ClientAPIMock{}

	h := NewProxyHandler(testLogger(), mockAPI, fakeUpstream.URL, false)

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/users/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieRefreshToken, Value: "refresh"})

	w := httptest.NewRecorder()
	proxyMux(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, mockAPI.RefreshCalls())
}

func TestProxy_ForwardsBodyOnRetry(t *testing.T) {
	var bodies []string
	fakeUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(body))

		if r.Header.Get("Authorization") != "Bearer new-access" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"created":true}`))
	}))
	defer fakeUpstream.Close()

	mockAPI := &upstream.ClientAPIMock{
		RefreshFunc: func(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
			return &api.TokenResponse{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
		},
	}

	h := NewProxyHandler(testLogger(), mockAPI, fakeUpstream.URL, false)

	req := httptest.NewRequest(http.MethodPost, "/api/proxy/cart/items", strings.NewReader(`{"productId":"p1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "expired"})
	req.AddCookie(&http.Cookie{Name: CookieRefreshToken, Value: "refresh"})

	w := httptest.NewRecorder()
	proxyMux(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	// Тело дошло до upstream оба раза
	require.Len(t, bodies, 2)
	assert.Equal(t, `{"productId":"p1"}`, bodies[0])
	assert.Equal(t, `{"productId":"p1"}`, bodies[1])
}

func TestProxy_UpstreamUnreachable(t *testing.T) {
	h := NewProxyHandler(testLogger(), &upstream.ClientAPIMock{}, "http://127.0.0.1:1", false)

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/orders", nil)

	w := httptest.NewRecorder()
	proxyMux(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error.Message)
}
