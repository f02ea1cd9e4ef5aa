// Package api реализует HTTP клиент терминального клиента к gateway.
// Все запросы идут через gateway: auth и товарные пути через
// /api/proxy/..., агрегированная витрина через /api/bff/shop.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/aurea-shop/aurea/pkg/api"
)

//go:generate go tool moq -out client_mock.go . GatewayAPI

// GatewayAPI определяет операции клиента против gateway
type GatewayAPI interface {
	// Login обменивает credentials на пару токенов
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Logout инвалидирует сессию на сервере (best effort)
	Logout(ctx context.Context) error

	// Profile возвращает профиль текущего пользователя
	Profile(ctx context.Context) (*api.ProfileResponse, error)

	// Permissions возвращает permissions текущего пользователя
	Permissions(ctx context.Context) (*api.PermissionsResponse, error)

	// Shop возвращает агрегированную витрину (товары + категории)
	Shop(ctx context.Context, query url.Values) (*api.ShopResponse, error)

	// Product возвращает один товар по ID
	Product(ctx context.Context, id string) (*api.Product, error)

	// Admin выполняет GET запрос к admin пути и возвращает сырой JSON
	Admin(ctx context.Context, path string) (json.RawMessage, error)

	// SetTokens устанавливает пару токенов текущей сессии
	SetTokens(accessToken, refreshToken string)

	// OnTokenRefresh регистрирует callback, вызываемый после
	// успешного обновления пары токенов
	OnTokenRefresh(fn func(ctx context.Context, tokens *api.TokenResponse))
}

// Client представляет HTTP клиент для взаимодействия с gateway
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(ctx context.Context, tokens *api.TokenResponse)
}

var _ GatewayAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetTokens устанавливает пару токенов текущей сессии
func (c *Client) SetTokens(accessToken, refreshToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = accessToken
	c.refreshToken = refreshToken
}

// OnTokenRefresh регистрирует callback для персистентности обновленных токенов
func (c *Client) OnTokenRefresh(fn func(ctx context.Context, tokens *api.TokenResponse)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onRefresh = fn
}

// tokens возвращает текущую пару токенов
func (c *Client) tokens() (accessToken, refreshToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

// Login обменивает credentials на пару токенов
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/proxy/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	c.SetTokens(resp.AccessToken, resp.RefreshToken)
	return &resp, nil
}

// Logout инвалидирует сессию на сервере
func (c *Client) Logout(ctx context.Context) error {
	accessToken, _ := c.tokens()
	if err := c.doRequest(ctx, http.MethodPost, "/api/proxy/auth/logout", accessToken, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	c.SetTokens("", "")
	return nil
}

// Profile возвращает профиль текущего пользователя
func (c *Client) Profile(ctx context.Context) (*api.ProfileResponse, error) {
	var resp api.ProfileResponse
	if err := c.doAuthRequest(ctx, http.MethodGet, "/api/proxy/users/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &resp, nil
}

// Permissions возвращает permissions текущего пользователя
func (c *Client) Permissions(ctx context.Context) (*api.PermissionsResponse, error) {
	var resp api.PermissionsResponse
	if err := c.doAuthRequest(ctx, http.MethodGet, "/api/proxy/users/me/permissions", nil, &resp); err != nil {
		return nil, fmt.Errorf("permissions request failed: %w", err)
	}
	return &resp, nil
}

// Shop возвращает агрегированную витрину
func (c *Client) Shop(ctx context.Context, query url.Values) (*api.ShopResponse, error) {
	path := "/api/bff/shop"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp api.ShopResponse
	if err := c.doAuthRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("shop request failed: %w", err)
	}
	return &resp, nil
}

// Product возвращает один товар по ID
func (c *Client) Product(ctx context.Context, id string) (*api.Product, error) {
	var resp api.Product
	path := fmt.Sprintf("/api/proxy/products/%s", url.PathEscape(id))
	if err := c.doAuthRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("product request failed: %w", err)
	}
	return &resp, nil
}

// Admin выполняет GET запрос к admin пути gateway
func (c *Client) Admin(ctx context.Context, path string) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.doAuthRequest(ctx, http.MethodGet, "/api/admin/"+path, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin request failed: %w", err)
	}
	return resp, nil
}

// refresh обменивает refresh token на новую пару токенов
func (c *Client) refresh(ctx context.Context) error {
	_, refreshToken := c.tokens()
	if refreshToken == "" {
		return fmt.Errorf("no refresh token")
	}

	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/proxy/auth/refresh", refreshToken, nil, &resp); err != nil {
		return fmt.Errorf("refresh request failed: %w", err)
	}

	c.mu.Lock()
	c.accessToken = resp.AccessToken
	c.refreshToken = resp.RefreshToken
	onRefresh := c.onRefresh
	c.mu.Unlock()

	// Даем сессионному слою сохранить новую пару
	if onRefresh != nil {
		onRefresh(ctx, &resp)
	}

	return nil
}

// doAuthRequest выполняет запрос с access token и одним
// refresh-and-retry на 401
func (c *Client) doAuthRequest(ctx context.Context, method, path string, body, result interface{}) error {
	accessToken, refreshToken := c.tokens()

	err := c.doRequest(ctx, method, path, accessToken, body, result)
	if err == nil {
		return nil
	}

	// Ровно один retry после обновления токена
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized && refreshToken != "" {
		if refreshErr := c.refresh(ctx); refreshErr != nil {
			c.SetTokens("", "")
			return err
		}

		accessToken, _ = c.tokens()
		return c.doRequest(ctx, method, path, accessToken, body, result)
	}

	return err
}

// StatusError представляет ошибку HTTP уровня с кодом ответа
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, bearerToken string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			return &StatusError{StatusCode: resp.StatusCode, Message: errResp.Error.Message}
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
