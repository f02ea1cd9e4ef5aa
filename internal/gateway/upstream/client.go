// Package upstream реализует типизированный клиент upstream commerce API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aurea-shop/aurea/pkg/api"
)

//go:generate go tool moq -out client_mock.go . ClientAPI

// ClientAPI определяет операции upstream API, нужные gateway
type ClientAPI interface {
	// GetCategories возвращает полное дерево категорий
	GetCategories(ctx context.Context) ([]api.Category, error)

	// SearchProducts выполняет поиск товаров с параметрами запроса
	SearchProducts(ctx context.Context, query url.Values) (*api.ProductSearchResponse, error)

	// Login аутентифицирует пользователя и возвращает пару токенов
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Refresh обменивает refresh token на новую пару токенов
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)

	// Logout инвалидирует сессию на upstream
	Logout(ctx context.Context, accessToken string) error
}

// Client представляет HTTP клиент upstream commerce API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// NewClient создает новый upstream клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// GetCategories возвращает дерево категорий
func (c *Client) GetCategories(ctx context.Context) ([]api.Category, error) {
	var resp []api.Category
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/categories", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get categories request failed: %w", err)
	}
	return resp, nil
}

// SearchProducts выполняет поиск товаров
func (c *Client) SearchProducts(ctx context.Context, query url.Values) (*api.ProductSearchResponse, error) {
	path := "/api/v1/products"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp api.ProductSearchResponse
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("search products request failed: %w", err)
	}
	return &resp, nil
}

// Login аутентифицирует пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов.
// Refresh token передается в Authorization заголовке.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", refreshToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout инвалидирует сессию на upstream
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", accessToken, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос к upstream API
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

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			return fmt.Errorf("upstream error (%d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
