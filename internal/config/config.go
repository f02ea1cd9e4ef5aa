// Package config загружает конфигурацию gateway из переменных окружения.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию gateway
type Config struct {
	// Server
	Addr string // адрес для http.ListenAndServe, например ":3000"
	Env  string // development | production

	// Upstream commerce API
	UpstreamURL string // базовый URL upstream REST API

	// Cache
	CacheDBPath   string        // путь к sqlite файлу персистентного кеша, пусто = только память
	CategoriesTTL time.Duration // TTL кеша дерева категорий
	ProductsTTL   time.Duration // TTL кеша поиска товаров

	// Secrets
	RevalidationSecret string // секрет для POST /api/revalidate, пусто = проверка отключена
	JWTSecret          string // HMAC секрет, общий с upstream; пусто = gate по permissions отключен

	// Google OAuth
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string

	// Rate limiting
	RateLimit       int           // запросов на IP за окно
	RateLimitWindow time.Duration // окно rate limiter
}

// IsProduction возвращает true для production окружения
// (включает Secure флаг на cookies)
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load загружает конфигурацию из окружения.
// .env файл подхватывается, если существует (удобно для разработки).
func Load() (*Config, error) {
	// Ошибку отсутствия .env игнорируем: в production его нет
	_ = godotenv.Load()

	cfg := &Config{
		Addr:        getEnv("AUREA_ADDR", ":3000"),
		Env:         getEnv("AUREA_ENV", "development"),
		UpstreamURL: getEnv("UPSTREAM_API_URL", "http://localhost:8080"),

		CacheDBPath:   os.Getenv("AUREA_CACHE_DB"),
		CategoriesTTL: getEnvDuration("CATEGORIES_CACHE_TTL", 5*time.Minute),
		ProductsTTL:   getEnvDuration("PRODUCTS_CACHE_TTL", 30*time.Second),

		RevalidationSecret: os.Getenv("REVALIDATION_SECRET"),
		JWTSecret:          os.Getenv("AUTH_JWT_SECRET"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  os.Getenv("GOOGLE_REDIRECT_URI"),

		RateLimit:       getEnvInt("RATE_LIMIT", 300),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate проверяет согласованность конфигурации
func (c *Config) validate() error {
	if c.UpstreamURL == "" {
		return fmt.Errorf("UPSTREAM_API_URL must not be empty")
	}
	if c.Env == "production" && c.RevalidationSecret == "" {
		return fmt.Errorf("REVALIDATION_SECRET is required in production")
	}
	if c.CategoriesTTL <= 0 || c.ProductsTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или default
func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// getEnvInt парсит int из окружения, при ошибке возвращает default
func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvDuration парсит time.Duration ("30s", "5m") из окружения
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}
