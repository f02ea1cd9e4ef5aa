// Package gateway собирает BFF gateway: кеш, upstream клиент,
// обработчики и middleware.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/aurea-shop/aurea/internal/config"
	"github.com/aurea-shop/aurea/internal/gateway/cache"
	"github.com/aurea-shop/aurea/internal/gateway/cache/sqlite"
	"github.com/aurea-shop/aurea/internal/gateway/handlers"
	"github.com/aurea-shop/aurea/internal/gateway/middleware"
	"github.com/aurea-shop/aurea/internal/gateway/upstream"
)

// Server представляет собранный BFF gateway
type Server struct {
	logger  *slog.Logger
	cfg     *config.Config
	cache   *cache.Cache
	httpSrv *http.Server
}

// New создает Server со всеми зависимостями
func New(ctx context.Context, logger *slog.Logger, cfg *config.Config, version string) (*Server, error) {
	// Кеш: память + опциональный sqlite слой
	var cacheOpts []cache.Option
	if cfg.CacheDBPath != "" {
		store, err := sqlite.New(ctx, cfg.CacheDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache store: %w", err)
		}
		cacheOpts = append(cacheOpts, cache.WithStore(store))
		logger.Info("persistent cache enabled", "path", cfg.CacheDBPath)
	}
	c := cache.New(logger, cacheOpts...)

	upstreamClient := upstream.NewClient(cfg.UpstreamURL)

	var oauthCfg *oauth2.Config
	if cfg.GoogleClientID != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			// Обмен кода идет через upstream: он выпускает свои токены
			Endpoint: oauth2.Endpoint{
				TokenURL: cfg.UpstreamURL + "/api/v1/auth/google/token",
			},
		}
	}

	secure := cfg.IsProduction()

	healthHandler := handlers.NewHealthHandler(logger, version)
	proxyHandler := handlers.NewProxyHandler(logger, upstreamClient, cfg.UpstreamURL, secure)
	shopHandler := handlers.NewShopHandler(logger, upstreamClient, c, cfg.CategoriesTTL, cfg.ProductsTTL)
	revalidateHandler := handlers.NewRevalidateHandler(logger, c, cfg.RevalidationSecret)
	authHandler := handlers.NewAuthHandler(logger, upstreamClient, oauthCfg, secure)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("GET /api/bff/shop", shopHandler.Shop)
	mux.HandleFunc("POST /api/revalidate", revalidateHandler.Revalidate)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/google/callback", authHandler.GoogleCallback)
	mux.HandleFunc("/api/proxy/{path...}", proxyHandler.Proxy)

	// Админские пути back-office гейтуются по permission на стороне
	// gateway, когда HMAC секрет общий с upstream
	adminGate := middleware.RequirePermission(logger, "admin.access")
	mux.Handle("/api/admin/{path...}", adminGate(http.HandlerFunc(proxyHandler.Proxy)))

	// Middleware chain, снаружи внутрь:
	// request id -> logging -> recovery -> rate limit -> claims
	var handler http.Handler = mux
	handler = middleware.Authenticate(logger, []byte(cfg.JWTSecret))(handler)
	handler = middleware.RateLimit(cfg.RateLimit, cfg.RateLimitWindow, logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RequestID()(handler)

	return &Server{
		logger: logger,
		cfg:    cfg,
		cache:  c,
		httpSrv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run запускает HTTP сервер и блокируется до отмены контекста
func (s *Server) Run(ctx context.Context) error {
	errC := make(chan error, 1)

	go func() {
		s.logger.Info("gateway listening",
			"addr", s.cfg.Addr,
			"upstream", s.cfg.UpstreamURL,
			"env", s.cfg.Env)
		errC <- s.httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down gateway")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	if err := s.cache.Stop(); err != nil {
		s.logger.Warn("failed to stop cache", "error", err)
	}

	return nil
}
