// Package session управляет жизненным циклом клиентской сессии:
// вход, восстановление после перезапуска, выход. Токены хранятся
// в storage только в зашифрованном виде под device key.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apiclient "github.com/aurea-shop/aurea/internal/client/api"
	"github.com/aurea-shop/aurea/internal/client/storage"
	"github.com/aurea-shop/aurea/internal/crypto"
	"github.com/aurea-shop/aurea/pkg/api"

	"golang.org/x/sync/errgroup"
)

// sessionTTL ограничивает срок жизни восстановленной сессии.
// Совпадает со сроком жизни refresh token на стороне gateway.
const sessionTTL = 30 * 24 * time.Hour

// Service реализует бизнес-логику сессии поверх API клиента и storage
type Service struct {
	logger *slog.Logger
	api    apiclient.GatewayAPI
	store  storage.SessionStorage
	key    []byte
}

// NewService создает сервис сессии.
// key — device key для шифрования токенов в storage.
// Сервис подписывается на обновление токенов, чтобы новая пара
// после refresh-and-retry сразу попадала в storage.
func NewService(logger *slog.Logger, apiClient apiclient.GatewayAPI, store storage.SessionStorage, key []byte) *Service {
	s := &Service{
		logger: logger,
		api:    apiClient,
		store:  store,
		key:    key,
	}

	apiClient.OnTokenRefresh(s.persistTokens)

	return s
}

// Login выполняет вход: обмен credentials на токены, загрузка профиля
// и permissions, сохранение зашифрованной сессии в storage.
// Возвращает сессию с токенами в открытом виде.
func (s *Service) Login(ctx context.Context, email, password string) (*storage.SessionData, error) {
	tokens, err := s.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// Профиль и permissions не зависят друг от друга, запрашиваем параллельно
	var (
		profile *api.ProfileResponse
		perms   *api.PermissionsResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.api.Profile(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		perms, err = s.api.Permissions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	session := &storage.SessionData{
		Email:        profile.Email,
		Name:         profile.Name,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Permissions:  perms.Permissions,
		ExpiresAt:    time.Now().Add(sessionTTL).Unix(),
	}

	if err := s.saveEncrypted(ctx, session); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "session started", slog.String("email", session.Email))

	return session, nil
}

// Restore восстанавливает сессию из storage после перезапуска клиента:
// расшифровывает токены device key и передает их API клиенту.
func (s *Service) Restore(ctx context.Context) (*storage.SessionData, error) {
	stored, err := s.store.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	accessToken, err := crypto.DecryptFromBase64(stored.AccessToken, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}
	refreshToken, err := crypto.DecryptFromBase64(stored.RefreshToken, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
	}

	session := &storage.SessionData{
		Email:        stored.Email,
		Name:         stored.Name,
		AccessToken:  string(accessToken),
		RefreshToken: string(refreshToken),
		Permissions:  stored.Permissions,
		ExpiresAt:    stored.ExpiresAt,
	}

	s.api.SetTokens(session.AccessToken, session.RefreshToken)

	return session, nil
}

// Logout завершает сессию. Серверная инвалидация best effort:
// локальная сессия удаляется в любом случае.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.WarnContext(ctx, "server logout failed", slog.Any("error", err))
	}

	if err := s.store.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Status сообщает, есть ли действующая сессия в storage
func (s *Service) Status(ctx context.Context) (bool, error) {
	return s.store.IsAuthenticated(ctx)
}

// saveEncrypted сохраняет сессию, шифруя токены device key
func (s *Service) saveEncrypted(ctx context.Context, session *storage.SessionData) error {
	encryptedAccess, err := crypto.EncryptToBase64([]byte(session.AccessToken), s.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	encryptedRefresh, err := crypto.EncryptToBase64([]byte(session.RefreshToken), s.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	stored := *session
	stored.AccessToken = encryptedAccess
	stored.RefreshToken = encryptedRefresh

	if err := s.store.SaveSession(ctx, &stored); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// persistTokens сохраняет обновленную пару токенов после refresh.
// Вызывается API клиентом, ошибки не фатальны: в худшем случае
// после перезапуска клиент обновит токены еще раз.
func (s *Service) persistTokens(ctx context.Context, tokens *api.TokenResponse) {
	stored, err := s.store.GetSession(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "token refresh: no stored session to update", slog.Any("error", err))
		return
	}

	session := *stored
	session.AccessToken = tokens.AccessToken
	session.RefreshToken = tokens.RefreshToken

	if err := s.saveEncrypted(ctx, &session); err != nil {
		s.logger.WarnContext(ctx, "token refresh: failed to persist tokens", slog.Any("error", err))
	}
}
