package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/aurea-shop/aurea/internal/client/api"
	"github.com/aurea-shop/aurea/internal/client/storage"
	"github.com/aurea-shop/aurea/internal/client/storage/boltdb"
	"github.com/aurea-shop/aurea/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testKey() []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i + 1)
	}
	return key
}

func newTestStore(t *testing.T) *boltdb.Storage {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "session-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// newAPIMock возвращает mock с дефолтами для happy path
func newAPIMock() *apiclient.GatewayAPIMock {
	return &apiclient.GatewayAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return &api.TokenResponse{AccessToken: "access-1", RefreshToken: "refresh-1", ExpiresIn: 900}, nil
		},
		LogoutFunc: func(ctx context.Context) error {
			return nil
		},
		ProfileFunc: func(ctx context.Context) (*api.ProfileResponse, error) {
			return &api.ProfileResponse{ID: "u1", Email: "user@example.com", Name: "User"}, nil
		},
		PermissionsFunc: func(ctx context.Context) (*api.PermissionsResponse, error) {
			return &api.PermissionsResponse{Permissions: []string{"shop.*", "admin.access"}}, nil
		},
		SetTokensFunc:      func(accessToken, refreshToken string) {},
		OnTokenRefreshFunc: func(fn func(ctx context.Context, tokens *api.TokenResponse)) {},
	}
}

func TestLogin_Success(t *testing.T) {
	store := newTestStore(t)
	mock := newAPIMock()
	svc := NewService(testLogger(), mock, store, testKey())

	session, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", session.Email)
	assert.Equal(t, []string{"shop.*", "admin.access"}, session.Permissions)
	// В памяти токены в открытом виде
	assert.Equal(t, "access-1", session.AccessToken)
	assert.Equal(t, "refresh-1", session.RefreshToken)

	// Профиль и permissions запрошены ровно по одному разу
	assert.Len(t, mock.ProfileCalls(), 1)
	assert.Len(t, mock.PermissionsCalls(), 1)

	// В storage токены зашифрованы
	stored, err := store.GetSession(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "access-1", stored.AccessToken)
	assert.NotEqual(t, "refresh-1", stored.RefreshToken)
	assert.NotEmpty(t, stored.AccessToken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	store := newTestStore(t)
	mock := newAPIMock()
	mock.LoginFunc = func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
		return nil, errors.New("invalid credentials")
	}
	svc := NewService(testLogger(), mock, store, testKey())

	_, err := svc.Login(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)

	// Сессия не сохранена
	_, err = store.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestLogin_ProfileFailure(t *testing.T) {
	store := newTestStore(t)
	mock := newAPIMock()
	mock.ProfileFunc = func(ctx context.Context) (*api.ProfileResponse, error) {
		return nil, errors.New("upstream down")
	}
	svc := NewService(testLogger(), mock, store, testKey())

	_, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load profile")
}

func TestRestore_Success(t *testing.T) {
	store := newTestStore(t)
	mock := newAPIMock()
	svc := NewService(testLogger(), mock, store, testKey())

	_, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)

	restored, err := svc.Restore(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", restored.Email)
	assert.Equal(t, "access-1", restored.AccessToken)
	assert.Equal(t, "refresh-1", restored.RefreshToken)

	// Расшифрованная пара передана API клиенту
	calls := mock.SetTokensCalls()
	require.NotEmpty(t, calls)
	last := calls[len(calls)-1]
	assert.Equal(t, "access-1", last.AccessToken)
	assert.Equal(t, "refresh-1", last.RefreshToken)
}

func TestRestore_NoSession(t *testing.T) {
	svc := NewService(testLogger(), newAPIMock(), newTestStore(t), testKey())

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestRestore_WrongDeviceKey(t *testing.T) {
	store := newTestStore(t)

	svc := NewService(testLogger(), newAPIMock(), store, testKey())
	_, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)

	// Другой device key не может расшифровать токены
	otherKey := testKey()
	otherKey[0] ^= 0xFF
	other := NewService(testLogger(), newAPIMock(), store, otherKey)

	_, err = other.Restore(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decrypt")
}

func TestLogout_DeletesSessionEvenIfServerFails(t *testing.T) {
	store := newTestStore(t)
	mock := newAPIMock()
	mock.LogoutFunc = func(ctx context.Context) error {
		return errors.New("gateway unreachable")
	}
	svc := NewService(testLogger(), mock, store, testKey())

	_, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))

	authenticated, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, authenticated)
}

func TestLogout_NoSession(t *testing.T) {
	svc := NewService(testLogger(), newAPIMock(), newTestStore(t), testKey())

	assert.NoError(t, svc.Logout(context.Background()))
}

func TestTokenRefreshPersisted(t *testing.T) {
	store := newTestStore(t)

	// Перехватываем callback, который сервис регистрирует в API клиенте
	var onRefresh func(ctx context.Context, tokens *api.TokenResponse)
	mock := newAPIMock()
	mock.OnTokenRefreshFunc = func(fn func(ctx context.Context, tokens *api.TokenResponse)) {
		onRefresh = fn
	}

	svc := NewService(testLogger(), mock, store, testKey())
	require.NotNil(t, onRefresh)

	_, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)

	// API клиент обновил пару токенов
	onRefresh(context.Background(), &api.TokenResponse{AccessToken: "access-2", RefreshToken: "refresh-2", ExpiresIn: 900})

	restored, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-2", restored.AccessToken)
	assert.Equal(t, "refresh-2", restored.RefreshToken)
}
