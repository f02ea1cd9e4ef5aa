package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurea-shop/aurea/internal/client/storage"
)

func testSession() *storage.SessionData {
	return &storage.SessionData{
		Email:        "user@example.com",
		Name:         "User",
		AccessToken:  "encrypted-access",
		RefreshToken: "encrypted-refresh",
		Permissions:  []string{"shop.*"},
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}
}

func TestSaveGetSession(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, testSession()))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", got.Email)
	assert.Equal(t, "encrypted-access", got.AccessToken)
	assert.Equal(t, []string{"shop.*"}, got.Permissions)
}

func TestGetSession_NotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSaveSession_Overwrites(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, testSession()))

	updated := testSession()
	updated.AccessToken = "rotated-access"
	require.NoError(t, store.SaveSession(ctx, updated))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rotated-access", got.AccessToken)
}

func TestDeleteSession(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, testSession()))
	require.NoError(t, store.DeleteSession(ctx))

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторное удаление возвращает ErrSessionNotFound
	assert.ErrorIs(t, store.DeleteSession(ctx), storage.ErrSessionNotFound)
}

func TestIsAuthenticated(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	// Без сессии
	ok, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Живая сессия
	require.NoError(t, store.SaveSession(ctx, testSession()))
	ok, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// Истекшая сессия
	expired := testSession()
	expired.ExpiresAt = time.Now().Add(-time.Hour).Unix()
	require.NoError(t, store.SaveSession(ctx, expired))
	ok, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
