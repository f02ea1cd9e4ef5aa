package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurea-shop/aurea/internal/gateway/cache"
	"github.com/aurea-shop/aurea/pkg/api"
)

func newRevalidateHandler(t *testing.T, secret string) (*RevalidateHandler, *cache.Cache) {
	t.Helper()

	c := cache.New(testLogger())
	t.Cleanup(func() { _ = c.Stop() })

	return NewRevalidateHandler(testLogger(), c, secret), c
}

func TestRevalidate_InvalidatesTag(t *testing.T) {
	h, c := newRevalidateHandler(t, "")
	ctx := context.Background()

	c.Set(ctx, "products:page=1", TagProducts, []byte("data"), time.Minute)

	req := httptest.NewRequest(http.MethodPost, "/api/revalidate?tag=products", nil)
	w := httptest.NewRecorder()
	h.Revalidate(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.RevalidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "products", resp.Revalidated)
	assert.NotEmpty(t, resp.Timestamp)

	_, ok := c.Get(ctx, "products:page=1")
	assert.False(t, ok)
}

func TestRevalidate_MissingTag(t *testing.T) {
	h, _ := newRevalidateHandler(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/revalidate", nil)
	w := httptest.NewRecorder()
	h.Revalidate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRevalidate_SecretRequired(t *testing.T) {
	h, _ := newRevalidateHandler(t, "s3cret")

	// Без секрета
	req := httptest.NewRequest(http.MethodPost, "/api/revalidate?tag=products", nil)
	w := httptest.NewRecorder()
	h.Revalidate(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// С неверным секретом
	req = httptest.NewRequest(http.MethodPost, "/api/revalidate?tag=products&secret=wrong", nil)
	w = httptest.NewRecorder()
	h.Revalidate(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// С верным секретом
	req = httptest.NewRequest(http.MethodPost, "/api/revalidate?tag=products&secret=s3cret", nil)
	w = httptest.NewRecorder()
	h.Revalidate(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
