package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches_Exact(t *testing.T) {
	assert.True(t, Matches("shop.product.view", "shop.product.view"))
	assert.False(t, Matches("shop.product.view", "shop.product.create"))
}

func TestMatches_Universal(t *testing.T) {
	assert.True(t, Matches("*", "anything.at.all"))
	assert.True(t, Matches("*", "shop.product.create"))
}

func TestMatches_PrefixWildcard(t *testing.T) {
	assert.True(t, Matches("shop.*", "shop.product.create"))
	assert.True(t, Matches("shop.*", "shop.order.view"))

	// wildcard не покрывает сам префикс без сегмента
	assert.False(t, Matches("shop.*", "shop"))

	// и не покрывает чужой префикс
	assert.False(t, Matches("shop.*", "admin.user.delete"))

	// "shop.*" не должен матчить "shopping.cart.view" по префиксу строки
	assert.False(t, Matches("shop.*", "shopping.cart.view"))
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission([]string{"shop.*"}, "shop.product.create"))
	assert.False(t, HasPermission([]string{"shop.product.view"}, "shop.product.create"))
	assert.True(t, HasPermission([]string{"*"}, "anything.at.all"))

	// fail-closed: пустой список и nil всегда запрещают
	assert.False(t, HasPermission(nil, "shop.product.view"))
	assert.False(t, HasPermission([]string{}, "shop.product.view"))
}

func TestHasPermission_MultipleGranted(t *testing.T) {
	granted := []string{"shop.product.view", "shop.order.*"}

	assert.True(t, HasPermission(granted, "shop.product.view"))
	assert.True(t, HasPermission(granted, "shop.order.refund"))
	assert.False(t, HasPermission(granted, "shop.product.create"))
}

func TestHasAnyPermission(t *testing.T) {
	granted := []string{"shop.order.*"}

	assert.True(t, HasAnyPermission(granted, "shop.product.view", "shop.order.view"))
	assert.False(t, HasAnyPermission(granted, "shop.product.view", "shop.product.create"))
	assert.False(t, HasAnyPermission(granted))
}
