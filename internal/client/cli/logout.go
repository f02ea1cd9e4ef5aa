package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.session.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	// Корзина возвращается в гостевой режим, позиции сохраняются
	if err := c.cart.Logout(ctx); err != nil {
		return fmt.Errorf("failed to switch cart: %w", err)
	}

	c.io.Println("✓ Logged out. Your cart items are kept for the next visit.")

	return nil
}
