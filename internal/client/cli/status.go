package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aurea-shop/aurea/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	authenticated, err := c.session.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}

	if !authenticated {
		c.io.Println("Not authenticated. Run 'aurea login' first.")
		return nil
	}

	sessionData, err := c.session.Restore(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Not authenticated. Run 'aurea login' first.")
			return nil
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	c.io.Println("Authenticated")
	c.io.Printf("Email: %s\n", sessionData.Email)
	c.io.Printf("Name:  %s\n", sessionData.Name)

	items, err := c.cart.Items(ctx)
	if err != nil {
		return err
	}
	c.io.Printf("Cart:  %d item(s)\n", len(items))

	return nil
}
