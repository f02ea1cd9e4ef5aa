package cli

import (
	"context"
	"fmt"

	"github.com/aurea-shop/aurea/internal/validation"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	sessionData, err := c.session.Login(ctx, email, password)
	if err != nil {
		return err
	}

	// Переводим корзину в авторизованный режим: гостевые позиции
	// сливаются один раз
	if err := c.cart.Login(ctx); err != nil {
		return fmt.Errorf("failed to switch cart: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Welcome, %s!\n", sessionData.Name)
	c.io.Printf("Permissions: %d\n", len(sessionData.Permissions))

	return nil
}
