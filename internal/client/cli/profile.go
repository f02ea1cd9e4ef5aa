package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runProfile(ctx context.Context) error {
	profile, err := c.api.Profile(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	c.io.Println("=== Profile ===")
	c.io.Printf("ID:    %s\n", profile.ID)
	c.io.Printf("Email: %s\n", profile.Email)
	c.io.Printf("Name:  %s\n", profile.Name)

	if len(profile.Permissions) > 0 {
		c.io.Println("Permissions:")
		for _, p := range profile.Permissions {
			c.io.Printf("  %s\n", p)
		}
	}

	return nil
}
