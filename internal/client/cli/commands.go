package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. Ошибка возвращается вызывающему,
// код выхода процесса решает main.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "profile":
		return c.runProfile(ctx)
	case "browse":
		return c.runBrowse(ctx, args)
	case "categories":
		return c.runCategories(ctx)
	case "cart":
		return c.runCart(ctx, args)
	case "admin":
		return c.runAdmin(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
