package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aurea-shop/aurea/internal/client/storage"
	"github.com/aurea-shop/aurea/internal/permissions"
)

// adminPermission требуется для доступа к admin endpoints
const adminPermission = "admin.access"

// runAdmin выполняет GET запрос к admin пути gateway.
// Permission проверяется локально до запроса, чтобы дать внятную
// ошибку без round trip; gateway проверяет его повторно.
func (c *Cli) runAdmin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: aurea admin <path>")
	}

	sessionData, err := c.session.Restore(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return fmt.Errorf("not authenticated. Run 'aurea login' first")
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	if !permissions.HasPermission(sessionData.Permissions, adminPermission) {
		return fmt.Errorf("permission denied: %s required", adminPermission)
	}

	raw, err := c.api.Admin(ctx, args[0])
	if err != nil {
		return fmt.Errorf("admin request failed: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		// Не JSON, печатаем как есть
		c.io.Println(string(raw))
		return nil
	}

	c.io.Println(pretty.String())

	return nil
}
