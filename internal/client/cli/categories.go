package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/aurea-shop/aurea/pkg/api"
)

func (c *Cli) runCategories(ctx context.Context) error {
	resp, err := c.api.Shop(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	if len(resp.Categories) == 0 {
		c.io.Println("No categories available.")
		return nil
	}

	c.io.Println("=== Categories ===")
	c.printCategoryTree(resp.Categories, 0)

	return nil
}

// printCategoryTree печатает дерево категорий с отступом по уровню.
// Slug показывается как аргумент для browse category=<slug>.
func (c *Cli) printCategoryTree(categories []api.Category, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, category := range categories {
		c.io.Printf("%s%s (%s)\n", indent, category.Name, category.Slug)
		if len(category.Children) > 0 {
			c.printCategoryTree(category.Children, depth+1)
		}
	}
}
