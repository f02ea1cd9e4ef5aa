package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/aurea-shop/aurea/internal/client/catalog"
	"github.com/aurea-shop/aurea/internal/validation"
	"github.com/aurea-shop/aurea/pkg/api"
)

// runBrowse показывает каталог.
// С аргументами filter=value выполняется один запрос, без аргументов
// открывается интерактивный режим с состоянием фильтров.
func (c *Cli) runBrowse(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.runBrowseInteractive(ctx)
	}

	query, err := parseFilterArgs(args)
	if err != nil {
		return err
	}

	if slug := query.Get(catalog.FilterCategory); slug != "" {
		if err := validation.ValidateSlug(slug); err != nil {
			return fmt.Errorf("invalid category: %w", err)
		}
	}

	filters := catalog.Parse(query)

	resp, err := c.api.Shop(ctx, filters.Encode())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	return c.renderShopPage(filters, resp)
}

// runBrowseInteractive держит состояние фильтров в catalog.Manager:
// keyword применяется с debounce, остальные фильтры сразу, смена
// любого фильтра кроме sort возвращает на первую страницу.
func (c *Cli) runBrowseInteractive(ctx context.Context) error {
	// Вывод страницы может прийти из debounce таймера,
	// сериализуем его с выводом команд
	var mu sync.Mutex
	show := func(f catalog.Filters) {
		mu.Lock()
		defer mu.Unlock()

		resp, err := c.api.Shop(ctx, f.Encode())
		if err != nil {
			c.io.Printf("Error: %v\n", err)
			return
		}
		if err := c.renderShopPage(f, resp); err != nil {
			c.io.Printf("Error: %v\n", err)
		}
	}

	manager := catalog.NewManager(nil, show)
	defer manager.Stop()

	c.io.Println("=== Browse === (type 'help' for commands, 'quit' to exit)")
	show(manager.Filters())

	for {
		input, err := c.io.ReadInput("browse> ")
		if err != nil {
			// EOF завершает сессию как quit
			return nil
		}

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit", "q":
			return nil
		case "help":
			c.printBrowseHelp()
		case "page":
			if len(fields) != 2 {
				c.io.Println("usage: page <number>")
				continue
			}
			var page int
			if _, err := fmt.Sscanf(fields[1], "%d", &page); err != nil {
				c.io.Printf("invalid page: %s\n", fields[1])
				continue
			}
			manager.SetPage(page)
		case "size":
			if len(fields) != 2 {
				c.io.Println("usage: size <number>")
				continue
			}
			var size int
			if _, err := fmt.Sscanf(fields[1], "%d", &size); err != nil {
				c.io.Printf("invalid size: %s\n", fields[1])
				continue
			}
			manager.SetLimit(size)
		case "next":
			manager.SetPage(manager.Filters().Page + 1)
		case "prev":
			manager.SetPage(manager.Filters().Page - 1)
		case "reset":
			manager.Reset()
		default:
			key, value, found := strings.Cut(input, "=")
			if !found || key == "" {
				c.io.Printf("unknown command: %s\n", fields[0])
				continue
			}
			if key == catalog.FilterCategory && value != "" {
				if err := validation.ValidateSlug(value); err != nil {
					c.io.Printf("invalid category: %v\n", err)
					continue
				}
			}
			manager.SetFilter(strings.TrimSpace(key), strings.TrimSpace(value))
		}
	}
}

func (c *Cli) printBrowseHelp() {
	c.io.Println("Commands:")
	c.io.Println("  <filter>=<value>   Set a filter (keyword, category, sort, minPrice, maxPrice, color, inStock)")
	c.io.Println("  <filter>=          Clear a filter")
	c.io.Println("  page <n>           Go to page n")
	c.io.Println("  next | prev        Page forward / back")
	c.io.Println("  size <n>           Change page size")
	c.io.Println("  reset              Reset all filters")
	c.io.Println("  quit               Exit browse")
}

// renderShopPage печатает страницу товаров и пагинацию
func (c *Cli) renderShopPage(filters catalog.Filters, resp *api.ShopResponse) error {
	if len(resp.Products) == 0 {
		c.io.Println("No products found.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tBRAND\tPRICE\tSTOCK")
	for _, p := range resp.Products {
		stock := "out of stock"
		if p.InStock {
			stock = "in stock"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n", p.ID, p.Name, p.Brand, p.Price, stock)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render products: %w", err)
	}

	c.io.Println()
	c.io.Printf("Page %d of %d (%d products)\n", resp.Meta.Page, resp.Meta.TotalPages, resp.Meta.TotalElements)

	filters.Page = resp.Meta.Page
	if filters.HasNextPage(resp.Meta.TotalPages) {
		c.io.Println("More pages available: 'next' in browse mode or page=N")
	}

	return nil
}

// parseFilterArgs разбирает аргументы вида key=value в query параметры
func parseFilterArgs(args []string) (url.Values, error) {
	query := url.Values{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" || value == "" {
			return nil, fmt.Errorf("invalid filter %q, expected filter=value", arg)
		}
		query.Set(key, value)
	}
	return query, nil
}
