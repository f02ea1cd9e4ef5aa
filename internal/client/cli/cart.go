package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aurea-shop/aurea/internal/models"
	"github.com/aurea-shop/aurea/internal/validation"
)

func (c *Cli) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: aurea cart <list|add|update|remove|clear>")
	}

	switch args[0] {
	case "list":
		return c.runCartList(ctx)
	case "add":
		return c.runCartAdd(ctx, args[1:])
	case "update":
		return c.runCartUpdate(ctx, args[1:])
	case "remove":
		return c.runCartRemove(ctx, args[1:])
	case "clear":
		return c.runCartClear(ctx)
	default:
		return fmt.Errorf("unknown cart command: %s", args[0])
	}
}

func (c *Cli) runCartList(ctx context.Context) error {
	items, err := c.cart.Items(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		c.io.Println("Your cart is empty.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tVARIANT\tPRICE\tQTY\tSUBTOTAL")

	var total float64
	for _, item := range items {
		variant := item.VariantSKU
		if variant == "" {
			variant = item.VariantID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%.2f\n",
			item.Key(), item.Name, variant, item.Price, item.Quantity, item.Subtotal())
		total += item.Subtotal()
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render cart: %w", err)
	}

	c.io.Println()
	c.io.Printf("Total: %.2f\n", total)

	return nil
}

// runCartAdd добавляет товар в корзину.
// Данные товара запрашиваются у gateway, чтобы в корзине
// оказались актуальные название и цена.
func (c *Cli) runCartAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: aurea cart add <productId> [variantId] [quantity]")
	}

	productID := args[0]
	variantID := ""
	quantity := 1

	if len(args) > 1 {
		// Второй аргумент может быть variantId или quantity
		if n, err := strconv.Atoi(args[1]); err == nil {
			quantity = n
		} else {
			variantID = args[1]
		}
	}
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid quantity: %s", args[2])
		}
		quantity = n
	}

	if err := validation.ValidateQuantity(quantity); err != nil {
		return err
	}

	product, err := c.api.Product(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to load product: %w", err)
	}

	item := models.CartItem{
		ID:             product.ID,
		Name:           product.Name,
		Brand:          product.Brand,
		ImageURL:       product.ImageURL,
		VariantID:      variantID,
		Price:          product.Price,
		Quantity:       quantity,
		InStock:        product.InStock,
		AvailableStock: product.AvailableStock,
	}

	if err := c.cart.AddItem(ctx, item); err != nil {
		return err
	}

	c.io.Printf("✓ Added %d x %s\n", quantity, product.Name)

	return nil
}

func (c *Cli) runCartUpdate(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: aurea cart update <key> <quantity>")
	}

	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity: %s", args[1])
	}

	if err := c.cart.UpdateQuantity(ctx, args[0], quantity); err != nil {
		return err
	}

	if quantity <= 0 {
		c.io.Printf("✓ Removed %s\n", args[0])
	} else {
		c.io.Printf("✓ Updated %s to %d\n", args[0], quantity)
	}

	return nil
}

func (c *Cli) runCartRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: aurea cart remove <key>")
	}

	if err := c.cart.RemoveItem(ctx, args[0]); err != nil {
		return err
	}

	c.io.Printf("✓ Removed %s\n", args[0])

	return nil
}

// runCartClear опустошает корзину после явного подтверждения.
// Это единственная команда, уничтожающая позиции.
func (c *Cli) runCartClear(ctx context.Context) error {
	answer, err := c.io.ReadInput("Remove all items from the cart? [y/N]: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.cart.Clear(ctx); err != nil {
		return err
	}

	c.io.Println("✓ Cart cleared.")

	return nil
}
