// Package cli реализует команды терминального клиента витрины
package cli

import (
	"fmt"

	apiclient "github.com/aurea-shop/aurea/internal/client/api"
	"github.com/aurea-shop/aurea/internal/client/cart"
	"github.com/aurea-shop/aurea/internal/client/iocli"
	"github.com/aurea-shop/aurea/internal/client/session"
)

type Cli struct {
	io      iocli.IO
	api     apiclient.GatewayAPI
	session *session.Service
	cart    *cart.Service
}

func New(io iocli.IO, api apiclient.GatewayAPI, sessionService *session.Service, cartService *cart.Service) *Cli {
	return &Cli{
		io:      io,
		api:     api,
		session: sessionService,
		cart:    cartService,
	}
}

func PrintUsage() {
	fmt.Println("Aurea Storefront Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  aurea [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Gateway URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to local database (default: aurea-client.db)")
	fmt.Println("  --key PATH     Path to device key file (default: aurea-device.key)")
	fmt.Println("  -v             Verbose logging to stderr")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                          Login to the storefront")
	fmt.Println("  logout                         Logout and clear local session")
	fmt.Println("  status                         Show authentication status")
	fmt.Println("  profile                        Show current user profile")
	fmt.Println("  browse                         Browse the catalog interactively")
	fmt.Println("  browse <filter=value ...>      One-shot catalog query")
	fmt.Println("  categories                     Show the category tree")
	fmt.Println("  cart list                      Show cart contents")
	fmt.Println("  cart add <productId> [variantId] [quantity]")
	fmt.Println("  cart update <key> <quantity>   Change line quantity")
	fmt.Println("  cart remove <key>              Remove a line")
	fmt.Println("  cart clear                     Empty the cart")
	fmt.Println("  admin <path>                   Query an admin endpoint (requires admin.access)")
	fmt.Println()
	fmt.Println("Browse filters:")
	fmt.Println("  keyword, category (slug), sort, minPrice, maxPrice, color, inStock, page, size")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  aurea login")
	fmt.Println("  aurea browse keyword=silk category=dresses page=2")
	fmt.Println("  aurea cart add b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 v-m 2")
	fmt.Println("  aurea cart remove b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5:v-m")
	fmt.Println("  aurea --server https://shop.example.com admin users")
}
