package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aurea-shop/aurea/internal/client/api"
	"github.com/aurea-shop/aurea/internal/client/cart"
	"github.com/aurea-shop/aurea/internal/client/cli"
	"github.com/aurea-shop/aurea/internal/client/iocli"
	"github.com/aurea-shop/aurea/internal/client/session"
	"github.com/aurea-shop/aurea/internal/client/storage/boltdb"
	"github.com/aurea-shop/aurea/internal/crypto"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Gateway URL")
	dbPath := flag.String("db", "aurea-client.db", "Path to local database")
	keyPath := flag.String("key", "aurea-device.key", "Path to device key file")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	// Логи клиента уходят в stderr, чтобы не мешать выводу команд
	logOutput := io.Discard
	if *verbose {
		logOutput = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOutput, nil))

	ctx := context.Background()

	// Device key шифрует токены сессии в локальной базе
	deviceKey, err := crypto.LoadOrCreateDeviceKey(*keyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load device key: %v\n", err)
		os.Exit(1)
	}

	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	sessionService := session.NewService(logger, apiClient, store, deviceKey)
	cartService := cart.NewService(logger, store, nil)

	// Восстанавливаем сессию, если она есть: команды каталога
	// работают и без нее
	if _, err := sessionService.Restore(ctx); err != nil {
		logger.Debug("no session restored", "error", err)
	}

	c := cli.New(iocli.NewStdio(), apiClient, sessionService, cartService)

	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Aurea Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
