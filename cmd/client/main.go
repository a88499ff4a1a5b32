package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/stocktake/internal/client/api"
	"github.com/iudanet/stocktake/internal/client/cli"
	"github.com/iudanet/stocktake/internal/client/device"
	"github.com/iudanet/stocktake/internal/client/iocli"
	"github.com/iudanet/stocktake/internal/client/storage/boltdb"
	"github.com/iudanet/stocktake/internal/ledger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги; значения по умолчанию берутся из окружения
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envString("STOCKTAKE_SERVER", ""), "Sync server URL (empty = offline mode)")
	dbPath := flag.String("db", envString("STOCKTAKE_CLIENT_DB", "stocktake-client.db"), "Path to local database")
	catalogPath := flag.String("catalog", envString("STOCKTAKE_CATALOG", ""), "Path to CSV barcode catalog")
	upstreamURL := flag.String("upstream", envString("STOCKTAKE_UPSTREAM", ""), "Inventory system endpoint for totals upload")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	// Лог в stderr, чтобы не мешаться с выводом команд и пакетами
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Локальный сервис леджера поверх той же базы: устройство-хост сливает
	// пакеты полностью офлайн
	ledgerSvc := ledger.NewService(boltStorage, logger)

	// API клиент только при настроенном сервере
	var apiClient api.ClientAPI
	if *serverURL != "" {
		apiClient = api.NewClient(*serverURL)
	}

	var resolver device.CatalogResolver
	if *catalogPath != "" {
		resolver = device.NewCSVResolver(*catalogPath)
	}

	var uploader device.Uploader
	if *upstreamURL != "" {
		uploader = device.NewHTTPUploader(*upstreamURL)
	}

	deviceSvc := device.NewService(boltStorage, ledgerSvc, apiClient, resolver, uploader, logger)

	c := cli.New(iocli.NewStdio(), deviceSvc)
	c.Run(ctx, command, args[1:])
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func printVersion() {
	fmt.Printf("Stocktake Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
