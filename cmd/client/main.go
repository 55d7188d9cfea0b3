package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/iudanet/gophcollab/internal/client/api"
	"github.com/iudanet/gophcollab/internal/client/cli"
	"github.com/iudanet/gophcollab/internal/client/config"
	"github.com/iudanet/gophcollab/internal/client/iocli"
	"github.com/iudanet/gophcollab/internal/client/render"
	"github.com/iudanet/gophcollab/internal/client/storage/boltdb"
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
	configPath := flag.String("config", config.DefaultPath(), "Path to config file")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")
	name := flag.String("name", "", "Display name (overrides config)")
	workspace := flag.String("workspace", "", "Workspace to join (overrides config)")
	throttle := flag.Duration("cursor-throttle", 0, "Minimum interval between caret broadcasts")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	// Флаги имеют наивысший приоритет
	if *serverURL != "" {
		cfg.Server = *serverURL
	}
	if *dbPath != "" {
		cfg.DB = *dbPath
	}
	if *name != "" {
		cfg.Name = *name
	}
	if *workspace != "" {
		cfg.Workspace = *workspace
	}
	if *throttle > 0 {
		cfg.CursorThrottle = *throttle
	}

	// Логи пишем в stderr, чтобы не мешать отрисовке документа
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(filepath.Dir(cfg.DB), 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create database directory: %v\n", err)
		os.Exit(1)
	}

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(cfg.Server)

	c := cli.New(stdio, boltStorage, apiClient, render.New(os.Stdout), cli.Options{
		Server:     cfg.Server,
		Workspace:  cfg.Workspace,
		Name:       cfg.Name,
		Throttle:   cfg.CursorThrottle,
		MaxElapsed: cfg.Reconnect.MaxElapsed,
	}, logger)

	start := time.Now()
	err = c.Run(ctx, args[0], args[1:])
	logger.Debug("Command finished", "command", args[0], "elapsed", time.Since(start))

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		_ = boltStorage.Close()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("GophCollab Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
