package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/iudanet/gophcollab/internal/server"
	"github.com/iudanet/gophcollab/internal/server/hub"
	"github.com/iudanet/gophcollab/internal/server/middleware"
	"github.com/iudanet/gophcollab/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 5 * time.Second

type options struct {
	addr     string
	db       string
	logLevel string
	history  int
	rate     int
}

func main() {
	var opts options
	showVersion := flag.Bool("version", false, "Show version information")
	flag.StringVar(&opts.addr, "addr", ":8080", "HTTP listen address")
	flag.StringVar(&opts.db, "db", "gophcollab.db", "Path to SQLite database")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.IntVar(&opts.history, "history", hub.DefaultHistoryLimit, "Number of changes kept for rebasing stale edits")
	flag.IntVar(&opts.rate, "rate", 120, "Requests per minute allowed per client address")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q\n", opts.logLevel)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, logger *slog.Logger) error {
	store, err := sqlite.New(ctx, opts.db)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	h := hub.New(store, opts.history, logger)
	if err := h.Load(ctx); err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(opts.rate, time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr: opts.addr,
		Handler: server.NewRouter(server.Deps{
			Relay:   h,
			Store:   store,
			Limiter: limiter,
			Logger:  logger,
			Version: Version,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// Остановка хаба закрывает очереди и тем самым websocket соединения
		_ = h.Run(hubCtx)
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("GophCollab relay listening", "addr", opts.addr, "version", Version)
		errCh <- srv.ListenAndServe()
	}()

	var runErr error
	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
		}
	}

	stopHub()
	wg.Wait()
	return runErr
}

func printVersion() {
	fmt.Printf("GophCollab Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
