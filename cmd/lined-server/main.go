package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/tbxark/lined/pkg/lined/common"
	"github.com/tbxark/lined/pkg/lined/config"
	"github.com/tbxark/lined/pkg/lined/server"
	"github.com/tbxark/lined/pkg/lined/version"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Configuration validation failed: %v\n", err)
		os.Exit(1)
	}

	logger, err := common.NewLogger(common.ParseLevel(cfg.LogLevel), cfg.LogFile)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("Starting TCP server",
		zap.Int("port", cfg.Port),
		zap.Int("thread_pool_size", cfg.ThreadPoolSize),
		zap.Int("max_connections", cfg.MaxConnections),
		zap.String("log_level", cfg.LogLevel))

	srv := server.NewServer(cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	// Start returns only after the pool has drained, so in-flight
	// connections finish before the process exits.
	if err := srv.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Server error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	logger.Info("Server stopped", zap.Int("active_clients", srv.ActiveClients()))
}

func loadConfig() (*config.Config, error) {
	var showVersion bool
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	pflag.Parse()

	if showVersion {
		fmt.Println(version.GetFullVersion())
		os.Exit(0)
	}

	path := config.DefaultPath
	if pflag.NArg() > 0 {
		path = pflag.Arg(0)
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Println("Using default configuration")
			return config.Default(), nil
		}
		return nil, err
	}

	fmt.Printf("Loaded configuration from %s\n", path)
	return cfg, nil
}
