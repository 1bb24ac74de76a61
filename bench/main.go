package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bench/internal/attack"
	"bench/internal/config"
	"bench/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var tokens []string
	if attack.NeedsTokens(cfg.BenchType) {
		tokens, err = seed.Run(ctx, seed.Options{
			BaseURL:            cfg.BaseURL,
			Users:              cfg.SeedUsers,
			Workers:            cfg.SeedWorkers,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
			Timeout:            cfg.SeedTimeout,
		})
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return attack.Run(&attack.Config{
		BaseURL:            cfg.BaseURL,
		Tokens:             tokens,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		Type:               cfg.BenchType,
		MaxOrderItems:      cfg.MaxOrderItems,
		OrderRatio:         cfg.OrderRatio,
		MetricsRatio:       cfg.MetricsRatio,
		Connections:        cfg.Connections,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	})
}
