// Command buyer trades from a pool.json written by poolbuilder.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/rickgao/kalshi-trader/internal/api"
	"github.com/rickgao/kalshi-trader/internal/auth"
	"github.com/rickgao/kalshi-trader/internal/config"
	"github.com/rickgao/kalshi-trader/internal/pool"
	"github.com/rickgao/kalshi-trader/internal/report"
	"github.com/rickgao/kalshi-trader/internal/trade"
	"github.com/rickgao/kalshi-trader/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/trader.yaml", "path to config file")
	poolPath := flag.String("pool", "", "pool input path (overrides pool.snapshot_path)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting buyer", "version", version.Version, "config", *configPath)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.API.ValidateCredentials(); err != nil {
		logger.Error("missing credentials", "error", err)
		os.Exit(1)
	}

	creds, err := auth.Load(cfg.API.KeyID, cfg.API.PrivateKeyPEM, cfg.API.PrivateKeyPath)
	if err != nil {
		logger.Error("failed to load credentials", "error", err)
		os.Exit(1)
	}

	path := cfg.Pool.SnapshotPath
	if *poolPath != "" {
		path = *poolPath
	}

	p, err := pool.Load(path)
	if err != nil {
		logger.Error("failed to load pool; run poolbuilder first", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("pool loaded", "path", path, "markets", len(p))

	client := api.NewClient(
		cfg.API.RestURL,
		creds,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRateLimit(cfg.API.RateLimit, api.DefaultBurst),
	)

	executor := trade.NewExecutor(client, trade.Options{
		Mode:             trade.Mode(cfg.Trade.Mode),
		Side:             trade.SideStrategy(cfg.Trade.Side),
		OrderType:        trade.OrderType(cfg.Trade.OrderType),
		PriceBufferCents: cfg.Trade.PriceBufferCents,
		SubmitTimeout:    cfg.Trade.SubmitTimeout,
	}, logger)

	results := executor.Execute(context.Background(), p)
	report.PrintResults(os.Stdout, results)
}
