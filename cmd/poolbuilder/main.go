// Command poolbuilder builds the market pool and writes it to the pool.json
// interchange file for a later buyer run. No credentials are needed: market
// listings are public.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/rickgao/kalshi-trader/internal/api"
	"github.com/rickgao/kalshi-trader/internal/config"
	"github.com/rickgao/kalshi-trader/internal/pool"
	"github.com/rickgao/kalshi-trader/internal/report"
	"github.com/rickgao/kalshi-trader/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/trader.yaml", "path to config file")
	outPath := flag.String("out", "", "pool output path (overrides pool.snapshot_path)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting poolbuilder", "version", version.Version, "config", *configPath)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client := api.NewClient(
		cfg.API.RestURL,
		nil, // public endpoints only
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRateLimit(cfg.API.RateLimit, api.DefaultBurst),
	)

	builder := pool.NewBuilder(pool.Config{
		Series:            cfg.Pool.Series,
		MaxSpreadCents:    cfg.Pool.MaxSpreadCents,
		MinLiquidityCents: cfg.Pool.MinLiquidityCents,
		TopPerEvent:       cfg.Pool.TopPerEvent,
		MinTimeBuffer:     cfg.Pool.MinTimeBuffer,
		FetchTimeout:      cfg.API.Timeout,
	}, client, logger)

	p := builder.Build(context.Background())
	report.PrintPool(os.Stdout, p)

	path := cfg.Pool.SnapshotPath
	if *outPath != "" {
		path = *outPath
	}

	if err := pool.Save(path, p); err != nil {
		logger.Error("failed to write pool", "path", path, "error", err)
		os.Exit(1)
	}

	logger.Info("pool written", "path", path, "markets", len(p))
}
