// Command trader builds the market pool and trades from it in one run.
// Everything happens in memory; invoke it on a cadence via cron.
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
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting trader",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

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

	client := api.NewClient(
		cfg.API.RestURL,
		creds,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRateLimit(cfg.API.RateLimit, api.DefaultBurst),
	)

	ctx := context.Background()

	builder := pool.NewBuilder(poolConfig(cfg), client, logger)
	p := builder.Build(ctx)
	report.PrintPool(os.Stdout, p)

	if len(p) == 0 {
		logger.Info("no markets to trade, exiting")
		return
	}

	executor := trade.NewExecutor(client, tradeOptions(cfg), logger)
	results := executor.Execute(ctx, p)
	report.PrintResults(os.Stdout, results)
}

func poolConfig(cfg *config.TraderConfig) pool.Config {
	return pool.Config{
		Series:            cfg.Pool.Series,
		MaxSpreadCents:    cfg.Pool.MaxSpreadCents,
		MinLiquidityCents: cfg.Pool.MinLiquidityCents,
		TopPerEvent:       cfg.Pool.TopPerEvent,
		MinTimeBuffer:     cfg.Pool.MinTimeBuffer,
		FetchTimeout:      cfg.API.Timeout,
	}
}

func tradeOptions(cfg *config.TraderConfig) trade.Options {
	return trade.Options{
		Mode:             trade.Mode(cfg.Trade.Mode),
		Side:             trade.SideStrategy(cfg.Trade.Side),
		OrderType:        trade.OrderType(cfg.Trade.OrderType),
		PriceBufferCents: cfg.Trade.PriceBufferCents,
		SubmitTimeout:    cfg.Trade.SubmitTimeout,
	}
}
