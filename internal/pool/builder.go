package pool

import (
	"context"
	"log/slog"
	"time"

	"github.com/rickgao/kalshi-trader/internal/model"
)

// Config holds pool construction settings.
type Config struct {
	Series            []string      // series tickers, in pool order
	MaxSpreadCents    int           // both yes and no spreads must be under this
	MinLiquidityCents int64         // minimum resting liquidity
	TopPerEvent       int           // keep the N most liquid per event; 0 = unlimited
	MinTimeBuffer     time.Duration // events must close at least this far out
	FetchTimeout      time.Duration // per-series listing fetch budget
}

// MarketLister fetches all open markets for a series.
type MarketLister interface {
	OpenMarkets(ctx context.Context, seriesTicker string) ([]model.Market, error)
}

// Builder assembles the pool across all configured series.
type Builder struct {
	cfg    Config
	lister MarketLister
	logger *slog.Logger
	now    func() time.Time
}

// NewBuilder creates a Builder. Thresholds come from cfg, not package state,
// so tests can inject alternates.
func NewBuilder(cfg Config, lister MarketLister, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 25 * time.Second
	}
	return &Builder{
		cfg:    cfg,
		lister: lister,
		logger: logger,
		now:    time.Now,
	}
}

// Build fetches, selects and filters every configured series and concatenates
// the survivors. A series whose fetch fails, or that yields no event or no
// survivors, contributes nothing; the remaining series still proceed. An
// empty pool is a valid outcome meaning there is nothing to trade this cycle.
func (b *Builder) Build(ctx context.Context) model.Pool {
	var p model.Pool

	for _, series := range b.cfg.Series {
		fetchCtx, cancel := context.WithTimeout(ctx, b.cfg.FetchTimeout)
		markets, err := b.lister.OpenMarkets(fetchCtx, series)
		cancel()
		if err != nil {
			b.logger.Warn("series fetch failed, skipping",
				"series", series,
				"err", err,
			)
			continue
		}

		event, members := SelectEvent(markets, b.now(), b.cfg.MinTimeBuffer)
		if event == "" || len(members) == 0 {
			b.logger.Info("no open event for series", "series", series)
			continue
		}

		kept := FilterAndRank(members, event, b.cfg)
		if len(kept) == 0 {
			b.logger.Info("all strikes filtered out",
				"series", series,
				"event", event,
				"candidates", len(members),
			)
			continue
		}

		b.logger.Info("series selected",
			"series", series,
			"event", event,
			"kept", len(kept),
			"closes", kept[0].CloseTime,
		)
		p = append(p, kept...)
	}

	return p
}
