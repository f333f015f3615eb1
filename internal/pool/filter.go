package pool

import (
	"sort"

	"github.com/rickgao/kalshi-trader/internal/model"
)

// Spread returns the bid/ask spread in cents. ok is false when either quote
// is missing or when the quote is dead (both sides 0 or both sides 100),
// meaning there is no real market on that side.
func Spread(bid, ask *int) (int, bool) {
	if bid == nil || ask == nil {
		return 0, false
	}
	b, a := *bid, *ask
	if (b == 0 && a == 0) || (b == 100 && a == 100) {
		return 0, false
	}
	return a - b, true
}

// FilterAndRank keeps the members with defined spreads under the cap on both
// sides and enough resting liquidity, ranks them most-liquid first, and
// truncates to the per-event cap. Survivors are annotated with their spreads
// and the resolved event; the snapshots themselves are not modified.
func FilterAndRank(members []model.Market, event string, cfg Config) []model.PoolMarket {
	kept := make([]model.PoolMarket, 0, len(members))

	for _, m := range members {
		ys, ok := Spread(m.YesBid, m.YesAsk)
		if !ok || ys >= cfg.MaxSpreadCents {
			continue
		}
		ns, ok := Spread(m.NoBid, m.NoAsk)
		if !ok || ns >= cfg.MaxSpreadCents {
			continue
		}
		if m.Liquidity < cfg.MinLiquidityCents {
			continue
		}

		kept = append(kept, model.PoolMarket{
			Market:    m,
			YesSpread: ys,
			NoSpread:  ns,
			Event:     event,
		})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Liquidity > kept[j].Liquidity
	})

	if cfg.TopPerEvent > 0 && len(kept) > cfg.TopPerEvent {
		kept = kept[:cfg.TopPerEvent]
	}

	return kept
}
