package trade

import "github.com/rickgao/kalshi-trader/internal/model"

// NeutralPrice is assumed when a market has no usable ask, landing the order
// near the middle of the book instead of at an extreme.
const NeutralPrice = 50

// Valid limit price bounds in cents.
const (
	MinPriceCents = 1
	MaxPriceCents = 99
)

// LimitPrice computes the limit price in cents for buying the given side:
// the side's current ask plus the buffer, clamped to [1,99]. A missing or
// non-positive ask falls back to NeutralPrice.
func LimitPrice(side model.Side, m model.Market, bufferCents int) int {
	ask := m.YesAsk
	if side == model.SideNo {
		ask = m.NoAsk
	}

	price := NeutralPrice
	if ask != nil && *ask > 0 {
		price = *ask
	}

	price += bufferCents
	if price < MinPriceCents {
		price = MinPriceCents
	}
	if price > MaxPriceCents {
		price = MaxPriceCents
	}
	return price
}
