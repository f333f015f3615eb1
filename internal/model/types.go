package model

import "math"

// FarFuture is the close-time sentinel for markets whose close_time could not
// be parsed. A sentinel close time sorts after every real close time, so such
// markets never win event selection against a market with a known close.
const FarFuture int64 = math.MaxInt64

// Side is the side of a binary market.
type Side string

const (
	SideYes Side = "yes"
	SideNo  Side = "no"
)

// Market is an immutable snapshot of a tradeable Kalshi market. Once fetched
// it is never refreshed within a run.
type Market struct {
	Ticker      string `json:"ticker"`
	EventTicker string `json:"event_ticker"`
	Title       string `json:"title,omitempty"`
	Status      string `json:"status,omitempty"`

	// Quotes in cents (0-100); nil when the exchange omitted the field.
	// A 0/0 or 100/100 quote is a dead market, not an absent one.
	YesBid *int `json:"yes_bid,omitempty"`
	YesAsk *int `json:"yes_ask,omitempty"`
	NoBid  *int `json:"no_bid,omitempty"`
	NoAsk  *int `json:"no_ask,omitempty"`

	// Liquidity resting in the order book, in cents.
	Liquidity        int64  `json:"liquidity"`
	LiquidityDollars string `json:"liquidity_dollars,omitempty"`

	CloseTime string `json:"close_time"` // raw ISO 8601 from the exchange
	CloseTS   int64  `json:"close_ts"`   // parsed close time (µs since epoch), FarFuture if unparseable
}

// PoolMarket is a Market that survived filtering, annotated with its computed
// spreads and the event it was selected under. The embedded snapshot's
// trading fields are never modified.
type PoolMarket struct {
	Market
	YesSpread int    `json:"yes_spread"`
	NoSpread  int    `json:"no_spread"`
	Event     string `json:"event"`
}

// Pool is the ordered set of markets ready for trading: series-list order
// across series, descending liquidity within a series.
type Pool []PoolMarket

// Tickers returns the pool's tickers in order.
func (p Pool) Tickers() []string {
	out := make([]string, len(p))
	for i, m := range p {
		out[i] = m.Ticker
	}
	return out
}

// Cents returns a pointer to v, for building snapshots with present quotes.
func Cents(v int) *int {
	return &v
}
