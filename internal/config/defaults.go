package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultRestURL           = "https://api.elections.kalshi.com/trade-api/v2"
	DefaultFetchTimeout      = 25 * time.Second
	DefaultSubmitTimeout     = 20 * time.Second
	DefaultRateLimit         = 10
	DefaultMaxSpreadCents    = 30
	DefaultMinLiquidityCents = 1000
	DefaultTopPerEvent       = 50
	DefaultMinTimeBuffer     = 5 * time.Minute
	DefaultSnapshotPath      = "pool.json"
	DefaultMode              = "one_random"
	DefaultSide              = "random"
	DefaultOrderType         = "limit"
	DefaultPriceBufferCents  = 2
)

// Environment variables consulted when the corresponding field is empty.
const (
	EnvKeyID          = "KALSHI_ACCESS_KEY_ID"
	EnvPrivateKeyPEM  = "KALSHI_PRIVATE_KEY_PEM"
	EnvPrivateKeyPath = "KALSHI_PRIVATE_KEY_PATH"
)

// DefaultSeries is the crypto series set traded when none is configured.
var DefaultSeries = []string{"KXETHD", "KXETH", "KXBTCD", "KXBTC", "KXXRPD", "KXXRP"}

func (c *TraderConfig) applyDefaults() {
	if c.API.RestURL == "" {
		c.API.RestURL = DefaultRestURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultFetchTimeout
	}
	if c.API.RateLimit == 0 {
		c.API.RateLimit = DefaultRateLimit
	}

	if len(c.Pool.Series) == 0 {
		c.Pool.Series = append([]string(nil), DefaultSeries...)
	}
	if c.Pool.MaxSpreadCents == 0 {
		c.Pool.MaxSpreadCents = DefaultMaxSpreadCents
	}
	if c.Pool.MinLiquidityCents == 0 {
		c.Pool.MinLiquidityCents = DefaultMinLiquidityCents
	}
	if c.Pool.TopPerEvent == 0 {
		c.Pool.TopPerEvent = DefaultTopPerEvent
	}
	if c.Pool.MinTimeBuffer == 0 {
		c.Pool.MinTimeBuffer = DefaultMinTimeBuffer
	}
	if c.Pool.SnapshotPath == "" {
		c.Pool.SnapshotPath = DefaultSnapshotPath
	}

	if c.Trade.Mode == "" {
		c.Trade.Mode = DefaultMode
	}
	if c.Trade.Side == "" {
		c.Trade.Side = DefaultSide
	}
	if c.Trade.OrderType == "" {
		c.Trade.OrderType = DefaultOrderType
	}
	if c.Trade.PriceBufferCents == 0 {
		c.Trade.PriceBufferCents = DefaultPriceBufferCents
	}
	if c.Trade.SubmitTimeout == 0 {
		c.Trade.SubmitTimeout = DefaultSubmitTimeout
	}
}
