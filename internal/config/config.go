package config

import "time"

// TraderConfig is the root configuration for a trader run.
type TraderConfig struct {
	API   APIConfig   `yaml:"api"`
	Pool  PoolConfig  `yaml:"pool"`
	Trade TradeConfig `yaml:"trade"`
}

// APIConfig holds Kalshi API and credential settings.
type APIConfig struct {
	RestURL        string        `yaml:"rest_url"`
	KeyID          string        `yaml:"key_id"`           // API key ID (KALSHI-ACCESS-KEY header)
	PrivateKeyPEM  string        `yaml:"private_key_pem"`  // inline PEM; wins over the path
	PrivateKeyPath string        `yaml:"private_key_path"` // path to RSA private key PEM file
	Timeout        time.Duration `yaml:"timeout"`          // listing fetch timeout
	RateLimit      float64       `yaml:"rate_limit"`       // client-side requests per second
}

// PoolConfig holds pool construction settings.
type PoolConfig struct {
	Series            []string      `yaml:"series"`
	MaxSpreadCents    int           `yaml:"max_spread_cents"`
	MinLiquidityCents int64         `yaml:"min_liquidity_cents"`
	TopPerEvent       int           `yaml:"top_per_event"`
	MinTimeBuffer     time.Duration `yaml:"min_time_buffer"`
	SnapshotPath      string        `yaml:"snapshot_path"` // pool.json interchange file
}

// TradeConfig holds order execution settings.
type TradeConfig struct {
	Mode             string        `yaml:"mode"`       // one_random | all
	Side             string        `yaml:"side"`       // yes | no | random
	OrderType        string        `yaml:"order_type"` // limit | market
	PriceBufferCents int           `yaml:"price_buffer_cents"`
	SubmitTimeout    time.Duration `yaml:"submit_timeout"`
}
