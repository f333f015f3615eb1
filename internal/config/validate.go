package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
// Credential presence is checked separately: the pool-only binary signs
// nothing and does not need a key.
func (c *TraderConfig) Validate() error {
	if c.API.RestURL == "" {
		return errors.New("api.rest_url is required")
	}

	if len(c.Pool.Series) == 0 {
		return errors.New("pool.series is required")
	}
	if c.Pool.MaxSpreadCents < 1 || c.Pool.MaxSpreadCents > 100 {
		return fmt.Errorf("pool.max_spread_cents must be in [1,100], got %d", c.Pool.MaxSpreadCents)
	}
	if c.Pool.MinLiquidityCents < 0 {
		return fmt.Errorf("pool.min_liquidity_cents must be >= 0, got %d", c.Pool.MinLiquidityCents)
	}
	if c.Pool.TopPerEvent < 0 {
		return fmt.Errorf("pool.top_per_event must be >= 0, got %d", c.Pool.TopPerEvent)
	}
	if c.Pool.MinTimeBuffer < 0 {
		return errors.New("pool.min_time_buffer must be >= 0")
	}

	switch c.Trade.Mode {
	case "one_random", "all":
	default:
		return fmt.Errorf("trade.mode must be one_random or all, got %q", c.Trade.Mode)
	}

	switch c.Trade.Side {
	case "yes", "no", "random":
	default:
		return fmt.Errorf("trade.side must be yes, no or random, got %q", c.Trade.Side)
	}

	switch c.Trade.OrderType {
	case "limit", "market":
	default:
		return fmt.Errorf("trade.order_type must be limit or market, got %q", c.Trade.OrderType)
	}

	if c.Trade.PriceBufferCents < 0 {
		return fmt.Errorf("trade.price_buffer_cents must be >= 0, got %d", c.Trade.PriceBufferCents)
	}

	return nil
}

// ValidateCredentials checks that order placement can be authenticated.
func (c *APIConfig) ValidateCredentials() error {
	if c.KeyID == "" {
		return fmt.Errorf("api.key_id is required (or set %s)", EnvKeyID)
	}
	if c.PrivateKeyPEM == "" && c.PrivateKeyPath == "" {
		return fmt.Errorf("api.private_key_pem or api.private_key_path is required (or set %s / %s)",
			EnvPrivateKeyPEM, EnvPrivateKeyPath)
	}
	return nil
}
