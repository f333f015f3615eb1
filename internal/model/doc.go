// Package model defines shared data types used across the trader.
//
// Conventions:
//   - Prices: integer cents (0-100); nil means the exchange omitted the quote
//   - Liquidity: integer cents
//   - Timestamps: raw ISO 8601 string plus parsed µs since epoch
package model
