// Package trade places buy orders against a built pool.
//
// Limit orders are priced at the chosen side's ask plus a small buffer so
// they fill immediately against resting liquidity while still bounding
// slippage, unlike a market order. Each order is attempted exactly once;
// failures are recorded and never stop the remaining targets.
package trade
