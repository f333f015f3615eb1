// Package pool builds the tradeable market pool.
//
// For each configured series the builder fetches all open markets, selects
// the event closing soonest (preferring events at least the configured buffer
// in the future), keeps members with tight spreads on both sides and enough
// resting liquidity, and ranks them most-liquid first. The concatenation
// across series is the pool.
//
// Event selection relaxes in three passes: buffered future, bare future, then
// any close time at all. The last pass deliberately has no time floor — if
// every event has already closed, the most recently closed one is still
// selected so a run always has something to trade when anything is listed.
package pool
