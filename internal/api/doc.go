// Package api provides the Kalshi REST client used by the trader.
//
// Endpoints:
//   - GET /markets            public market listings, paginated by cursor
//   - POST /portfolio/orders  order placement, signed per-request
//
// Production base URL: https://api.elections.kalshi.com/trade-api/v2
//
// Requests are made exactly once. Order placement is not idempotent and
// listing failures are handled at the series loop, so there is no retry layer.
package api
