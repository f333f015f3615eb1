package api

// Wire values accepted by the orders endpoint.
const (
	ActionBuy       = "buy"
	TimeInForceGTC  = "GTC"
	OrderTypeLimit  = "limit"
	OrderTypeMarket = "market"
)

// MarketsResponse from GET /markets
type MarketsResponse struct {
	Markets []APIMarket `json:"markets"`
	Cursor  string      `json:"cursor"`
}

// APIMarket mirrors a market record from the Kalshi API.
type APIMarket struct {
	Ticker      string `json:"ticker"`
	EventTicker string `json:"event_ticker"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	MarketType  string `json:"market_type"`

	// Quotes in cents; pointers so an omitted quote stays distinguishable
	// from a real zero.
	YesBid *int `json:"yes_bid"`
	YesAsk *int `json:"yes_ask"`
	NoBid  *int `json:"no_bid"`
	NoAsk  *int `json:"no_ask"`

	// Liquidity resting in the order book, in cents.
	Liquidity        int64  `json:"liquidity"`
	LiquidityDollars string `json:"liquidity_dollars"`

	Volume       int64 `json:"volume"`
	OpenInterest int64 `json:"open_interest"`

	// Timestamps (ISO 8601)
	OpenTime       string `json:"open_time"`
	CloseTime      string `json:"close_time"`
	ExpirationTime string `json:"expiration_time"`
}

// GetMarketsOptions configures a GetMarkets request.
type GetMarketsOptions struct {
	Limit        int
	Cursor       string
	SeriesTicker string
	Status       string
}

// OrderRequest is the payload for POST /portfolio/orders.
type OrderRequest struct {
	Ticker        string `json:"ticker"`
	ClientOrderID string `json:"client_order_id"`
	Side          string `json:"side"`
	Action        string `json:"action"`
	Count         int    `json:"count"`
	TimeInForce   string `json:"time_in_force"`
	Type          string `json:"type"`

	// Exactly one is set for limit orders; both are omitted for market orders.
	YesPrice *int `json:"yes_price,omitempty"`
	NoPrice  *int `json:"no_price,omitempty"`
}

// OrderResponse from POST /portfolio/orders.
type OrderResponse struct {
	Order Order `json:"order"`
}

// Order is the exchange's view of a created order.
type Order struct {
	OrderID       string `json:"order_id"`
	ClientOrderID string `json:"client_order_id"`
	Ticker        string `json:"ticker"`
	Side          string `json:"side"`
	Action        string `json:"action"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	YesPrice      int    `json:"yes_price"`
	NoPrice       int    `json:"no_price"`
	CreatedTime   string `json:"created_time"`
}
