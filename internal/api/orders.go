package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateOrder submits an order. A client order ID is generated when the
// request does not carry one.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	if req.ClientOrderID == "" {
		req.ClientOrderID = uuid.NewString()
	}

	var resp OrderResponse
	if err := c.postSigned(ctx, "/portfolio/orders", req, &resp); err != nil {
		return nil, fmt.Errorf("create order %s: %w", req.Ticker, err)
	}

	c.logger.Debug("order created",
		"ticker", req.Ticker,
		"order_id", resp.Order.OrderID,
		"status", resp.Order.Status,
	)
	return &resp, nil
}
