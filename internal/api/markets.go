package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rickgao/kalshi-trader/internal/model"
)

// GetMarkets fetches one page of markets.
func (c *Client) GetMarkets(ctx context.Context, opts GetMarketsOptions) (*MarketsResponse, error) {
	query := url.Values{}

	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}
	if opts.SeriesTicker != "" {
		query.Set("series_ticker", opts.SeriesTicker)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}

	var resp MarketsResponse
	if err := c.get(ctx, "/markets", query, &resp); err != nil {
		return nil, fmt.Errorf("get markets: %w", err)
	}

	return &resp, nil
}

// OpenMarkets fetches every open market for a series, paginating until the
// listing endpoint stops returning a cursor, and converts the records to
// snapshots.
func (c *Client) OpenMarkets(ctx context.Context, seriesTicker string) ([]model.Market, error) {
	opts := GetMarketsOptions{
		Limit:        MaxPageSize,
		SeriesTicker: seriesTicker,
		Status:       "open",
	}

	var all []model.Market
	for {
		resp, err := c.GetMarkets(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", seriesTicker, err)
		}

		for i := range resp.Markets {
			all = append(all, resp.Markets[i].ToModel())
		}

		if resp.Cursor == "" {
			break
		}
		opts.Cursor = resp.Cursor
	}

	c.logger.Debug("fetched open markets", "series", seriesTicker, "count", len(all))
	return all, nil
}
