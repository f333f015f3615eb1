package api

import (
	"time"

	"github.com/rickgao/kalshi-trader/internal/model"
)

// ParseCloseTime parses an ISO 8601 close time to microseconds since epoch.
// A missing or malformed close time maps to model.FarFuture so the market
// never wins event selection against one with a known close.
func ParseCloseTime(iso string) int64 {
	if iso == "" {
		return model.FarFuture
	}

	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		// Try without timezone
		t, err = time.Parse("2006-01-02T15:04:05", iso)
		if err != nil {
			return model.FarFuture
		}
	}

	return t.UnixMicro()
}

// ToModel converts an APIMarket to a model.Market snapshot. Quote pointers
// are copied so the snapshot is detached from the decoded response.
func (m *APIMarket) ToModel() model.Market {
	return model.Market{
		Ticker:           m.Ticker,
		EventTicker:      m.EventTicker,
		Title:            m.Title,
		Status:           m.Status,
		YesBid:           copyCents(m.YesBid),
		YesAsk:           copyCents(m.YesAsk),
		NoBid:            copyCents(m.NoBid),
		NoAsk:            copyCents(m.NoAsk),
		Liquidity:        m.Liquidity,
		LiquidityDollars: m.LiquidityDollars,
		CloseTime:        m.CloseTime,
		CloseTS:          ParseCloseTime(m.CloseTime),
	}
}

func copyCents(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
