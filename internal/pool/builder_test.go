package pool

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rickgao/kalshi-trader/internal/model"
)

// fakeLister serves canned listings per series.
type fakeLister struct {
	markets map[string][]model.Market
	errs    map[string]error
	calls   []string
}

func (f *fakeLister) OpenMarkets(_ context.Context, series string) ([]model.Market, error) {
	f.calls = append(f.calls, series)
	if err := f.errs[series]; err != nil {
		return nil, err
	}
	return f.markets[series], nil
}

func liquidMarket(ticker, event string, close time.Time, liq int64) model.Market {
	m := marketAt(ticker, event, close)
	m.YesBid = model.Cents(40)
	m.YesAsk = model.Cents(55)
	m.NoBid = model.Cents(45)
	m.NoAsk = model.Cents(60)
	m.Liquidity = liq
	return m
}

func testBuilder(cfg Config, lister MarketLister, now time.Time) *Builder {
	b := NewBuilder(cfg, lister, nil)
	b.now = func() time.Time { return now }
	return b
}

func TestBuilder_Build(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	close := now.Add(30 * time.Minute)

	cfg := Config{
		Series:            []string{"KXBTC", "KXETH"},
		MaxSpreadCents:    30,
		MinLiquidityCents: 1000,
		TopPerEvent:       50,
		MinTimeBuffer:     5 * time.Minute,
	}

	t.Run("concatenates series in order, ranked within", func(t *testing.T) {
		lister := &fakeLister{markets: map[string][]model.Market{
			"KXBTC": {
				liquidMarket("BTC-1", "EVT-BTC", close, 2000),
				liquidMarket("BTC-2", "EVT-BTC", close, 9000),
			},
			"KXETH": {
				liquidMarket("ETH-1", "EVT-ETH", close, 5000),
			},
		}}

		p := testBuilder(cfg, lister, now).Build(context.Background())

		want := []string{"BTC-2", "BTC-1", "ETH-1"}
		got := p.Tickers()
		if len(got) != len(want) {
			t.Fatalf("pool = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("pool[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("fetch failure skips only that series", func(t *testing.T) {
		lister := &fakeLister{
			markets: map[string][]model.Market{
				"KXETH": {liquidMarket("ETH-1", "EVT-ETH", close, 5000)},
			},
			errs: map[string]error{"KXBTC": errors.New("gateway timeout")},
		}

		p := testBuilder(cfg, lister, now).Build(context.Background())

		if len(p) != 1 || p[0].Ticker != "ETH-1" {
			t.Errorf("pool = %v, want [ETH-1]", p.Tickers())
		}
		if len(lister.calls) != 2 {
			t.Errorf("fetched %d series, want 2", len(lister.calls))
		}
	})

	t.Run("series with no event contributes nothing", func(t *testing.T) {
		lister := &fakeLister{markets: map[string][]model.Market{
			"KXBTC": {},
			"KXETH": {liquidMarket("ETH-1", "EVT-ETH", close, 5000)},
		}}

		p := testBuilder(cfg, lister, now).Build(context.Background())
		if len(p) != 1 || p[0].Ticker != "ETH-1" {
			t.Errorf("pool = %v, want [ETH-1]", p.Tickers())
		}
	})

	t.Run("series fully filtered contributes nothing", func(t *testing.T) {
		illiquid := liquidMarket("BTC-1", "EVT-BTC", close, 10) // below floor
		lister := &fakeLister{markets: map[string][]model.Market{
			"KXBTC": {illiquid},
			"KXETH": {liquidMarket("ETH-1", "EVT-ETH", close, 5000)},
		}}

		p := testBuilder(cfg, lister, now).Build(context.Background())
		if len(p) != 1 || p[0].Ticker != "ETH-1" {
			t.Errorf("pool = %v, want [ETH-1]", p.Tickers())
		}
	})

	t.Run("only the selected event is filtered", func(t *testing.T) {
		lister := &fakeLister{markets: map[string][]model.Market{
			"KXBTC": {
				liquidMarket("SOON", "EVT-SOON", now.Add(10*time.Minute), 2000),
				liquidMarket("LATER", "EVT-LATER", now.Add(70*time.Minute), 9000),
			},
		}}

		onlyBTC := cfg
		onlyBTC.Series = []string{"KXBTC"}

		p := testBuilder(onlyBTC, lister, now).Build(context.Background())
		if len(p) != 1 || p[0].Ticker != "SOON" {
			t.Errorf("pool = %v, want [SOON]", p.Tickers())
		}
		if p[0].Event != "EVT-SOON" {
			t.Errorf("Event = %q, want EVT-SOON", p[0].Event)
		}
	})

	t.Run("empty pool is a valid outcome", func(t *testing.T) {
		lister := &fakeLister{}
		if p := testBuilder(cfg, lister, now).Build(context.Background()); len(p) != 0 {
			t.Errorf("pool = %v, want empty", p.Tickers())
		}
	})
}
