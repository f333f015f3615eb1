package trade

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/rickgao/kalshi-trader/internal/api"
	"github.com/rickgao/kalshi-trader/internal/model"
)

// Mode selects which pool members to target.
type Mode string

const (
	ModeOneRandom Mode = "one_random" // one member, uniformly at random
	ModeAll       Mode = "all"        // every member
)

// SideStrategy selects the side to buy.
type SideStrategy string

const (
	SideStrategyYes    SideStrategy = "yes"
	SideStrategyNo     SideStrategy = "no"
	SideStrategyRandom SideStrategy = "random"
)

// OrderType selects limit or market orders.
type OrderType string

const (
	OrderTypeLimit  OrderType = "limit"
	OrderTypeMarket OrderType = "market"
)

// Options configure one execution run.
type Options struct {
	Mode             Mode
	Side             SideStrategy
	OrderType        OrderType
	PriceBufferCents int
	SubmitTimeout    time.Duration // per-order submission budget
}

// OrderPlacer submits one order to the exchange.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, req api.OrderRequest) (*api.OrderResponse, error)
}

// Result is the outcome of one order attempt. Exactly one of Order and Err
// is set.
type Result struct {
	Ticker string
	Side   model.Side
	Order  *api.Order
	Err    error
}

// Executor places buy orders against a pool.
type Executor struct {
	placer OrderPlacer
	opts   Options
	rng    *rand.Rand
	logger *slog.Logger
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithRand sets the random source used for target and side selection, so
// tests can pin outcomes.
func WithRand(r *rand.Rand) ExecutorOption {
	return func(e *Executor) {
		e.rng = r
	}
}

// NewExecutor creates an Executor.
func NewExecutor(placer OrderPlacer, opts Options, logger *slog.Logger, eopts ...ExecutorOption) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.SubmitTimeout == 0 {
		opts.SubmitTimeout = 20 * time.Second
	}

	e := &Executor{
		placer: placer,
		opts:   opts,
		rng: rand.New(rand.NewPCG(
			uint64(time.Now().UnixNano()),
			uint64(time.Now().UnixNano())>>32,
		)),
		logger: logger,
	}

	for _, opt := range eopts {
		opt(e)
	}

	return e
}

// Execute submits one buy order per selected target and reports each outcome.
// This is a best-effort fan-out across independent orders, not a transaction:
// a failed submission never stops the remaining targets.
func (e *Executor) Execute(ctx context.Context, p model.Pool) []Result {
	if len(p) == 0 {
		e.logger.Info("pool is empty, nothing to buy")
		return nil
	}

	targets := p
	if e.opts.Mode == ModeOneRandom {
		targets = model.Pool{p[e.rng.IntN(len(p))]}
	}

	results := make([]Result, 0, len(targets))
	for _, m := range targets {
		results = append(results, e.placeOne(ctx, m))
	}
	return results
}

func (e *Executor) placeOne(ctx context.Context, m model.PoolMarket) Result {
	side := e.chooseSide()
	req := e.buildOrder(m, side)

	subCtx, cancel := context.WithTimeout(ctx, e.opts.SubmitTimeout)
	defer cancel()

	resp, err := e.placer.CreateOrder(subCtx, req)
	if err != nil {
		e.logFailure(m.Ticker, side, err)
		return Result{Ticker: m.Ticker, Side: side, Err: err}
	}

	e.logger.Info("order placed",
		"ticker", m.Ticker,
		"side", side,
		"status", resp.Order.Status,
	)
	return Result{Ticker: m.Ticker, Side: side, Order: &resp.Order}
}

func (e *Executor) chooseSide() model.Side {
	switch e.opts.Side {
	case SideStrategyYes:
		return model.SideYes
	case SideStrategyNo:
		return model.SideNo
	default:
		if e.rng.IntN(2) == 0 {
			return model.SideYes
		}
		return model.SideNo
	}
}

// buildOrder assembles the payload: one contract, good till cancelled, priced
// on the chosen side only for limit orders.
func (e *Executor) buildOrder(m model.PoolMarket, side model.Side) api.OrderRequest {
	req := api.OrderRequest{
		Ticker:      m.Ticker,
		Side:        string(side),
		Action:      api.ActionBuy,
		Count:       1,
		TimeInForce: api.TimeInForceGTC,
		Type:        string(e.opts.OrderType),
	}

	if e.opts.OrderType == OrderTypeLimit {
		price := LimitPrice(side, m.Market, e.opts.PriceBufferCents)
		if side == model.SideYes {
			req.YesPrice = &price
		} else {
			req.NoPrice = &price
		}
	}

	return req
}

func (e *Executor) logFailure(ticker string, side model.Side, err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		e.logger.Error("order rejected",
			"ticker", ticker,
			"side", side,
			"status", apiErr.StatusCode,
			"body", apiErr.TruncatedBody(200),
		)
		if api.IsInsufficientVolume(err) {
			e.logger.Warn("no resting liquidity at the requested price; let the book replenish before the next run",
				"ticker", ticker,
			)
		}
		return
	}

	e.logger.Error("order failed",
		"ticker", ticker,
		"side", side,
		"err", err,
	)
}
