// Package report renders human-facing run output: the pool summary table and
// per-order outcome lines. Operational logging goes through slog; this is
// what the operator reads on the console.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/rickgao/kalshi-trader/internal/model"
	"github.com/rickgao/kalshi-trader/internal/trade"
)

// maxRowsPerEvent caps the table rows shown per event; the pool itself is not
// truncated.
const maxRowsPerEvent = 8

// PrintPool renders the pool summary table.
func PrintPool(w io.Writer, p model.Pool) {
	if len(p) == 0 {
		fmt.Fprintln(w, "pool is empty: nothing to trade this cycle")
		return
	}

	events := make(map[string]int)
	for _, m := range p {
		events[m.Event]++
	}
	fmt.Fprintf(w, "\npool: %d markets across %d events\n", len(p), len(events))

	table := tablewriter.NewWriter(w)
	table.Header("Ticker", "Event", "Yes", "Spr", "No", "Spr", "Liquidity", "Closes In")

	shown := make(map[string]int)
	for _, m := range p {
		if shown[m.Event] >= maxRowsPerEvent {
			continue
		}
		shown[m.Event]++

		table.Append(
			m.Ticker,
			m.Event,
			quote(m.YesBid, m.YesAsk),
			fmt.Sprintf("%d", m.YesSpread),
			quote(m.NoBid, m.NoAsk),
			fmt.Sprintf("%d", m.NoSpread),
			fmt.Sprintf("$%.0f", float64(m.Liquidity)/100),
			closesIn(m.CloseTS),
		)
	}

	table.Render()
}

// PrintResults renders one line per order attempt plus a summary.
func PrintResults(w io.Writer, results []trade.Result) {
	placed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "ORDER FAILED | %s | side=%s | %v\n", r.Ticker, r.Side, r.Err)
			continue
		}
		placed++
		fmt.Fprintf(w, "ORDER OK     | %s | side=%s | status=%s\n", r.Ticker, r.Side, r.Order.Status)
	}
	fmt.Fprintf(w, "complete: %d/%d order(s) placed\n", placed, len(results))
}

func quote(bid, ask *int) string {
	return fmt.Sprintf("%s/%s", cents(bid), cents(ask))
}

func cents(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func closesIn(closeTS int64) string {
	if closeTS == model.FarFuture {
		return "unknown"
	}
	mins := time.Until(time.UnixMicro(closeTS)).Minutes()
	return fmt.Sprintf("%.1f min", mins)
}
