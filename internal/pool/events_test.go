package pool

import (
	"testing"
	"time"

	"github.com/rickgao/kalshi-trader/internal/model"
)

func marketAt(ticker, event string, close time.Time) model.Market {
	return model.Market{
		Ticker:      ticker,
		EventTicker: event,
		CloseTime:   close.Format(time.RFC3339),
		CloseTS:     close.UnixMicro(),
	}
}

func unparseable(ticker, event string) model.Market {
	return model.Market{
		Ticker:      ticker,
		EventTicker: event,
		CloseTime:   "garbage",
		CloseTS:     model.FarFuture,
	}
}

func TestSelectEvent(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	buffer := 5 * time.Minute

	t.Run("prefers soonest event past the buffer", func(t *testing.T) {
		markets := []model.Market{
			marketAt("A-1", "EVT-A", now.Add(3*time.Minute)),  // inside buffer
			marketAt("B-1", "EVT-B", now.Add(10*time.Minute)),
			marketAt("C-1", "EVT-C", now.Add(30*time.Minute)),
		}

		event, members := SelectEvent(markets, now, buffer)
		if event != "EVT-B" {
			t.Errorf("event = %q, want EVT-B", event)
		}
		if len(members) != 1 || members[0].Ticker != "B-1" {
			t.Errorf("members = %+v, want [B-1]", members)
		}
	})

	t.Run("group close time is the minimum across members", func(t *testing.T) {
		// EVT-A's earliest strike closes inside the buffer, dragging the
		// whole event below the floor.
		markets := []model.Market{
			marketAt("A-1", "EVT-A", now.Add(3*time.Minute)),
			marketAt("A-2", "EVT-A", now.Add(20*time.Minute)),
			marketAt("B-1", "EVT-B", now.Add(10*time.Minute)),
		}

		event, _ := SelectEvent(markets, now, buffer)
		if event != "EVT-B" {
			t.Errorf("event = %q, want EVT-B", event)
		}
	})

	t.Run("falls back to events inside the buffer", func(t *testing.T) {
		markets := []model.Market{
			marketAt("A-1", "EVT-A", now.Add(3*time.Minute)),
			marketAt("A-2", "EVT-A", now.Add(4*time.Minute)),
		}

		event, members := SelectEvent(markets, now, buffer)
		if event != "EVT-A" {
			t.Errorf("event = %q, want EVT-A", event)
		}
		if len(members) != 2 {
			t.Errorf("got %d members, want 2", len(members))
		}
	})

	t.Run("emergency pass accepts closed events", func(t *testing.T) {
		markets := []model.Market{
			marketAt("A-1", "EVT-A", now.Add(-30*time.Minute)),
			marketAt("B-1", "EVT-B", now.Add(-2*time.Minute)),
		}

		event, _ := SelectEvent(markets, now, buffer)
		if event != "EVT-A" {
			t.Errorf("event = %q, want EVT-A (earliest close wins)", event)
		}
	})

	t.Run("unparseable close times never beat real ones", func(t *testing.T) {
		markets := []model.Market{
			unparseable("A-1", "EVT-A"),
			marketAt("B-1", "EVT-B", now.Add(10*time.Minute)),
		}

		event, _ := SelectEvent(markets, now, buffer)
		if event != "EVT-B" {
			t.Errorf("event = %q, want EVT-B", event)
		}
	})

	t.Run("all close times unparseable selects nothing", func(t *testing.T) {
		markets := []model.Market{
			unparseable("A-1", "EVT-A"),
			unparseable("B-1", "EVT-B"),
		}

		event, members := SelectEvent(markets, now, buffer)
		if event != "" || members != nil {
			t.Errorf("got (%q, %v), want empty result", event, members)
		}
	})

	t.Run("markets without event ticker are ignored", func(t *testing.T) {
		markets := []model.Market{
			marketAt("A-1", "", now.Add(10*time.Minute)),
		}

		event, members := SelectEvent(markets, now, buffer)
		if event != "" || members != nil {
			t.Errorf("got (%q, %v), want empty result", event, members)
		}
	})

	t.Run("no markets", func(t *testing.T) {
		event, members := SelectEvent(nil, now, buffer)
		if event != "" || members != nil {
			t.Errorf("got (%q, %v), want empty result", event, members)
		}
	})

	t.Run("ties resolve to first fetched", func(t *testing.T) {
		close := now.Add(10 * time.Minute)
		markets := []model.Market{
			marketAt("B-1", "EVT-B", close),
			marketAt("A-1", "EVT-A", close),
		}

		event, _ := SelectEvent(markets, now, buffer)
		if event != "EVT-B" {
			t.Errorf("event = %q, want EVT-B (first in fetch order)", event)
		}
	})
}
