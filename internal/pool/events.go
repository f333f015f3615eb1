package pool

import (
	"math"
	"time"

	"github.com/rickgao/kalshi-trader/internal/model"
)

// eventGroup is one event's member markets. Its close time is the minimum
// close across members; one event is one hourly card containing many strikes,
// all closing together.
type eventGroup struct {
	event   string
	members []model.Market
	closeTS int64
}

// groupByEvent buckets markets by event ticker, preserving first-seen order
// so selection ties resolve the same way on every run. Markets without an
// event ticker are dropped.
func groupByEvent(markets []model.Market) []eventGroup {
	var groups []eventGroup
	index := make(map[string]int)

	for _, m := range markets {
		if m.EventTicker == "" {
			continue
		}
		i, ok := index[m.EventTicker]
		if !ok {
			i = len(groups)
			index[m.EventTicker] = i
			groups = append(groups, eventGroup{event: m.EventTicker, closeTS: model.FarFuture})
		}
		groups[i].members = append(groups[i].members, m)
		if m.CloseTS < groups[i].closeTS {
			groups[i].closeTS = m.CloseTS
		}
	}

	return groups
}

// SelectEvent picks the event to trade: the one with the earliest close time
// no sooner than now+buffer. If no event qualifies the floor relaxes to now,
// and then to nothing at all, so the emergency pass can pick an event that
// has already closed. Returns ("", nil) when no market carries an event
// ticker.
func SelectEvent(markets []model.Market, now time.Time, buffer time.Duration) (string, []model.Market) {
	groups := groupByEvent(markets)
	if len(groups) == 0 {
		return "", nil
	}

	floors := []int64{
		now.Add(buffer).UnixMicro(),
		now.UnixMicro(),
		math.MinInt64,
	}

	for _, floor := range floors {
		best := -1
		bestClose := model.FarFuture
		for i, g := range groups {
			if g.closeTS >= floor && g.closeTS < bestClose {
				best, bestClose = i, g.closeTS
			}
		}
		if best >= 0 {
			return groups[best].event, groups[best].members
		}
	}

	// Every group has an unparseable close time.
	return "", nil
}
