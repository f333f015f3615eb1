package trade

import (
	"testing"

	"github.com/rickgao/kalshi-trader/internal/model"
)

func TestLimitPrice(t *testing.T) {
	tests := []struct {
		name   string
		side   model.Side
		yesAsk *int
		noAsk  *int
		buffer int
		want   int
	}{
		{"yes ask plus buffer", model.SideYes, model.Cents(55), model.Cents(60), 2, 57},
		{"no ask plus buffer", model.SideNo, model.Cents(55), model.Cents(60), 2, 62},
		{"clamped at 99", model.SideYes, model.Cents(97), nil, 2, 99},
		{"clamped at 99 from 99", model.SideYes, model.Cents(99), nil, 2, 99},
		{"missing ask defaults to neutral", model.SideYes, nil, model.Cents(60), 2, 52},
		{"invalid ask defaults to neutral", model.SideYes, model.Cents(-5), nil, 2, 52},
		{"zero ask defaults to neutral", model.SideNo, nil, model.Cents(0), 2, 52},
		{"zero buffer", model.SideYes, model.Cents(55), nil, 0, 55},
		{"floor holds at 1", model.SideYes, model.Cents(1), nil, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.Market{YesAsk: tt.yesAsk, NoAsk: tt.noAsk}
			if got := LimitPrice(tt.side, m, tt.buffer); got != tt.want {
				t.Errorf("LimitPrice(%s) = %d, want %d", tt.side, got, tt.want)
			}
		})
	}
}
