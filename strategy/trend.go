package strategy

import (
	"fmt"

	"github.com/oarkflow/tradesignal/backtest"
	"github.com/oarkflow/tradesignal/indicator"
)

// Trend rides EMA alignment and only enters while ADX says the move
// has strength behind it. The exit is the EMA cross turning back down,
// with no ADX condition so a dying trend still gets closed.
type Trend struct {
	MinADX float64
}

// NewTrend is constructor of Trend. Zero MinADX falls back to 25.
func NewTrend(minADX float64) Trend {
	if minADX <= 0 {
		minADX = 25
	}
	return Trend{MinADX: minADX}
}

// Name implements backtest.Strategy.
func (s Trend) Name() string {
	return fmt.Sprintf("trend_adx_%.0f", s.MinADX)
}

// Columns implements backtest.Strategy.
func (s Trend) Columns() []string {
	return []string{indicator.EMAFast, indicator.EMASlow, indicator.ADX}
}

// Evaluate implements backtest.Strategy.
func (s Trend) Evaluate(view backtest.View, position *backtest.Position) backtest.Signal {
	fast, _ := view.Value(indicator.EMAFast)
	slow, _ := view.Value(indicator.EMASlow)

	if position == nil {
		adx, _ := view.Value(indicator.ADX)
		if fast > slow && adx >= s.MinADX {
			return backtest.BUY
		}
		return backtest.HOLD
	}

	if fast < slow {
		return backtest.SELL
	}
	return backtest.HOLD
}
