package strategy

import (
	"fmt"

	"github.com/oarkflow/tradesignal/backtest"
	"github.com/oarkflow/tradesignal/indicator"
)

// Breakout only takes a Donchian break once the close clears the
// channel by a margin of ATRs, filtering the marginal pokes that fail
// straight back. Open trades carry an ATR stop off the entry fill and
// a channel-midline exit.
type Breakout struct {
	ConfirmATR float64
	StopATR    float64
}

// NewBreakout is constructor of Breakout. Zero values fall back to a
// 0.5 ATR entry margin and a 2 ATR stop.
func NewBreakout(confirmATR, stopATR float64) Breakout {
	if confirmATR <= 0 {
		confirmATR = 0.5
	}
	if stopATR <= 0 {
		stopATR = 2
	}
	return Breakout{ConfirmATR: confirmATR, StopATR: stopATR}
}

// Name implements backtest.Strategy.
func (s Breakout) Name() string {
	return fmt.Sprintf("breakout_%.2f_atr", s.ConfirmATR)
}

// Columns implements backtest.Strategy.
func (s Breakout) Columns() []string {
	return []string{indicator.DonchianHigh, indicator.DonchianMid, indicator.ATR}
}

// Evaluate implements backtest.Strategy.
func (s Breakout) Evaluate(view backtest.View, position *backtest.Position) backtest.Signal {
	atr, _ := view.Value(indicator.ATR)

	if position == nil {
		high, _ := view.Value(indicator.DonchianHigh)
		if view.Close() > high+s.ConfirmATR*atr {
			return backtest.BUY
		}
		return backtest.HOLD
	}

	if view.Close() < position.EntryPrice-s.StopATR*atr {
		return backtest.SELL
	}
	mid, _ := view.Value(indicator.DonchianMid)
	if view.Close() < mid {
		return backtest.SELL
	}
	return backtest.HOLD
}
