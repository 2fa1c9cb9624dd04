package strategy

import (
	"fmt"

	"github.com/oarkflow/tradesignal/backtest"
	"github.com/oarkflow/tradesignal/indicator"
)

// RSIMACD is the confluence rule: an oversold RSI alone is not enough,
// MACD has to sit above its signal line before it buys. It sells into
// overbought readings or a bearish MACD cross.
type RSIMACD struct {
	Oversold   float64
	Overbought float64
}

// NewRSIMACD is constructor of RSIMACD. Zero thresholds fall back to
// 30/70.
func NewRSIMACD(oversold, overbought float64) RSIMACD {
	if oversold <= 0 {
		oversold = 30
	}
	if overbought <= 0 {
		overbought = 70
	}
	return RSIMACD{Oversold: oversold, Overbought: overbought}
}

// Name implements backtest.Strategy.
func (s RSIMACD) Name() string {
	return fmt.Sprintf("rsi_macd_%.0f_%.0f", s.Oversold, s.Overbought)
}

// Columns implements backtest.Strategy.
func (s RSIMACD) Columns() []string {
	return []string{indicator.RSI, indicator.MACD, indicator.MACDSignal}
}

// Evaluate implements backtest.Strategy.
func (s RSIMACD) Evaluate(view backtest.View, position *backtest.Position) backtest.Signal {
	rsi, _ := view.Value(indicator.RSI)
	macd, _ := view.Value(indicator.MACD)
	signal, _ := view.Value(indicator.MACDSignal)

	if position == nil {
		if rsi <= s.Oversold && macd > signal {
			return backtest.BUY
		}
		return backtest.HOLD
	}

	if rsi >= s.Overbought {
		return backtest.SELL
	}
	prevMacd, okMacd := view.ValueAt(indicator.MACD, 1)
	prevSignal, okSignal := view.ValueAt(indicator.MACDSignal, 1)
	if okMacd && okSignal && macd < signal && prevMacd >= prevSignal {
		return backtest.SELL
	}
	return backtest.HOLD
}
