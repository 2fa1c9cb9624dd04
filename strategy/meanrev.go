package strategy

import (
	"github.com/oarkflow/tradesignal/backtest"
	"github.com/oarkflow/tradesignal/indicator"
)

// MeanReversion fades closes at or under the lower Bollinger band and
// exits once price tags the middle band again, or the upper band for
// the greedier variant.
type MeanReversion struct {
	ExitAtUpper bool
}

// NewMeanReversion is constructor of MeanReversion.
func NewMeanReversion(exitAtUpper bool) MeanReversion {
	return MeanReversion{ExitAtUpper: exitAtUpper}
}

// Name implements backtest.Strategy.
func (s MeanReversion) Name() string {
	if s.ExitAtUpper {
		return "bollinger_rev_upper"
	}
	return "bollinger_rev_mid"
}

// Columns implements backtest.Strategy.
func (s MeanReversion) Columns() []string {
	return []string{indicator.BBLower, indicator.BBMid, indicator.BBUpper}
}

// Evaluate implements backtest.Strategy.
func (s MeanReversion) Evaluate(view backtest.View, position *backtest.Position) backtest.Signal {
	if position == nil {
		lower, _ := view.Value(indicator.BBLower)
		if view.Close() <= lower {
			return backtest.BUY
		}
		return backtest.HOLD
	}

	target, _ := view.Value(indicator.BBMid)
	if s.ExitAtUpper {
		target, _ = view.Value(indicator.BBUpper)
	}
	if view.Close() >= target {
		return backtest.SELL
	}
	return backtest.HOLD
}
