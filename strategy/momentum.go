package strategy

import (
	"fmt"

	"github.com/oarkflow/tradesignal/backtest"
	"github.com/oarkflow/tradesignal/indicator"
)

// Momentum chases Donchian breakouts that arrive on expanded volume.
// A close back under the channel midline hands the position back.
type Momentum struct {
	MinVolumeRatio float64
}

// NewMomentum is constructor of Momentum. Zero ratio falls back to 1.5.
func NewMomentum(minVolumeRatio float64) Momentum {
	if minVolumeRatio <= 0 {
		minVolumeRatio = 1.5
	}
	return Momentum{MinVolumeRatio: minVolumeRatio}
}

// Name implements backtest.Strategy.
func (s Momentum) Name() string {
	return fmt.Sprintf("momentum_vol_%.1f", s.MinVolumeRatio)
}

// Columns implements backtest.Strategy.
func (s Momentum) Columns() []string {
	return []string{indicator.DonchianHigh, indicator.DonchianMid, indicator.VolumeRatio}
}

// Evaluate implements backtest.Strategy.
func (s Momentum) Evaluate(view backtest.View, position *backtest.Position) backtest.Signal {
	if position == nil {
		high, _ := view.Value(indicator.DonchianHigh)
		ratio, _ := view.Value(indicator.VolumeRatio)
		if view.Close() > high && ratio >= s.MinVolumeRatio {
			return backtest.BUY
		}
		return backtest.HOLD
	}

	mid, _ := view.Value(indicator.DonchianMid)
	if view.Close() < mid {
		return backtest.SELL
	}
	return backtest.HOLD
}
