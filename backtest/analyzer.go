package backtest

import "math"

// TotalReturnPct is the percentage gain of final over initial capital.
func TotalReturnPct(initial, final float64) float64 {
	return (final - initial) / initial * 100
}

// WinRate is the fraction of trades with positive realized Pnl. An
// empty trade list scores 0 instead of dividing by zero; Summarize
// flags that case as an insufficient sample.
func WinRate(trades []Trade) float64 {
	if len(trades) == 0 {
		return 0
	}
	wins := 0
	for _, t := range trades {
		if t.Pnl > 0 {
			wins++
		}
	}
	return float64(wins) / float64(len(trades))
}

// ProfitFactor is gross profit divided by gross loss. With gains and
// no losing trades it is math.Inf(1), which callers must special-case
// before serializing; with no trades at all it is 0.
func ProfitFactor(trades []Trade) float64 {
	var gains, losses float64
	for _, t := range trades {
		if t.Pnl > 0 {
			gains += t.Pnl
		} else {
			losses -= t.Pnl
		}
	}
	if losses == 0 {
		if gains == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return gains / losses
}

// MaxDrawdownPct is the deepest peak-to-trough fall of the equity
// curve as a negative percentage, computed against a running peak in
// one linear pass.
func MaxDrawdownPct(equity []EquityPoint) float64 {
	if len(equity) == 0 {
		return 0
	}
	peak := equity[0].Value
	worst := 0.0
	for _, point := range equity {
		if point.Value > peak {
			peak = point.Value
		}
		if peak <= 0 {
			continue
		}
		drawdown := (point.Value - peak) / peak * 100
		if drawdown < worst {
			worst = drawdown
		}
	}
	return worst
}

// SharpeRatio annualizes mean over sample standard deviation of the
// per-bar percentage changes of the equity curve. Flat curves and
// curves with fewer than three points score 0 rather than NaN.
func SharpeRatio(equity []EquityPoint, periodsPerYear int) float64 {
	if len(equity) < 2 {
		return 0
	}
	returns := make([]float64, 0, len(equity)-1)
	for i := 1; i < len(equity); i++ {
		prev := equity[i-1].Value
		if prev == 0 {
			continue
		}
		returns = append(returns, (equity[i].Value-prev)/prev)
	}
	if len(returns) < 2 {
		return 0
	}
	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))
	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns) - 1)
	std := math.Sqrt(variance)
	if std == 0 {
		return 0
	}
	return mean / std * math.Sqrt(float64(periodsPerYear))
}

// Summarize fills the metric fields of a result from its trades and
// equity curve. It never re-runs the replay.
func Summarize(result *Result, periodsPerYear int) {
	result.TotalReturnPct = TotalReturnPct(result.InitialCapital, result.FinalCapital)
	result.WinRate = WinRate(result.Trades)
	result.ProfitFactor = ProfitFactor(result.Trades)
	result.MaxDrawdownPct = MaxDrawdownPct(result.Equity)
	result.SharpeRatio = SharpeRatio(result.Equity, periodsPerYear)
	if len(result.Trades) == 0 {
		result.InsufficientSample = true
	}
}
