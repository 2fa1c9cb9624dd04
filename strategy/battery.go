package strategy

import "github.com/oarkflow/tradesignal/backtest"

// BuiltIn is the default battery, one instance of each rule family at
// stock parameters.
func BuiltIn() []backtest.Strategy {
	return []backtest.Strategy{
		NewRSIMACD(0, 0),
		NewTrend(0),
		NewMeanReversion(false),
		NewMomentum(0),
		NewABCWave(0, 0, 0),
		NewBreakout(0, 0),
	}
}

// Battery is the ranking grid: every family expanded over a small
// parameter sweep so a scoring run compares variants, not just
// families.
func Battery() []backtest.Strategy {
	var all []backtest.Strategy
	for _, thresholds := range [][2]float64{{25, 75}, {30, 70}, {35, 65}} {
		all = append(all, NewRSIMACD(thresholds[0], thresholds[1]))
	}
	for _, minADX := range []float64{20, 25, 30} {
		all = append(all, NewTrend(minADX))
	}
	all = append(all, NewMeanReversion(false), NewMeanReversion(true))
	for _, ratio := range []float64{1.2, 1.5, 2.0} {
		all = append(all, NewMomentum(ratio))
	}
	for _, window := range []int{20, 30, 40} {
		all = append(all, NewABCWave(window, 0, 0))
	}
	for _, confirm := range []float64{0.25, 0.5, 1.0} {
		all = append(all, NewBreakout(confirm, 0))
	}
	return all
}

// NewRegistry registers the full battery into an explicit table.
func NewRegistry() (*backtest.Registry, error) {
	registry := backtest.NewRegistry()
	for _, s := range Battery() {
		if err := registry.Register(s); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
