package strategy_test

import (
	"math"
	"testing"

	"github.com/oarkflow/tradesignal/backtest"
	"github.com/oarkflow/tradesignal/indicator"
	"github.com/oarkflow/tradesignal/strategy"
	"github.com/stretchr/testify/assert"
)

func TestBatteryUniqueNames(t *testing.T) {
	assert := assert.New(t)

	battery := strategy.Battery()
	assert.Len(battery, 17)

	seen := map[string]bool{}
	for _, s := range battery {
		assert.False(seen[s.Name()], s.Name())
		seen[s.Name()] = true
	}

	assert.Len(strategy.BuiltIn(), 6)
}

func TestNewRegistry(t *testing.T) {
	assert := assert.New(t)

	registry, err := strategy.NewRegistry()
	assert.NoError(err)
	assert.Len(registry.Names(), len(strategy.Battery()))

	s, ok := registry.Get("trend_adx_25")
	assert.True(ok)
	assert.Equal("trend_adx_25", s.Name())
}

// TestBatteryEndToEnd replays the whole battery over a synthetic
// trending series through the real engine: no variant may fail, every
// variant must produce a result.
func TestBatteryEndToEnd(t *testing.T) {
	assert := assert.New(t)

	n := 150
	bars := make([]backtest.Bar, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	volumes := make([]float64, n)
	for i := 0; i < n; i++ {
		base := 100 + 0.3*float64(i) + 8*math.Sin(float64(i)/7)
		closes[i] = base
		highs[i] = base + 1.5
		lows[i] = base - 1.5
		volumes[i] = 1000 + 400*math.Sin(float64(i)/3)
		bars[i] = backtest.Bar{
			Time:   int64(i+1) * 86400000,
			Open:   base,
			High:   highs[i],
			Low:    lows[i],
			Close:  base,
			Volume: volumes[i],
		}
	}
	columns := indicator.Compute(highs, lows, closes, volumes, indicator.Params{})
	series, err := backtest.NewSeries("SYN", bars, columns)
	assert.NoError(err)

	cfg := backtest.Config{InitialCapital: 10000, MinBars: 60, Workers: 3}
	batch, err := backtest.RunAll(series, strategy.Battery(), cfg, backtest.MetricTotalReturn)
	assert.NoError(err)
	assert.Empty(batch.Failures)
	assert.Len(batch.Results, len(strategy.Battery()))

	for i, result := range batch.Ranked {
		assert.Equal(i+1, result.Rank)
		assert.Len(result.Equity, n)
	}
}
