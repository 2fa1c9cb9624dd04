package backtest_test

import (
	"errors"
	"testing"

	"github.com/oarkflow/tradesignal/backtest"
	"github.com/stretchr/testify/assert"
)

func TestOpenPosition(t *testing.T) {
	assert := assert.New(t)

	series := testSeries(t, 100, 100)
	view := series.At(0)

	position, err := backtest.OpenPosition(view, 10050, 50, 0)
	assert.NoError(err)
	assert.InDelta(100.0, position.EntryPrice, 1e-9)
	assert.InDelta(100.0, position.Quantity, 1e-9)
	assert.Equal(50.0, position.EntryCommission)
	assert.Equal(0, position.EntryIndex)
	assert.Equal(1*dayMillis, position.EntryTime)

	// slippage raises the fill price
	position, err = backtest.OpenPosition(view, 10100, 0, 0.01)
	assert.NoError(err)
	assert.InDelta(101.0, position.EntryPrice, 1e-9)
	assert.InDelta(100.0, position.Quantity, 1e-9)
	assert.InDelta(10100.0, position.MarketValue(101), 1e-9)
}

func TestOpenPositionInsufficientCapital(t *testing.T) {
	assert := assert.New(t)

	series := testSeries(t, 100, 100)
	_, err := backtest.OpenPosition(series.At(0), 10, 20, 0)

	var capErr *backtest.InsufficientCapitalError
	assert.True(errors.As(err, &capErr))
	assert.Equal(10.0, capErr.Capital)
	assert.Equal(20.0, capErr.Commission)
}

func TestClosePosition(t *testing.T) {
	assert := assert.New(t)

	series := testSeries(t, 100, 105, 110)
	position, err := backtest.OpenPosition(series.At(0), 10050, 50, 0)
	assert.NoError(err)

	trade := backtest.ClosePosition(position, series.At(2), 50, 0, false)
	assert.InDelta(110.0, trade.ExitPrice, 1e-9)
	// both commissions are netted into the trade
	assert.InDelta(10*100-50-50, trade.Pnl, 1e-9)
	assert.InDelta(900.0/10000.0, trade.PnlPct, 1e-9)
	assert.Equal(2, trade.HoldingBars)
	assert.Equal(1*dayMillis, trade.EntryTime)
	assert.Equal(3*dayMillis, trade.ExitTime)
	assert.False(trade.Forced)

	// slippage lowers the exit fill
	trade = backtest.ClosePosition(position, series.At(2), 0, 0.01, true)
	assert.InDelta(108.9, trade.ExitPrice, 1e-9)
	assert.True(trade.Forced)
}
