package alert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oarkflow/tradesignal/alert"
	"github.com/oarkflow/tradesignal/app/models"
	"github.com/oarkflow/tradesignal/backtest"
)

func finalBar() backtest.Bar {
	return backtest.Bar{Time: 1717372800000, Open: 636, High: 642, Low: 634, Close: 640, Volume: 1500}
}

func resultWithTrade(strategy string, trade backtest.Trade) *backtest.Result {
	return &backtest.Result{
		Symbol:   "NABIL",
		Strategy: strategy,
		Trades:   []backtest.Trade{trade},
	}
}

func TestFromResult(t *testing.T) {
	assert := assert.New(t)
	bar := finalBar()

	event, ok := alert.FromResult(bar, resultWithTrade("sma_cross_10_30", backtest.Trade{
		EntryTime: bar.Time, EntryPrice: 640, Forced: true, HoldingBars: 0,
	}), 3)
	assert.True(ok)
	assert.Equal(models.ActionBuy, event.Action)
	assert.Equal("NABIL", event.Symbol)
	assert.Equal("sma_cross_10_30", event.Strategy)
	assert.Equal(640.0, event.Price)
	assert.Equal(bar.Time, event.Timestamp)
	assert.Empty(event.Note)

	event, ok = alert.FromResult(bar, resultWithTrade("rsi_reversal", backtest.Trade{
		EntryPrice: 630.5, Forced: true, HoldingBars: 2,
	}), 3)
	assert.True(ok)
	assert.Equal(models.ActionWatch, event.Action)
	assert.Equal(640.0, event.Price)
	assert.Equal("entry 2 bars ago at 630.50", event.Note)

	_, ok = alert.FromResult(bar, resultWithTrade("rsi_reversal", backtest.Trade{
		EntryPrice: 630.5, Forced: true, HoldingBars: 5,
	}), 3)
	assert.False(ok)

	_, ok = alert.FromResult(bar, resultWithTrade("rsi_reversal", backtest.Trade{
		EntryPrice: 630.5, Forced: true, HoldingBars: 1,
	}), 0)
	assert.False(ok)

	event, ok = alert.FromResult(bar, resultWithTrade("macd_momentum", backtest.Trade{
		ExitTime: bar.Time, ExitPrice: 655.25, HoldingBars: 4,
	}), 3)
	assert.True(ok)
	assert.Equal(models.ActionSell, event.Action)
	assert.Equal(655.25, event.Price)

	_, ok = alert.FromResult(bar, resultWithTrade("macd_momentum", backtest.Trade{
		ExitTime: bar.Time - 86400000, ExitPrice: 655.25,
	}), 3)
	assert.False(ok)

	_, ok = alert.FromResult(bar, &backtest.Result{Symbol: "NABIL", Strategy: "idle"}, 3)
	assert.False(ok)
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)
	bar := finalBar()

	ranked := []*backtest.Result{
		resultWithTrade("sma_cross_10_30", backtest.Trade{EntryPrice: 640, Forced: true, HoldingBars: 0}),
		resultWithTrade("rsi_reversal", backtest.Trade{ExitTime: bar.Time - 86400000, ExitPrice: 610}),
		resultWithTrade("macd_momentum", backtest.Trade{ExitTime: bar.Time, ExitPrice: 655.25}),
	}

	alerts := alert.Build(bar, ranked, 3)
	assert.Len(alerts, 2)
	assert.Equal(models.ActionBuy, alerts[0].Action)
	assert.Equal("sma_cross_10_30", alerts[0].Strategy)
	assert.Equal(models.ActionSell, alerts[1].Action)
	assert.Equal("macd_momentum", alerts[1].Strategy)
	assert.NotEqual(alerts[0].ID, alerts[1].ID)
}
