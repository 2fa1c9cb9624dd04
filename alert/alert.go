package alert

import (
	"fmt"

	"github.com/oarkflow/tradesignal/app/models"
	"github.com/oarkflow/tradesignal/backtest"
)

// Build derives today's actionable alerts from ranked results.
// An entry on the final bar emits BUY, an exit on the final bar emits
// SELL, an entry still open within watchWindow bars emits WATCH.
func Build(finalBar backtest.Bar, ranked []*backtest.Result, watchWindow int) []models.AlertEvent {
	var alerts []models.AlertEvent
	for _, result := range ranked {
		if event, ok := FromResult(finalBar, result, watchWindow); ok {
			alerts = append(alerts, event)
		}
	}
	return alerts
}

// FromResult inspects the last trade of one ranked result
func FromResult(finalBar backtest.Bar, result *backtest.Result, watchWindow int) (models.AlertEvent, bool) {
	if len(result.Trades) == 0 {
		return models.AlertEvent{}, false
	}

	last := result.Trades[len(result.Trades)-1]

	if last.Forced {
		// the position was still open when the data ran out
		if last.HoldingBars == 0 {
			return models.NewAlertEvent(result.Symbol, result.Strategy, models.ActionBuy, finalBar.Close, finalBar.Time, ""), true
		}
		if watchWindow > 0 && last.HoldingBars <= watchWindow {
			note := fmt.Sprintf("entry %d bars ago at %.2f", last.HoldingBars, last.EntryPrice)
			return models.NewAlertEvent(result.Symbol, result.Strategy, models.ActionWatch, finalBar.Close, finalBar.Time, note), true
		}
		return models.AlertEvent{}, false
	}

	if last.ExitTime == finalBar.Time {
		return models.NewAlertEvent(result.Symbol, result.Strategy, models.ActionSell, last.ExitPrice, finalBar.Time, ""), true
	}

	return models.AlertEvent{}, false
}
