package backtest

// Position is the single open trade of a run.
type Position struct {
	EntryTime       int64   `json:"entry_time"`
	EntryIndex      int     `json:"entry_index"`
	EntryPrice      float64 `json:"entry_price"`
	Quantity        float64 `json:"quantity"`
	EntryCommission float64 `json:"entry_commission"`
}

// MarketValue is the position marked to the given price.
func (p *Position) MarketValue(price float64) float64 {
	return p.Quantity * price
}

// Trade is the immutable record of one completed entry and exit.
type Trade struct {
	EntryTime   int64   `json:"entry_time"`
	ExitTime    int64   `json:"exit_time"`
	EntryPrice  float64 `json:"entry_price"`
	ExitPrice   float64 `json:"exit_price"`
	Quantity    float64 `json:"quantity"`
	Pnl         float64 `json:"pnl"`
	PnlPct      float64 `json:"pnl_pct"`
	HoldingBars int     `json:"holding_bars"`
	Forced      bool    `json:"forced,omitempty"`
}

// OpenPosition fills a long entry at the bar close adjusted upward by
// the slippage fraction. Commission is paid out of capital before
// sizing, so quantity = (capital - commission) / fill price. A
// non-positive quantity returns InsufficientCapitalError.
func OpenPosition(view View, capital, commission, slippage float64) (*Position, error) {
	price := view.Close() * (1 + slippage)
	quantity := (capital - commission) / price
	if quantity <= 0 {
		return nil, &InsufficientCapitalError{Capital: capital, Commission: commission}
	}
	return &Position{
		EntryTime:       view.Time(),
		EntryIndex:      view.Index(),
		EntryPrice:      price,
		Quantity:        quantity,
		EntryCommission: commission,
	}, nil
}

// ClosePosition realizes the position at the bar close adjusted
// downward by the slippage fraction. Both the entry and the exit
// commission are netted into Pnl, so summing trade Pnl over a run
// reproduces final capital exactly. forced marks an end-of-data close.
func ClosePosition(position *Position, view View, commission, slippage float64, forced bool) Trade {
	exit := view.Close() * (1 - slippage)
	pnl := (exit-position.EntryPrice)*position.Quantity - commission - position.EntryCommission
	return Trade{
		EntryTime:   position.EntryTime,
		ExitTime:    view.Time(),
		EntryPrice:  position.EntryPrice,
		ExitPrice:   exit,
		Quantity:    position.Quantity,
		Pnl:         pnl,
		PnlPct:      pnl / (position.EntryPrice * position.Quantity),
		HoldingBars: view.Index() - position.EntryIndex,
		Forced:      forced,
	}
}
