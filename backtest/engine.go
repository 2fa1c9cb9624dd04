package backtest

import "fmt"

// Defaults applied by withDefaults when the caller leaves the field at
// its zero value.
const (
	DefaultMinBars        = 30
	DefaultPeriodsPerYear = 252
)

// Config collects every tunable of a run in one explicit struct. Zero
// Commission, Slippage and MinTrades are valid as-is; MinBars falls
// back to DefaultMinBars, PeriodsPerYear to DefaultPeriodsPerYear and
// Workers to 1. InitialCapital has no default and must be positive.
type Config struct {
	InitialCapital float64 `json:"initial_capital"`
	Commission     float64 `json:"commission"`
	Slippage       float64 `json:"slippage"`
	MinBars        int     `json:"min_bars"`
	MinTrades      int     `json:"min_trades"`
	PeriodsPerYear int     `json:"periods_per_year"`
	Workers        int     `json:"workers"`
}

func (c Config) withDefaults() Config {
	if c.MinBars <= 0 {
		c.MinBars = DefaultMinBars
	}
	if c.PeriodsPerYear <= 0 {
		c.PeriodsPerYear = DefaultPeriodsPerYear
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return c
}

func (c Config) validate() error {
	if c.InitialCapital <= 0 {
		return &ConfigurationError{Field: "initial_capital", Reason: "must be positive"}
	}
	if c.Commission < 0 {
		return &ConfigurationError{Field: "commission", Reason: "must not be negative"}
	}
	if c.Slippage < 0 || c.Slippage >= 1 {
		return &ConfigurationError{Field: "slippage", Reason: "must be in [0, 1)"}
	}
	if c.MinTrades < 0 {
		return &ConfigurationError{Field: "min_trades", Reason: "must not be negative"}
	}
	return nil
}

// EquityPoint is one mark-to-market sample of the equity curve.
type EquityPoint struct {
	Time  int64   `json:"time"`
	Value float64 `json:"value"`
}

// Result is the outcome of one (strategy, series) run. It is built
// once by Run and not mutated afterwards, except for Rank and
// InsufficientSample which the ranking harness sets.
type Result struct {
	Symbol             string        `json:"symbol"`
	Strategy           string        `json:"strategy"`
	InitialCapital     float64       `json:"initial_capital"`
	FinalCapital       float64       `json:"final_capital"`
	TotalReturnPct     float64       `json:"total_return_pct"`
	WinRate            float64       `json:"win_rate"`
	MaxDrawdownPct     float64       `json:"max_drawdown_pct"`
	SharpeRatio        float64       `json:"sharpe_ratio"`
	ProfitFactor       float64       `json:"profit_factor"`
	Trades             []Trade       `json:"trades"`
	Equity             []EquityPoint `json:"equity"`
	ForcedExit         bool          `json:"forced_exit"`
	SkippedBuys        int           `json:"skipped_buys,omitempty"`
	InsufficientSample bool          `json:"insufficient_sample"`
	Rank               int           `json:"rank,omitempty"`
}

// Run replays the series bar by bar against one strategy and returns a
// fully populated Result. The pass is single-threaded and free of I/O,
// so identical inputs always produce identical results.
//
// Bars where any of the strategy's declared columns is undefined count
// as warm-up and never reach the strategy. BUY on an open position and
// SELL on a flat book degrade to HOLD. A BUY that capital cannot cover
// is skipped and counted in SkippedBuys. A position still open after
// the last bar is closed at that bar's close and flagged on both the
// trade and the result, never silently.
func Run(series *Series, strategy Strategy, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if series == nil || series.Len() == 0 {
		return nil, &DataError{Reason: "empty series"}
	}
	if series.Len() < cfg.MinBars {
		return nil, &DataError{Reason: fmt.Sprintf("%d bars, need at least %d", series.Len(), cfg.MinBars)}
	}

	columns := strategy.Columns()
	cash := cfg.InitialCapital
	var position *Position
	trades := []Trade{}
	equity := make([]EquityPoint, 0, series.Len())
	skipped := 0
	forced := false

	for i := 0; i < series.Len(); i++ {
		view := series.At(i)
		signal := HOLD
		if view.Ready(columns...) {
			signal = strategy.Evaluate(view, position)
		}

		switch {
		case signal == BUY && position == nil:
			opened, err := OpenPosition(view, cash, cfg.Commission, cfg.Slippage)
			if err != nil {
				skipped++
				break
			}
			cash -= cfg.Commission + opened.MarketValue(opened.EntryPrice)
			position = opened
		case signal == SELL && position != nil:
			trade := ClosePosition(position, view, cfg.Commission, cfg.Slippage, false)
			cash += position.MarketValue(trade.ExitPrice) - cfg.Commission
			trades = append(trades, trade)
			position = nil
		}

		value := cash
		if position != nil {
			value += position.MarketValue(view.Close())
		}
		equity = append(equity, EquityPoint{Time: view.Time(), Value: value})
	}

	if position != nil {
		view := series.At(series.Len() - 1)
		trade := ClosePosition(position, view, cfg.Commission, cfg.Slippage, true)
		cash += position.MarketValue(trade.ExitPrice) - cfg.Commission
		trades = append(trades, trade)
		forced = true
	}

	result := &Result{
		Symbol:         series.Symbol(),
		Strategy:       strategy.Name(),
		InitialCapital: cfg.InitialCapital,
		FinalCapital:   cash,
		Trades:         trades,
		Equity:         equity,
		ForcedExit:     forced,
		SkippedBuys:    skipped,
	}
	Summarize(result, cfg.PeriodsPerYear)
	return result, nil
}
