package backtest

import (
	"fmt"
	"sort"
	"sync"
)

// Metric selects the ranking key of a batch run.
type Metric string

const (
	MetricTotalReturn  Metric = "total_return_pct"
	MetricSharpe       Metric = "sharpe_ratio"
	MetricWinRate      Metric = "win_rate"
	MetricProfitFactor Metric = "profit_factor"
	MetricMaxDrawdown  Metric = "max_drawdown_pct"
)

// Valid reports whether m names a known ranking metric.
func (m Metric) Valid() bool {
	switch m {
	case MetricTotalReturn, MetricSharpe, MetricWinRate, MetricProfitFactor, MetricMaxDrawdown:
		return true
	}
	return false
}

// Value reads the ranked field of a result.
func (m Metric) Value(r *Result) float64 {
	switch m {
	case MetricSharpe:
		return r.SharpeRatio
	case MetricWinRate:
		return r.WinRate
	case MetricProfitFactor:
		return r.ProfitFactor
	case MetricMaxDrawdown:
		return r.MaxDrawdownPct
	default:
		return r.TotalReturnPct
	}
}

// Failure records a strategy whose run could not complete. The batch
// carries on with the remaining strategies.
type Failure struct {
	Strategy string `json:"strategy"`
	Reason   string `json:"reason"`
}

// Batch is the outcome of ranking many strategies over one series.
// Results holds every completed run in input order, including the ones
// flagged insufficient-sample; Ranked holds only the eligible results,
// best first, with Rank assigned from 1.
type Batch struct {
	Metric   Metric    `json:"metric"`
	Ranked   []*Result `json:"ranked"`
	Results  []*Result `json:"results"`
	Failures []Failure `json:"failures,omitempty"`
}

// RunAll backtests every strategy against the same series and ranks
// the eligible results by metric (MetricTotalReturn when empty).
// Results with fewer trades than cfg.MinTrades stay in Results flagged
// insufficient-sample but never rank. A failure local to one strategy
// is recorded and the batch continues; invalid config or an invalid
// dataset aborts the whole batch up front.
//
// With cfg.Workers > 1 strategies run on a worker pool. Each run only
// writes its own slot, and the final sort is keyed by metric value,
// never by completion order, so parallel output equals serial output.
func RunAll(series *Series, strategies []Strategy, cfg Config, metric Metric) (*Batch, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if series == nil || series.Len() < cfg.MinBars {
		length := 0
		if series != nil {
			length = series.Len()
		}
		return nil, &DataError{Reason: fmt.Sprintf("%d bars, need at least %d", length, cfg.MinBars)}
	}
	if metric == "" {
		metric = MetricTotalReturn
	}
	if !metric.Valid() {
		return nil, &ConfigurationError{Field: "metric", Reason: fmt.Sprintf("unknown metric %q", metric)}
	}

	results := make([]*Result, len(strategies))
	errs := make([]error, len(strategies))

	if cfg.Workers > 1 {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < cfg.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					results[i], errs[i] = runOne(series, strategies[i], cfg)
				}
			}()
		}
		for i := range strategies {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	} else {
		for i := range strategies {
			results[i], errs[i] = runOne(series, strategies[i], cfg)
		}
	}

	batch := &Batch{Metric: metric}
	for i, strategy := range strategies {
		if errs[i] != nil {
			batch.Failures = append(batch.Failures, Failure{Strategy: strategy.Name(), Reason: errs[i].Error()})
			continue
		}
		result := results[i]
		if len(result.Trades) < cfg.MinTrades {
			result.InsufficientSample = true
		}
		batch.Results = append(batch.Results, result)
		if !result.InsufficientSample {
			batch.Ranked = append(batch.Ranked, result)
		}
	}

	sort.SliceStable(batch.Ranked, func(i, j int) bool {
		vi, vj := metric.Value(batch.Ranked[i]), metric.Value(batch.Ranked[j])
		if vi != vj {
			return vi > vj
		}
		// deterministic ordering on ties
		if batch.Ranked[i].SharpeRatio != batch.Ranked[j].SharpeRatio {
			return batch.Ranked[i].SharpeRatio > batch.Ranked[j].SharpeRatio
		}
		return batch.Ranked[i].Strategy < batch.Ranked[j].Strategy
	})
	for i, result := range batch.Ranked {
		result.Rank = i + 1
	}
	return batch, nil
}

// runOne isolates a single strategy evaluation. A panicking strategy
// turns into an error here instead of taking the batch down.
func runOne(series *Series, strategy Strategy, cfg Config) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("strategy %s panicked: %v", strategy.Name(), r)
		}
	}()
	return Run(series, strategy, cfg)
}
