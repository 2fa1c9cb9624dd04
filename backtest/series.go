package backtest

import (
	"fmt"
	"math"
	"sort"
)

// Bar is one OHLCV record of a time-ordered sequence. Time is unix
// milliseconds, the same format the candle store uses.
type Bar struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Series is a validated bar sequence with named indicator columns
// attached. Columns carry one value per bar and math.NaN() over the
// indicator warm-up. A Series is read-only once built.
type Series struct {
	symbol  string
	bars    []Bar
	columns map[string][]float64
}

// NewSeries validates bars and columns and builds a Series. Timestamps
// must be strictly increasing, prices positive with high and low
// bracketing open and close, volume non-negative, and every column as
// long as the bar slice. Violations return a DataError.
func NewSeries(symbol string, bars []Bar, columns map[string][]float64) (*Series, error) {
	for i, b := range bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return nil, &DataError{Reason: fmt.Sprintf("bar %d: non-positive price", i)}
		}
		if b.High < math.Max(b.Open, b.Close) || b.Low > math.Min(b.Open, b.Close) {
			return nil, &DataError{Reason: fmt.Sprintf("bar %d: high/low outside open/close range", i)}
		}
		if b.Volume < 0 {
			return nil, &DataError{Reason: fmt.Sprintf("bar %d: negative volume", i)}
		}
		if i > 0 && b.Time <= bars[i-1].Time {
			return nil, &DataError{Reason: fmt.Sprintf("bar %d: timestamp not strictly increasing", i)}
		}
	}
	cols := make(map[string][]float64, len(columns))
	for name, values := range columns {
		if len(values) != len(bars) {
			return nil, &DataError{Reason: fmt.Sprintf("column %q: %d values for %d bars", name, len(values), len(bars))}
		}
		cols[name] = values
	}
	return &Series{symbol: symbol, bars: bars, columns: cols}, nil
}

// Symbol is the instrument the series belongs to.
func (s *Series) Symbol() string { return s.symbol }

// Len is the number of bars.
func (s *Series) Len() int { return len(s.bars) }

// At is the read-only view over bar index i.
func (s *Series) At(i int) View { return View{series: s, index: i} }

// Last is the final bar of the series.
func (s *Series) Last() Bar { return s.bars[len(s.bars)-1] }

// ColumnNames lists the attached indicator columns in sorted order.
func (s *Series) ColumnNames() []string {
	names := make([]string, 0, len(s.columns))
	for name := range s.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// View is a read-only window over one bar. Lookback offsets count
// backwards only, so a strategy can never observe a bar after the one
// under evaluation.
type View struct {
	series *Series
	index  int
}

// Index is the bar position inside the series.
func (v View) Index() int { return v.index }

// Bar is the full OHLCV record under the view.
func (v View) Bar() Bar { return v.series.bars[v.index] }

// Time is the current bar timestamp, unix milliseconds.
func (v View) Time() int64 { return v.series.bars[v.index].Time }

// Open is the current bar open price.
func (v View) Open() float64 { return v.series.bars[v.index].Open }

// High is the current bar high price.
func (v View) High() float64 { return v.series.bars[v.index].High }

// Low is the current bar low price.
func (v View) Low() float64 { return v.series.bars[v.index].Low }

// Close is the current bar close price.
func (v View) Close() float64 { return v.series.bars[v.index].Close }

// Volume is the current bar volume.
func (v View) Volume() float64 { return v.series.bars[v.index].Volume }

// Value returns the named indicator at the current bar. ok is false for
// unknown columns and for NaN warm-up values.
func (v View) Value(column string) (float64, bool) {
	return v.ValueAt(column, 0)
}

// ValueAt returns the named indicator lookback bars behind the current
// one. Negative lookback and reads past the first bar fail closed.
func (v View) ValueAt(column string, lookback int) (float64, bool) {
	if lookback < 0 || lookback > v.index {
		return 0, false
	}
	values, ok := v.series.columns[column]
	if !ok {
		return 0, false
	}
	value := values[v.index-lookback]
	if math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

// CloseAt returns the close price lookback bars behind the current one,
// with the same fail-closed rules as ValueAt.
func (v View) CloseAt(lookback int) (float64, bool) {
	if lookback < 0 || lookback > v.index {
		return 0, false
	}
	return v.series.bars[v.index-lookback].Close, true
}

// HighAt returns the high price lookback bars behind the current one.
func (v View) HighAt(lookback int) (float64, bool) {
	if lookback < 0 || lookback > v.index {
		return 0, false
	}
	return v.series.bars[v.index-lookback].High, true
}

// LowAt returns the low price lookback bars behind the current one.
func (v View) LowAt(lookback int) (float64, bool) {
	if lookback < 0 || lookback > v.index {
		return 0, false
	}
	return v.series.bars[v.index-lookback].Low, true
}

// VolumeAt returns the volume lookback bars behind the current one.
func (v View) VolumeAt(lookback int) (float64, bool) {
	if lookback < 0 || lookback > v.index {
		return 0, false
	}
	return v.series.bars[v.index-lookback].Volume, true
}

// Ready reports whether every named column has a defined value at the
// current bar. The engine uses it to keep warm-up bars away from the
// strategy.
func (v View) Ready(columns ...string) bool {
	for _, column := range columns {
		if _, ok := v.Value(column); !ok {
			return false
		}
	}
	return true
}
