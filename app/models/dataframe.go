package models

import (
	"github.com/oarkflow/tradesignal/backtest"
	"github.com/oarkflow/tradesignal/indicator"
)

// DataFrame is data frame including candles, strategy scores, alerts
type DataFrame struct {
	*CandleFrame
	*ScoreFrame
	*AlertFrame
}

// NewDataFrame is constructor of DataFrame
func NewDataFrame() *DataFrame {
	return &DataFrame{}
}

// AddCandleFrame adds CandleFrame in DataFrame
func (dframe *DataFrame) AddCandleFrame(symbol string, limit int) {
	dframe.CandleFrame = GetCandleFrame(symbol, limit)
}

// AddScoreFrame adds ScoreFrame in DataFrame
func (dframe *DataFrame) AddScoreFrame(symbol string) {
	dframe.ScoreFrame = GetScoreFrame(symbol)
}

// AddAlertFrame adds AlertFrame in DataFrame
func (dframe *DataFrame) AddAlertFrame(symbol string, limit int) {
	dframe.AlertFrame = GetAlertFrame(symbol, limit)
}

// CandleFrame is candle data frame
type CandleFrame struct {
	Symbol  string   `json:"symbol,omitempty"`
	Candles []Candle `json:"candles,omitempty"`
}

// Opens is open prices of candles
func (cframe *CandleFrame) Opens() []float64 {
	open := make([]float64, len(cframe.Candles))
	for i, candle := range cframe.Candles {
		open[i] = candle.Open
	}
	return open
}

// Highs is high prices of candles
func (cframe *CandleFrame) Highs() []float64 {
	high := make([]float64, len(cframe.Candles))
	for i, candle := range cframe.Candles {
		high[i] = candle.High
	}
	return high
}

// Lows is low prices of candles
func (cframe *CandleFrame) Lows() []float64 {
	low := make([]float64, len(cframe.Candles))
	for i, candle := range cframe.Candles {
		low[i] = candle.Low
	}
	return low
}

// Closes is close prices of candles
func (cframe *CandleFrame) Closes() []float64 {
	close := make([]float64, len(cframe.Candles))
	for i, candle := range cframe.Candles {
		close[i] = candle.Close
	}
	return close
}

// Volumes is volume prices of candles
func (cframe *CandleFrame) Volumes() []float64 {
	volume := make([]float64, len(cframe.Candles))
	for i, candle := range cframe.Candles {
		volume[i] = candle.Volume
	}
	return volume
}

// Times is unixtimes of candles
func (cframe *CandleFrame) Times() []int64 {
	times := make([]int64, len(cframe.Candles))
	for i, candle := range cframe.Candles {
		times[i] = candle.Time
	}
	return times
}

// ToSeries computes indicator columns over the candles and bundles
// everything into an immutable series for the engine
func (cframe *CandleFrame) ToSeries(params indicator.Params) (*backtest.Series, error) {
	bars := make([]backtest.Bar, len(cframe.Candles))
	for i, candle := range cframe.Candles {
		bars[i] = backtest.Bar{
			Time:   candle.Time,
			Open:   candle.Open,
			High:   candle.High,
			Low:    candle.Low,
			Close:  candle.Close,
			Volume: candle.Volume,
		}
	}

	columns := indicator.Compute(cframe.Highs(), cframe.Lows(), cframe.Closes(), cframe.Volumes(), params)
	return backtest.NewSeries(cframe.Symbol, bars, columns)
}
