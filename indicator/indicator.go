package indicator

import (
	"math"

	"github.com/markcheno/go-talib"
)

// Column names attached to a series. Strategies declare the ones they
// read.
const (
	RSI          = "rsi"
	MACD         = "macd"
	MACDSignal   = "macd_signal"
	MACDHist     = "macd_hist"
	EMAFast      = "ema_fast"
	EMASlow      = "ema_slow"
	SMA          = "sma"
	ADX          = "adx"
	ATR          = "atr"
	BBUpper      = "bb_upper"
	BBMid        = "bb_mid"
	BBLower      = "bb_lower"
	KCUpper      = "kc_upper"
	KCLower      = "kc_lower"
	DonchianHigh = "donchian_high"
	DonchianLow  = "donchian_low"
	DonchianMid  = "donchian_mid"
	WillR        = "willr"
	VolumeRatio  = "vol_ratio"
)

// Params are the lookback settings for every computed column. Zero
// fields fall back to the defaults below.
type Params struct {
	RsiPeriod      int     `json:"rsi_period"`
	MacdFast       int     `json:"macd_fast"`
	MacdSlow       int     `json:"macd_slow"`
	MacdSignal     int     `json:"macd_signal"`
	EmaFast        int     `json:"ema_fast"`
	EmaSlow        int     `json:"ema_slow"`
	SmaPeriod      int     `json:"sma_period"`
	AdxPeriod      int     `json:"adx_period"`
	AtrPeriod      int     `json:"atr_period"`
	BBPeriod       int     `json:"bb_period"`
	BBWidth        float64 `json:"bb_width"`
	KeltnerPeriod  int     `json:"keltner_period"`
	KeltnerWidth   float64 `json:"keltner_width"`
	DonchianPeriod int     `json:"donchian_period"`
	WillrPeriod    int     `json:"willr_period"`
	VolumePeriod   int     `json:"volume_period"`
}

// DefaultParams are the stock settings used when the caller does not
// override anything.
func DefaultParams() Params {
	return Params{
		RsiPeriod:      14,
		MacdFast:       12,
		MacdSlow:       26,
		MacdSignal:     9,
		EmaFast:        9,
		EmaSlow:        21,
		SmaPeriod:      50,
		AdxPeriod:      14,
		AtrPeriod:      14,
		BBPeriod:       20,
		BBWidth:        2,
		KeltnerPeriod:  20,
		KeltnerWidth:   2,
		DonchianPeriod: 20,
		WillrPeriod:    14,
		VolumePeriod:   20,
	}
}

func (p Params) withDefaults() Params {
	defaults := DefaultParams()
	if p.RsiPeriod <= 0 {
		p.RsiPeriod = defaults.RsiPeriod
	}
	if p.MacdFast <= 0 {
		p.MacdFast = defaults.MacdFast
	}
	if p.MacdSlow <= 0 {
		p.MacdSlow = defaults.MacdSlow
	}
	if p.MacdSignal <= 0 {
		p.MacdSignal = defaults.MacdSignal
	}
	if p.EmaFast <= 0 {
		p.EmaFast = defaults.EmaFast
	}
	if p.EmaSlow <= 0 {
		p.EmaSlow = defaults.EmaSlow
	}
	if p.SmaPeriod <= 0 {
		p.SmaPeriod = defaults.SmaPeriod
	}
	if p.AdxPeriod <= 0 {
		p.AdxPeriod = defaults.AdxPeriod
	}
	if p.AtrPeriod <= 0 {
		p.AtrPeriod = defaults.AtrPeriod
	}
	if p.BBPeriod <= 0 {
		p.BBPeriod = defaults.BBPeriod
	}
	if p.BBWidth <= 0 {
		p.BBWidth = defaults.BBWidth
	}
	if p.KeltnerPeriod <= 0 {
		p.KeltnerPeriod = defaults.KeltnerPeriod
	}
	if p.KeltnerWidth <= 0 {
		p.KeltnerWidth = defaults.KeltnerWidth
	}
	if p.DonchianPeriod <= 0 {
		p.DonchianPeriod = defaults.DonchianPeriod
	}
	if p.WillrPeriod <= 0 {
		p.WillrPeriod = defaults.WillrPeriod
	}
	if p.VolumePeriod <= 0 {
		p.VolumePeriod = defaults.VolumePeriod
	}
	return p
}

// Compute derives every column from raw OHLCV slices. Each column is
// as long as the input with math.NaN() over the indicator's own
// warm-up, so the engine can tell warm-up bars apart from real values.
// talib reports warm-up slots as zero, which is indistinguishable from
// data, hence the masking here.
func Compute(highs, lows, closes, volumes []float64, p Params) map[string][]float64 {
	p = p.withDefaults()
	n := len(closes)
	columns := make(map[string][]float64, 19)
	if n == 0 {
		return columns
	}

	put := func(name string, lookback int, compute func() []float64) {
		if lookback >= n {
			columns[name] = allNaN(n)
			return
		}
		columns[name] = nanHead(compute(), lookback)
	}

	put(RSI, p.RsiPeriod, func() []float64 { return talib.Rsi(closes, p.RsiPeriod) })

	macdLookback := p.MacdSlow + p.MacdSignal - 2
	if macdLookback >= n {
		columns[MACD] = allNaN(n)
		columns[MACDSignal] = allNaN(n)
		columns[MACDHist] = allNaN(n)
	} else {
		macd, signal, hist := talib.Macd(closes, p.MacdFast, p.MacdSlow, p.MacdSignal)
		columns[MACD] = nanHead(macd, macdLookback)
		columns[MACDSignal] = nanHead(signal, macdLookback)
		columns[MACDHist] = nanHead(hist, macdLookback)
	}

	put(EMAFast, p.EmaFast-1, func() []float64 { return talib.Ema(closes, p.EmaFast) })
	put(EMASlow, p.EmaSlow-1, func() []float64 { return talib.Ema(closes, p.EmaSlow) })
	put(SMA, p.SmaPeriod-1, func() []float64 { return talib.Sma(closes, p.SmaPeriod) })
	put(ADX, 2*p.AdxPeriod-1, func() []float64 { return talib.Adx(highs, lows, closes, p.AdxPeriod) })
	put(ATR, p.AtrPeriod, func() []float64 { return talib.Atr(highs, lows, closes, p.AtrPeriod) })
	put(WillR, p.WillrPeriod-1, func() []float64 { return talib.WillR(highs, lows, closes, p.WillrPeriod) })

	if p.BBPeriod-1 >= n {
		columns[BBUpper] = allNaN(n)
		columns[BBMid] = allNaN(n)
		columns[BBLower] = allNaN(n)
	} else {
		upper, mid, lower := talib.BBands(closes, p.BBPeriod, p.BBWidth, p.BBWidth, 0)
		columns[BBUpper] = nanHead(upper, p.BBPeriod-1)
		columns[BBMid] = nanHead(mid, p.BBPeriod-1)
		columns[BBLower] = nanHead(lower, p.BBPeriod-1)
	}

	keltnerLookback := p.KeltnerPeriod
	if p.AtrPeriod > keltnerLookback {
		keltnerLookback = p.AtrPeriod
	}
	if keltnerLookback >= n {
		columns[KCUpper] = allNaN(n)
		columns[KCLower] = allNaN(n)
	} else {
		mid := talib.Ema(closes, p.KeltnerPeriod)
		atr := talib.Atr(highs, lows, closes, p.AtrPeriod)
		upper := make([]float64, n)
		lower := make([]float64, n)
		for i := 0; i < n; i++ {
			upper[i] = mid[i] + p.KeltnerWidth*atr[i]
			lower[i] = mid[i] - p.KeltnerWidth*atr[i]
		}
		columns[KCUpper] = nanHead(upper, keltnerLookback)
		columns[KCLower] = nanHead(lower, keltnerLookback)
	}

	// Donchian channels are shifted one bar so a breakout compares the
	// current close against the previous window, not against itself.
	if p.DonchianPeriod >= n {
		columns[DonchianHigh] = allNaN(n)
		columns[DonchianLow] = allNaN(n)
		columns[DonchianMid] = allNaN(n)
	} else {
		high := shiftForward(talib.Max(highs, p.DonchianPeriod))
		low := shiftForward(talib.Min(lows, p.DonchianPeriod))
		mid := make([]float64, n)
		for i := 0; i < n; i++ {
			mid[i] = (high[i] + low[i]) / 2
		}
		columns[DonchianHigh] = nanHead(high, p.DonchianPeriod)
		columns[DonchianLow] = nanHead(low, p.DonchianPeriod)
		columns[DonchianMid] = nanHead(mid, p.DonchianPeriod)
	}

	if p.VolumePeriod-1 >= n {
		columns[VolumeRatio] = allNaN(n)
	} else {
		average := talib.Sma(volumes, p.VolumePeriod)
		ratio := make([]float64, n)
		for i := 0; i < n; i++ {
			if average[i] == 0 {
				ratio[i] = math.NaN()
				continue
			}
			ratio[i] = volumes[i] / average[i]
		}
		columns[VolumeRatio] = nanHead(ratio, p.VolumePeriod-1)
	}

	return columns
}

func allNaN(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = math.NaN()
	}
	return values
}

func nanHead(values []float64, lookback int) []float64 {
	if lookback > len(values) {
		lookback = len(values)
	}
	for i := 0; i < lookback; i++ {
		values[i] = math.NaN()
	}
	return values
}

func shiftForward(values []float64) []float64 {
	shifted := make([]float64, len(values))
	if len(values) == 0 {
		return shifted
	}
	shifted[0] = math.NaN()
	copy(shifted[1:], values[:len(values)-1])
	return shifted
}
