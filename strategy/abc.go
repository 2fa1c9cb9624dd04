package strategy

import (
	"fmt"

	"github.com/oarkflow/tradesignal/backtest"
)

// ABCWave hunts for an A-B-C retracement in the recent closes: A the
// swing low, B the swing high after it, C a higher low giving back
// between MinRetrace and MaxRetrace of the A-B leg. A close breaking
// back above B buys the continuation. The exit is a fixed fractional
// stop and target off the entry fill, since the swing points that
// built the pattern are stale by the time the trade is on.
type ABCWave struct {
	Window     int
	MinRetrace float64
	MaxRetrace float64
	StopPct    float64
	TargetPct  float64
}

// NewABCWave is constructor of ABCWave. Zero values fall back to a
// 30-bar window, the 38.2%..78.6% Fibonacci retracement span, a 5%
// stop and a 10% target.
func NewABCWave(window int, minRetrace, maxRetrace float64) ABCWave {
	if window <= 0 {
		window = 30
	}
	if minRetrace <= 0 {
		minRetrace = 0.382
	}
	if maxRetrace <= 0 {
		maxRetrace = 0.786
	}
	return ABCWave{
		Window:     window,
		MinRetrace: minRetrace,
		MaxRetrace: maxRetrace,
		StopPct:    0.05,
		TargetPct:  0.10,
	}
}

// Name implements backtest.Strategy.
func (s ABCWave) Name() string {
	return fmt.Sprintf("abc_wave_%d", s.Window)
}

// Columns implements backtest.Strategy. The pattern reads raw closes
// only, so there is no indicator warm-up to declare.
func (s ABCWave) Columns() []string { return nil }

// Evaluate implements backtest.Strategy.
func (s ABCWave) Evaluate(view backtest.View, position *backtest.Position) backtest.Signal {
	if position != nil {
		close := view.Close()
		if close <= position.EntryPrice*(1-s.StopPct) {
			return backtest.SELL
		}
		if close >= position.EntryPrice*(1+s.TargetPct) {
			return backtest.SELL
		}
		return backtest.HOLD
	}

	window := s.Window
	if window > view.Index() {
		window = view.Index()
	}
	if window < 4 {
		return backtest.HOLD
	}

	// closes in chronological order, excluding the current bar
	recent := make([]float64, 0, window)
	for lookback := window; lookback >= 1; lookback-- {
		close, ok := view.CloseAt(lookback)
		if !ok {
			return backtest.HOLD
		}
		recent = append(recent, close)
	}

	// A: the swing low of the window
	ia := 0
	for i, close := range recent {
		if close < recent[ia] {
			ia = i
		}
	}
	// B: the swing high after A
	ib := -1
	for i := ia + 1; i < len(recent); i++ {
		if ib < 0 || recent[i] > recent[ib] {
			ib = i
		}
	}
	if ib < 0 || ib == len(recent)-1 {
		return backtest.HOLD
	}
	// C: the pullback low after B
	ic := ib + 1
	for i := ib + 1; i < len(recent); i++ {
		if recent[i] < recent[ic] {
			ic = i
		}
	}

	a, b, c := recent[ia], recent[ib], recent[ic]
	if b <= a || c <= a {
		return backtest.HOLD
	}
	retrace := (b - c) / (b - a)
	if retrace < s.MinRetrace || retrace > s.MaxRetrace {
		return backtest.HOLD
	}
	if view.Close() > b {
		return backtest.BUY
	}
	return backtest.HOLD
}
