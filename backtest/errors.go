package backtest

import "fmt"

// ConfigurationError reports invalid run parameters. It is fatal to the
// run that supplied them and is never recovered internally.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("backtest: configuration %q: %s", e.Field, e.Reason)
}

// DataError reports a malformed bar sequence. It is fatal to a single
// run; the ranking harness records it per strategy and continues.
type DataError struct {
	Reason string
}

func (e *DataError) Error() string {
	return "backtest: data: " + e.Reason
}

// InsufficientCapitalError reports a BUY signal that cannot be filled
// because remaining capital does not cover commission. The engine
// recovers by treating the signal as HOLD and counting the skip.
type InsufficientCapitalError struct {
	Capital    float64
	Commission float64
}

func (e *InsufficientCapitalError) Error() string {
	return fmt.Sprintf("backtest: capital %.4f does not cover commission %.4f", e.Capital, e.Commission)
}
