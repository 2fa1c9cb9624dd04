package backtest

import (
	"fmt"
	"sort"
	"sync"
)

// Signal is a strategy decision for one bar.
type Signal string

const (
	// BUY opens a long position when none is open
	BUY Signal = "BUY"
	// SELL closes the open position
	SELL Signal = "SELL"
	// HOLD leaves state unchanged
	HOLD Signal = "HOLD"
)

// Strategy is one trading decision rule. Evaluate must be a pure
// function of the view and the open position. Columns names the
// indicator columns the rule reads; the engine treats bars where any
// of them is still undefined as warm-up and never evaluates them.
type Strategy interface {
	Name() string
	Columns() []string
	Evaluate(view View, position *Position) Signal
}

// Func adapts a plain function into a Strategy.
type Func struct {
	StrategyName string
	Needs        []string
	Eval         func(view View, position *Position) Signal
}

// Name implements Strategy.
func (f Func) Name() string { return f.StrategyName }

// Columns implements Strategy.
func (f Func) Columns() []string { return f.Needs }

// Evaluate implements Strategy.
func (f Func) Evaluate(view View, position *Position) Signal {
	return f.Eval(view, position)
}

// Registry is an explicit strategy table. Callers register variants
// once and look them up by name instead of dispatching on free-form
// strings scattered through the code.
type Registry struct {
	mu    sync.RWMutex
	table map[string]Strategy
}

// NewRegistry is constructor of Registry.
func NewRegistry() *Registry {
	return &Registry{table: map[string]Strategy{}}
}

// Register adds a strategy under its own name. Duplicate names are
// rejected so two variants can never shadow each other silently.
func (r *Registry) Register(s Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := s.Name()
	if name == "" {
		return fmt.Errorf("backtest: strategy with empty name")
	}
	if _, ok := r.table[name]; ok {
		return fmt.Errorf("backtest: strategy %q already registered", name)
	}
	r.table[name] = s
	return nil
}

// Get looks a strategy up by name.
func (r *Registry) Get(name string) (Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.table[name]
	return s, ok
}

// Names lists registered strategy names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.table))
	for name := range r.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered strategy ordered by name.
func (r *Registry) All() []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.table))
	for name := range r.table {
		names = append(names, name)
	}
	sort.Strings(names)
	all := make([]Strategy, len(names))
	for i, name := range names {
		all[i] = r.table[name]
	}
	return all
}
