package feed

import (
	"math"
	"sync"

	bt "github.com/google/btree"
)

// rowItem orders rows by symbol first, day second
type rowItem struct {
	symbol string
	time   int64
	row    map[string]any
}

func (ri rowItem) Less(other bt.Item) bool {
	oi := other.(rowItem)
	if ri.symbol != oi.symbol {
		return ri.symbol < oi.symbol
	}
	return ri.time < oi.time
}

// TimeIndex keeps ingested rows ordered so per-symbol range scans do
// not have to go through the search engine
type TimeIndex struct {
	mu   sync.RWMutex
	tree *bt.BTree
}

// NewTimeIndex is constructor of TimeIndex
func NewTimeIndex() *TimeIndex {
	return &TimeIndex{tree: bt.New(32)}
}

// Add inserts one row, replacing any earlier row of the same symbol and day
func (ix *TimeIndex) Add(symbol string, t int64, row map[string]any) {
	ix.mu.Lock()
	ix.tree.ReplaceOrInsert(rowItem{symbol: symbol, time: t, row: row})
	ix.mu.Unlock()
}

// Range returns rows of symbol with from <= time <= to in ascending order
func (ix *TimeIndex) Range(symbol string, from, to int64) []map[string]any {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var rows []map[string]any
	ix.tree.AscendRange(
		rowItem{symbol: symbol, time: from},
		rowItem{symbol: symbol, time: to + 1},
		func(item bt.Item) bool {
			rows = append(rows, item.(rowItem).row)
			return true
		})
	return rows
}

// Latest returns the newest row of symbol
func (ix *TimeIndex) Latest(symbol string) (map[string]any, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var row map[string]any
	found := false
	ix.tree.DescendLessOrEqual(rowItem{symbol: symbol, time: math.MaxInt64}, func(item bt.Item) bool {
		ri := item.(rowItem)
		if ri.symbol != symbol {
			return false
		}
		row = ri.row
		found = true
		return false
	})
	return row, found
}

// Symbols returns every indexed symbol in ascending order
func (ix *TimeIndex) Symbols() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var symbols []string
	ix.tree.Ascend(func(item bt.Item) bool {
		ri := item.(rowItem)
		if len(symbols) == 0 || symbols[len(symbols)-1] != ri.symbol {
			symbols = append(symbols, ri.symbol)
		}
		return true
	})
	return symbols
}

// Len is the number of indexed rows
func (ix *TimeIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.Len()
}
