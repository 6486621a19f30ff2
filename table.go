package backtest

import (
	"sort"

	"github.com/yaopinliu/backtest/date"
)

// Table is a rectangular set of daily value columns sharing one date index.
// Every column has exactly one value per day, no missing cells.
type Table struct {
	days []date.Date
	cols map[string][]float64
}

// NewTable returns an empty table over the given date index.
func NewTable(days []date.Date) *Table {
	return &Table{days: days, cols: make(map[string][]float64)}
}

// Len returns the number of rows (days).
func (t *Table) Len() int { return len(t.days) }

// Days returns the shared date index.
func (t *Table) Days() []date.Date { return t.days }

// Symbols returns the column names in lexical order.
func (t *Table) Symbols() []string {
	symbols := make([]string, 0, len(t.cols))
	for s := range t.cols {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// Has reports whether the table holds a column for the symbol.
func (t *Table) Has(symbol string) bool {
	_, ok := t.cols[symbol]
	return ok
}

// Column returns the values of a column, one per day.
func (t *Table) Column(symbol string) ([]float64, bool) {
	col, ok := t.cols[symbol]
	return col, ok
}

// SetColumn stores a column. It panics if the length does not match the date
// index, that would break the row-wise consistency every consumer relies on.
func (t *Table) SetColumn(symbol string, values []float64) {
	if len(values) != len(t.days) {
		panic("column length does not match the table date index")
	}
	t.cols[symbol] = values
}
