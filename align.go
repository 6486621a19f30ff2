package backtest

import (
	"github.com/yaopinliu/backtest/date"
)

// Align builds a gap-free price table for the given symbols out of raw daily
// histories with unaligned trading calendars.
//
// The table covers the union of all observed dates in ascending order. Cells
// with no direct observation are forward-filled per column with the most
// recent prior value, which models market closures without inventing price
// moves. Rows where any column still has no value (dates before a symbol's
// first observation) are dropped entirely to keep rows consistent across
// columns.
//
// It returns a DataUnavailableError if any required symbol has no data at
// all. A single-symbol input still yields a table.
func Align(raw map[string]date.History[float64], symbols []string) (*Table, error) {
	histories := make([]*date.History[float64], 0, len(symbols))
	for _, symbol := range symbols {
		h, ok := raw[symbol]
		if !ok || h.Len() == 0 {
			return nil, &DataUnavailableError{Symbol: symbol}
		}
		histories = append(histories, &h)
	}

	// Union of all observed dates, ascending.
	var union []date.Date
	for on := range date.Iterate(histories...) {
		union = append(union, on)
	}

	days := make([]date.Date, 0, len(union))
	cols := make(map[string][]float64, len(symbols))
	for _, symbol := range symbols {
		cols[symbol] = make([]float64, 0, len(union))
	}

	row := make([]float64, len(symbols))
	for _, on := range union {
		complete := true
		for i, h := range histories {
			v, ok := h.ValueAsOf(on)
			if !ok || !(v > 0) {
				complete = false
				break
			}
			row[i] = v
		}
		if !complete {
			continue
		}
		days = append(days, on)
		for i, symbol := range symbols {
			cols[symbol] = append(cols[symbol], row[i])
		}
	}

	t := NewTable(days)
	for _, symbol := range symbols {
		t.SetColumn(symbol, cols[symbol])
	}
	return t, nil
}
