package backtest

import (
	"github.com/yaopinliu/backtest/date"
)

// Returns computes day-over-day simple returns for every column of a price
// table. The first row has no prior day and is dropped, so the result has
// one row less than the input.
func Returns(t *Table) *Table {
	days := t.Days()
	if len(days) == 0 {
		return NewTable(nil)
	}
	out := NewTable(days[1:])
	for _, symbol := range t.Symbols() {
		col, _ := t.Column(symbol)
		rets := make([]float64, len(col)-1)
		for i := 1; i < len(col); i++ {
			rets[i-1] = col[i]/col[i-1] - 1
		}
		out.SetColumn(symbol, rets)
	}
	return out
}

// Composite combines per-asset return columns into a single weighted
// portfolio return series.
//
// The weight of each column is re-resolved by symbol at this point, never by
// position: column order does not survive a data-fetch round trip. A column
// without a matching asset is a wiring defect reported as a
// WeightAlignmentError.
func Composite(returns *Table, assets []Asset) (*date.History[float64], error) {
	weights := make(map[string]float64, len(assets))
	for _, a := range assets {
		weights[a.Symbol] = a.Weight
	}

	days := returns.Days()
	combined := make([]float64, len(days))
	for _, symbol := range returns.Symbols() {
		w, ok := weights[symbol]
		if !ok {
			return nil, &WeightAlignmentError{Symbol: symbol}
		}
		col, _ := returns.Column(symbol)
		for i, r := range col {
			combined[i] += w * r
		}
	}

	series := new(date.History[float64])
	for i, on := range days {
		series.Append(on, combined[i])
	}
	return series, nil
}
