package backtest

import (
	"github.com/yaopinliu/backtest/date"
)

// Timeline holds the simulated asset value and the cumulative amount
// invested, one point per trading day plus an initial point before any
// return is applied. The three slices are parallel.
type Timeline struct {
	Days  []date.Date
	Value []float64
	Cost  []float64
}

// Final returns the last value and cumulative cost of the timeline.
func (tl Timeline) Final() (value, cost float64) {
	last := len(tl.Value) - 1
	return tl.Value[last], tl.Cost[last]
}

// Range returns the date range covered by the timeline.
func (tl Timeline) Range() date.Range {
	return date.NewRange(tl.Days[0], tl.Days[len(tl.Days)-1])
}

// Compound walks a portfolio return series in chronological order, carrying
// an asset value and a cumulative cost.
//
// On the first trading day encountered in a new period (keyed by the start
// of the calendar period containing the day, not by a wall-clock date) the
// periodic contribution is added to both value and cost. Then the day's
// return compounds the value. Cost is therefore non-decreasing and depends
// only on the number of periods elapsed.
//
// The anchor names the day of the initial (initialCash, initialCash) point.
// An empty return series yields that single point: insufficient history is a
// trivial result, not an error.
func Compound(returns *date.History[float64], anchor date.Date, initialCash, contribution float64, period date.Period) Timeline {
	n := returns.Len()
	tl := Timeline{
		Days:  make([]date.Date, 1, n+1),
		Value: make([]float64, 1, n+1),
		Cost:  make([]float64, 1, n+1),
	}
	tl.Days[0] = anchor
	tl.Value[0] = initialCash
	tl.Cost[0] = initialCash

	value, cost := initialCash, initialCash
	var lastKey date.Date // zero: no period seen yet, the first day always posts
	for on, r := range returns.Values() {
		if key := on.StartOf(period); key != lastKey {
			value += contribution
			cost += contribution
			lastKey = key
		}
		value *= 1 + r
		tl.Days = append(tl.Days, on)
		tl.Value = append(tl.Value, value)
		tl.Cost = append(tl.Cost, cost)
	}
	return tl
}
