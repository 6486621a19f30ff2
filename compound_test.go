package backtest

import (
	"math"
	"testing"

	"github.com/yaopinliu/backtest/date"
)

func TestCompoundNoContribution(t *testing.T) {
	returns := new(date.History[float64])
	returns.Append(date.MustParse("2025-01-02"), 0.0)
	returns.Append(date.MustParse("2025-01-03"), 0.10)

	tl := Compound(returns, date.MustParse("2025-01-01"), 1000, 0, date.Monthly)

	want := []float64{1000, 1000, 1100}
	if len(tl.Value) != len(want) {
		t.Fatalf("timeline length = %d want %d", len(tl.Value), len(want))
	}
	for i := range want {
		if math.Abs(tl.Value[i]-want[i]) > 1e-9 {
			t.Errorf("value[%d] = %v want %v", i, tl.Value[i], want[i])
		}
		if tl.Cost[i] != 1000 {
			t.Errorf("cost[%d] = %v want 1000", i, tl.Cost[i])
		}
	}
}

func TestCompoundContributionTiming(t *testing.T) {
	returns := new(date.History[float64])
	// three trading days in January, two in February: one boundary mid-series
	for _, day := range []string{"2025-01-02", "2025-01-03", "2025-01-06", "2025-02-03", "2025-02-04"} {
		returns.Append(date.MustParse(day), 0.0)
	}

	tl := Compound(returns, date.MustParse("2025-01-01"), 1000, 100, date.Monthly)

	// the first trading day opens a period and posts, the February boundary
	// posts exactly once more, nothing else moves the cost
	wantCost := []float64{1000, 1100, 1100, 1100, 1200, 1200}
	for i, want := range wantCost {
		if tl.Cost[i] != want {
			t.Errorf("cost[%d] = %v want %v", i, tl.Cost[i], want)
		}
	}
	// with zero returns the value tracks the cost exactly
	for i := range tl.Value {
		if tl.Value[i] != tl.Cost[i] {
			t.Errorf("value[%d] = %v want %v", i, tl.Value[i], tl.Cost[i])
		}
	}
}

func TestCompoundCostNonDecreasing(t *testing.T) {
	returns := new(date.History[float64])
	for i, r := range []float64{0.05, -0.20, 0.01, -0.10, 0.3} {
		returns.Append(date.MustParse("2025-01-02").Add(i), r)
	}

	tl := Compound(returns, date.MustParse("2025-01-01"), 500, 50, date.Weekly)
	for i := 1; i < len(tl.Cost); i++ {
		if tl.Cost[i] < tl.Cost[i-1] {
			t.Fatalf("cost decreased at %d: %v -> %v", i, tl.Cost[i-1], tl.Cost[i])
		}
	}
}

func TestCompoundEmptyHistory(t *testing.T) {
	anchor := date.MustParse("2025-01-01")
	tl := Compound(new(date.History[float64]), anchor, 1000, 100, date.Monthly)

	if len(tl.Value) != 1 || len(tl.Cost) != 1 || len(tl.Days) != 1 {
		t.Fatalf("timeline lengths = %d/%d/%d want 1/1/1", len(tl.Days), len(tl.Value), len(tl.Cost))
	}
	if tl.Value[0] != 1000 || tl.Cost[0] != 1000 {
		t.Errorf("point = (%v, %v) want (1000, 1000)", tl.Value[0], tl.Cost[0])
	}
	if tl.Days[0] != anchor {
		t.Errorf("day = %v want %v", tl.Days[0], anchor)
	}
}
