package backtest

import (
	"errors"
	"math"
	"testing"

	"github.com/yaopinliu/backtest/date"
)

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		wantErr bool
	}{
		{"exact", []float64{0.6, 0.4}, false},
		{"within tolerance", []float64{0.33, 0.33, 0.33}, false},
		{"too low", []float64{0.5, 0.3}, true},
		{"too high", []float64{0.8, 0.7}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{InitialCash: 1000}
			for i, w := range tc.weights {
				cfg.Assets = append(cfg.Assets, Asset{Symbol: string(rune('A'+i)), Weight: w})
			}
			err := cfg.Validate()
			if tc.wantErr {
				var confErr *ConfigurationError
				if !errors.As(err, &confErr) {
					t.Errorf("Validate() = %v want ConfigurationError", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v want nil", err)
			}
		})
	}
}

func TestValidateRejectsEmptyAndNegative(t *testing.T) {
	if err := (&Config{}).Validate(); err == nil {
		t.Errorf("Validate() with no assets: want error")
	}

	cfg := Config{Assets: []Asset{{Symbol: "A", Weight: 1}}, InitialCash: -1}
	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate() with negative cash: want error")
	}
}

// stubFetcher is a Fetcher serving a fixed dataset and recording what it was
// asked for.
type stubFetcher struct {
	data    map[string]date.History[float64]
	symbols []string
	called  bool
}

func (s *stubFetcher) fetch(symbols []string, from date.Date) (map[string]date.History[float64], error) {
	s.called = true
	s.symbols = symbols
	return s.data, nil
}

func TestRunEndToEnd(t *testing.T) {
	// Two assets: one home, one foreign, plus the default FX pair.
	data := map[string]date.History[float64]{
		"0050.TW": series(map[string]float64{"2025-01-02": 100, "2025-01-03": 110, "2025-01-06": 110}),
		"VT":      series(map[string]float64{"2025-01-02": 10, "2025-01-03": 10, "2025-01-06": 11}),
		"TWD=X":   series(map[string]float64{"2025-01-02": 30, "2025-01-03": 30, "2025-01-06": 30}),
	}
	fetcher := &stubFetcher{data: data}

	cfg := Config{
		Assets:      []Asset{{Symbol: "0050.TW", Weight: 0.5}, {Symbol: "VT", Weight: 0.5}},
		Start:       date.MustParse("2025-01-01"),
		InitialCash: 1000,
		Period:      date.Monthly,
	}
	result, err := Run(cfg, fetcher.fetch)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if !fetcher.called {
		t.Fatalf("fetcher was never called")
	}
	// the FX pair was resolved and requested alongside the assets
	want := []string{"0050.TW", "VT", "TWD=X"}
	if len(fetcher.symbols) != len(want) {
		t.Fatalf("fetched symbols = %v want %v", fetcher.symbols, want)
	}
	for i := range want {
		if fetcher.symbols[i] != want[i] {
			t.Fatalf("fetched symbols = %v want %v", fetcher.symbols, want)
		}
	}

	// day 1: 0050 +10%, VT flat -> +5%; day 2: 0050 flat, VT +10% -> +5%
	// 1000 * 1.05 * 1.05 = 1102.5
	if math.Abs(result.FinalValue-1102.5) > 1e-9 {
		t.Errorf("FinalValue = %v want 1102.5", result.FinalValue)
	}
	if result.FinalCost != 1000 {
		t.Errorf("FinalCost = %v want 1000", result.FinalCost)
	}
	if !result.TotalReturn.Equal(Percent(10.25)) {
		t.Errorf("TotalReturn = %v want 10.25%%", result.TotalReturn)
	}
	if result.Currency != "TWD" {
		t.Errorf("Currency = %q want TWD", result.Currency)
	}
	if len(result.Timeline.Value) != 3 {
		t.Errorf("timeline length = %d want 3", len(result.Timeline.Value))
	}
	if result.Simulation != nil {
		t.Errorf("Simulation = %v want nil when Paths is 0", len(result.Simulation))
	}
}

func TestRunRejectsBadWeightsBeforeFetching(t *testing.T) {
	fetcher := &stubFetcher{}
	cfg := Config{
		Assets:      []Asset{{Symbol: "0050.TW", Weight: 0.2}},
		InitialCash: 1000,
	}
	_, err := Run(cfg, fetcher.fetch)
	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("Run() error = %v want ConfigurationError", err)
	}
	if fetcher.called {
		t.Errorf("fetcher was called despite invalid configuration")
	}
}

func TestRunWithSimulation(t *testing.T) {
	data := map[string]date.History[float64]{
		"0050.TW": series(map[string]float64{"2025-01-02": 100, "2025-01-03": 101, "2025-01-06": 103}),
	}
	fetcher := &stubFetcher{data: data}

	cfg := Config{
		Assets:      []Asset{{Symbol: "0050.TW", Weight: 1}},
		Start:       date.MustParse("2025-01-01"),
		InitialCash: 1000,
		Period:      date.Monthly,
		Paths:       3,
		Horizon:     10,
		Seed:        42,
	}
	result, err := Run(cfg, fetcher.fetch)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(result.Simulation) != 3 {
		t.Fatalf("paths = %d want 3", len(result.Simulation))
	}
	for _, path := range result.Simulation {
		if len(path) != 11 {
			t.Fatalf("path length = %d want 11", len(path))
		}
		if path[0] != result.FinalValue {
			t.Errorf("path seed = %v want final value %v", path[0], result.FinalValue)
		}
	}

	// same seed, same paths
	again, err := Run(cfg, fetcher.fetch)
	if err != nil {
		t.Fatalf("Run() again error: %v", err)
	}
	for p := range result.Simulation {
		for i := range result.Simulation[p] {
			if result.Simulation[p][i] != again.Simulation[p][i] {
				t.Fatalf("seeded runs diverge at [%d][%d]", p, i)
			}
		}
	}
}

func TestRunEmptyHistory(t *testing.T) {
	// a single trading day yields zero return rows: valid trivial result
	data := map[string]date.History[float64]{
		"0050.TW": series(map[string]float64{"2025-01-02": 100}),
	}
	fetcher := &stubFetcher{data: data}

	cfg := Config{
		Assets:      []Asset{{Symbol: "0050.TW", Weight: 1}},
		Start:       date.MustParse("2025-01-01"),
		InitialCash: 1000,
		Period:      date.Monthly,
	}
	result, err := Run(cfg, fetcher.fetch)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.FinalValue != 1000 || result.FinalCost != 1000 {
		t.Errorf("final = (%v, %v) want (1000, 1000)", result.FinalValue, result.FinalCost)
	}
	if len(result.Timeline.Value) != 1 {
		t.Errorf("timeline length = %d want 1", len(result.Timeline.Value))
	}
}
