package backtest

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/yaopinliu/backtest/date"
)

// DefaultTolerance is the allowed deviation of the weight sum from 1.
// It is deliberately loose so that hand-typed percentages like 33/33/33
// pass validation.
const DefaultTolerance = 0.05

// Fetcher retrieves daily price histories for a set of symbols from a start
// day. The map is keyed by symbol; series may have gaps and unaligned
// calendars, Align takes care of that. Implementations report missing
// symbols with a DataUnavailableError.
type Fetcher func(symbols []string, from date.Date) (map[string]date.History[float64], error)

// Config describes one backtest run.
type Config struct {
	Assets       []Asset
	Start        date.Date
	InitialCash  float64     // lump sum invested at the start, in home currency
	Contribution float64     // recurring contribution, in home currency
	Period       date.Period // contribution boundary (Monthly in the original use case)
	Tolerance    float64     // allowed weight-sum deviation; 0 means DefaultTolerance
	Convention   Convention  // symbol-suffix to FX mapping; zero value means DefaultConvention

	// Projection settings. Paths=0 disables the simulation.
	Paths   int
	Horizon int
	Seed    uint64 // 0 seeds from the global source
}

// Validate checks the configuration before any data is fetched.
func (cfg *Config) Validate() error {
	if len(cfg.Assets) == 0 {
		return &ConfigurationError{Reason: "no asset symbols supplied"}
	}
	var sum float64
	for _, a := range cfg.Assets {
		if a.Symbol == "" {
			return &ConfigurationError{Reason: "blank asset symbol"}
		}
		if a.Weight < 0 || a.Weight > 1 {
			return &ConfigurationError{Reason: fmt.Sprintf("weight of %s is %.2f, want a fraction in [0,1]", a.Symbol, a.Weight)}
		}
		sum += a.Weight
	}
	tolerance := cfg.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if math.Abs(sum-1) > tolerance {
		return &ConfigurationError{Reason: fmt.Sprintf("weights sum to %.1f%%, want about 100%%", sum*100)}
	}
	if cfg.InitialCash < 0 {
		return &ConfigurationError{Reason: "initial cash must not be negative"}
	}
	if cfg.Contribution < 0 {
		return &ConfigurationError{Reason: "contribution must not be negative"}
	}
	return nil
}

// Result is the outcome of a backtest run, ready for display.
type Result struct {
	Currency    string
	Timeline    Timeline
	FinalValue  float64
	FinalCost   float64
	TotalReturn Percent

	// Daily return statistics behind the projection.
	Mean, Std float64
	// Simulation holds the forward value paths, nil when disabled.
	Simulation [][]float64
}

// FinalValueMoney returns the final asset value as displayable Money.
func (r *Result) FinalValueMoney() Money { return M(r.FinalValue, r.Currency) }

// FinalCostMoney returns the cumulative invested amount as displayable Money.
func (r *Result) FinalCostMoney() Money { return M(r.FinalCost, r.Currency) }

// Run executes the whole valuation pipeline: validate, fetch, align, convert
// to home currency, compose weighted returns, compound with contributions,
// and optionally project forward paths.
//
// Failures from any stage propagate unmodified; Run never retries, the fetch
// is expected to have its own caching and the caller decides presentation.
func Run(cfg Config, fetch Fetcher) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	conv := cfg.Convention
	if conv.HomeCurrency == "" {
		conv = DefaultConvention()
	}

	symbols := conv.RequiredSymbols(cfg.Assets)
	raw, err := fetch(symbols, cfg.Start)
	if err != nil {
		return nil, err
	}

	table, err := Align(raw, symbols)
	if err != nil {
		return nil, err
	}
	home, err := ConvertHome(table, cfg.Assets, conv)
	if err != nil {
		return nil, err
	}
	series, err := Composite(Returns(home), cfg.Assets)
	if err != nil {
		return nil, err
	}

	anchor := cfg.Start
	if home.Len() > 0 {
		anchor = home.Days()[0]
	}
	timeline := Compound(series, anchor, cfg.InitialCash, cfg.Contribution, cfg.Period)

	value, cost := timeline.Final()
	result := &Result{
		Currency:   conv.HomeCurrency,
		Timeline:   timeline,
		FinalValue: value,
		FinalCost:  cost,
	}
	if cost != 0 {
		result.TotalReturn = Percent((value/cost - 1) * 100)
	}

	result.Mean, result.Std = Stats(series)
	if cfg.Paths > 0 {
		horizon := cfg.Horizon
		if horizon <= 0 {
			horizon = DefaultHorizon
		}
		var src rand.Source
		if cfg.Seed != 0 {
			src = rand.NewSource(cfg.Seed)
		}
		result.Simulation = Project(result.Mean, result.Std, value, cfg.Paths, horizon, src)
	}
	return result, nil
}
