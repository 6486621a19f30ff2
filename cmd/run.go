package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/yaopinliu/backtest"
	"github.com/yaopinliu/backtest/date"
	"github.com/yaopinliu/backtest/renderer"
	"github.com/yaopinliu/backtest/yahoo"
)

// configFlags holds the backtest flags shared by the run and assist
// commands.
type configFlags struct {
	start     string
	cash      float64
	monthly   float64
	period    string
	tolerance float64
	paths     int
	horizon   int
	seed      uint64
}

func (c *configFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "First day of the backtest (e.g. 2018-12-1)")
	f.Float64Var(&c.cash, "cash", 3000, "Lump sum invested at the start, in home currency")
	f.Float64Var(&c.monthly, "monthly", 3000, "Recurring contribution, in home currency")
	f.StringVar(&c.period, "period", "monthly", "Contribution period (daily, weekly, monthly, quarterly, yearly)")
	f.Float64Var(&c.tolerance, "tolerance", backtest.DefaultTolerance, "Allowed deviation of the weight sum from 100%")
	f.IntVar(&c.paths, "paths", backtest.DefaultPaths, "Number of Monte Carlo paths, 0 to disable the projection")
	f.IntVar(&c.horizon, "horizon", backtest.DefaultHorizon, "Projection horizon in trading days")
	f.Uint64Var(&c.seed, "seed", 0, "Random seed for a reproducible projection, 0 for a fresh one")
}

// config builds the engine configuration from the flags and the SYMBOL=WEIGHT
// arguments.
func (c *configFlags) config(args []string) (backtest.Config, error) {
	var cfg backtest.Config

	assets, err := parseAssets(args)
	if err != nil {
		return cfg, err
	}
	start, err := date.Parse(c.start)
	if err != nil {
		return cfg, fmt.Errorf("invalid -start: %w", err)
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return cfg, fmt.Errorf("invalid -period: %w", err)
	}

	return backtest.Config{
		Assets:       assets,
		Start:        start,
		InitialCash:  c.cash,
		Contribution: c.monthly,
		Period:       period,
		Tolerance:    c.tolerance,
		Convention:   convention(),
		Paths:        c.paths,
		Horizon:      c.horizon,
		Seed:         c.seed,
	}, nil
}

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	config    configFlags
	chartFile string
	fanFile   string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run a backtest and display the valuation report" }
func (*runCmd) Usage() string {
	return `bt run -start <date> [-cash n] [-monthly n] [flags] SYMBOL=WEIGHT...

  Backtests a portfolio of weighted symbols from the start date to today:
  fetches daily prices and FX rates, compounds the contribution-adjusted
  value day by day, and prints the report. Weights are in percent and must
  total about 100.

Usage example:
$ bt run -start 2018-12-1 -cash 3000 -monthly 3000 0050.TW=60 VT=40
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	c.config.SetFlags(f)
	f.StringVar(&c.chartFile, "chart", "", "Write the timeline chart PNG to this file")
	f.StringVar(&c.fanFile, "fan", "", "Write the projection fan chart PNG to this file")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.config.config(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	result, err := backtest.Run(cfg, yahoo.New().Daily)
	if err != nil {
		return reportRunError(err)
	}

	printMarkdown(renderer.ReportMarkdown(result))

	if c.chartFile != "" {
		if err := writeChart(c.chartFile, result, renderer.TimelineChart); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.fanFile != "" {
		if err := writeChart(c.fanFile, result, renderer.FanChart); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func writeChart(filename string, result *backtest.Result, render func(*backtest.Result) ([]byte, error)) error {
	img, err := render(result)
	if err != nil {
		return fmt.Errorf("cannot render %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, img, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", filename, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", filename)
	return nil
}

// reportRunError maps the engine error taxonomy to user-facing messages.
func reportRunError(err error) subcommands.ExitStatus {
	var confErr *backtest.ConfigurationError
	var dataErr *backtest.DataUnavailableError

	switch {
	case errors.As(err, &confErr):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	case errors.As(err, &dataErr):
		fmt.Fprintf(os.Stderr, "Error: %v\nCheck the symbol formatting (see 'bt topic symbols').\n", err)
		return subcommands.ExitFailure
	default:
		// internal consistency faults and anything unexpected: surface loudly
		fmt.Fprintf(os.Stderr, "Error (this is a defect, please report it): %v\n", err)
		return subcommands.ExitFailure
	}
}
