package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"golang.org/x/exp/rand"

	"github.com/yaopinliu/backtest"
	"github.com/yaopinliu/backtest/renderer"
)

// simulateCmd projects forward paths from a user-supplied return model,
// without running a backtest first.
type simulateCmd struct {
	mean    float64
	std     float64
	value   float64
	paths   int
	horizon int
	seed    uint64
	fanFile string
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "project forward paths from a daily return model" }
func (*simulateCmd) Usage() string {
	return `bt simulate -mean <daily> -std <daily> [-value n] [flags]

  Draws Monte Carlo value paths from a normal daily return model and prints
  the distribution of outcomes. 'bt run' fits the model on realized returns;
  this command accepts the model directly.

Usage example:
$ bt simulate -mean 0.0004 -std 0.01 -value 100000 -seed 42
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.mean, "mean", 0, "Mean daily return, e.g. 0.0004")
	f.Float64Var(&c.std, "std", 0, "Daily return standard deviation, e.g. 0.01")
	f.Float64Var(&c.value, "value", 100000, "Starting value, in home currency")
	f.IntVar(&c.paths, "paths", backtest.DefaultPaths, "Number of paths to draw")
	f.IntVar(&c.horizon, "horizon", backtest.DefaultHorizon, "Horizon in trading days")
	f.Uint64Var(&c.seed, "seed", 0, "Random seed for reproducible paths, 0 for fresh ones")
	f.StringVar(&c.fanFile, "fan", "", "Write the fan chart PNG to this file")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.paths <= 0 || c.horizon <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -paths and -horizon must be positive")
		return subcommands.ExitUsageError
	}
	if c.std < 0 {
		fmt.Fprintln(os.Stderr, "Error: -std cannot be negative")
		return subcommands.ExitUsageError
	}

	var src rand.Source
	if c.seed != 0 {
		src = rand.NewSource(c.seed)
	}

	result := &backtest.Result{
		Currency:   *homeCurrency,
		Mean:       c.mean,
		Std:        c.std,
		Simulation: backtest.Project(c.mean, c.std, c.value, c.paths, c.horizon, src),
	}
	printMarkdown(renderer.ProjectionMarkdown(result))

	if c.fanFile != "" {
		if err := writeChart(c.fanFile, result, renderer.FanChart); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
