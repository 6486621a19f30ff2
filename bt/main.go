package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/yaopinliu/backtest/cmd"
)

func main() {
	// shell completion, active only when invoked by the completion hooks
	configModel := map[string]complete.Predictor{
		"start":     predict.Something,
		"cash":      predict.Something,
		"monthly":   predict.Something,
		"period":    predict.Set{"daily", "weekly", "monthly", "quarterly", "yearly"},
		"tolerance": predict.Something,
		"paths":     predict.Something,
		"horizon":   predict.Something,
		"seed":      predict.Something,
	}
	runModel := map[string]complete.Predictor{
		"chart": predict.Files("*.png"),
		"fan":   predict.Files("*.png"),
	}
	for k, v := range configModel {
		runModel[k] = v
	}
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{"currency": predict.Something},
		Sub: map[string]*complete.Command{
			"run":      {Flags: runModel},
			"simulate": {Flags: map[string]complete.Predictor{"mean": predict.Something, "std": predict.Something, "value": predict.Something, "seed": predict.Something, "fan": predict.Files("*.png")}},
			"assist":   {Flags: configModel},
			"fetch":    {Flags: map[string]complete.Predictor{"start": predict.Something}},
			"quote":    {},
			"topic":    {Args: predict.Set{"readme", "quickstart", "symbols", "simulation", "*"}},
		},
	}
	completion.Complete("bt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
