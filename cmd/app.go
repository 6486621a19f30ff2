// Package cmd implements the CLI application to run portfolio backtests.
package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/yaopinliu/backtest"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "backtest")
	c.Register(&simulateCmd{}, "backtest")
	c.Register(&assistCmd{}, "backtest")

	c.Register(&fetchCmd{}, "market data")
	c.Register(&quoteCmd{}, "market data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application it is very short lived, globals for shared flags are ok.

var homeCurrency = flag.String("currency", "TWD", "Home currency the portfolio is valued in")

// convention returns the symbol convention for the selected home currency.
// Markets quoting directly in the home currency are only known for the
// default TWD case; for any other currency every symbol is converted.
func convention() backtest.Convention {
	if *homeCurrency == "TWD" {
		return backtest.DefaultConvention()
	}
	return backtest.Convention{
		HomeCurrency: *homeCurrency,
		Pairs:        map[string]string{".L": "GBP" + *homeCurrency + "=X"},
		DefaultPair:  *homeCurrency + "=X",
	}
}

// parseAssets parses command arguments of the form SYMBOL=WEIGHT, weight in
// percent, e.g. "0050.TW=60". Blank entries are skipped.
func parseAssets(args []string) ([]backtest.Asset, error) {
	assets := make([]backtest.Asset, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		symbol, weight, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("invalid asset %q, want SYMBOL=WEIGHT (weight in percent)", arg)
		}
		w, err := strconv.ParseFloat(weight, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight in %q: %w", arg, err)
		}
		assets = append(assets, backtest.Asset{
			Symbol: strings.ToUpper(strings.TrimSpace(symbol)),
			Weight: w / 100,
		})
	}
	return assets, nil
}
