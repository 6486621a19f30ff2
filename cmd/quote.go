package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/yaopinliu/backtest/yahoo"
)

// quoteCmd prints the latest market price of each symbol, in its quotation
// currency.
type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "display the latest price of each symbol" }
func (*quoteCmd) Usage() string {
	return `bt quote SYMBOL...

  Displays the latest market price of each symbol in its own quotation
  currency, FX rates included.

Usage example:
$ bt quote 0050.TW VT TWD=X
`
}

func (*quoteCmd) SetFlags(f *flag.FlagSet) {}

func (*quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no symbols given")
		return subcommands.ExitUsageError
	}

	client := yahoo.New()
	status := subcommands.ExitSuccess
	for _, arg := range f.Args() {
		symbol := strings.ToUpper(strings.TrimSpace(arg))
		price, currency, err := client.Latest(symbol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-12s error: %v\n", symbol, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%-12s %12.4f %s\n", symbol, price, currency)
	}
	return status
}
