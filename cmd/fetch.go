package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/yaopinliu/backtest/date"
	"github.com/yaopinliu/backtest/yahoo"
)

// fetchCmd downloads daily price histories, warming the local cache and
// printing a short summary per symbol.
type fetchCmd struct {
	start string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download daily price histories and warm the cache" }
func (*fetchCmd) Usage() string {
	return `bt fetch -start <date> SYMBOL...

  Downloads the daily close history of each symbol from the start date to
  today and prints the range retrieved. Responses are cached for the day, so
  a later 'bt run' on the same symbols costs no extra requests.

Usage example:
$ bt fetch -start 2018-12-1 0050.TW VT TWD=X
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "First day to fetch (e.g. 2018-12-1)")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -start: %v\n", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no symbols given")
		return subcommands.ExitUsageError
	}

	symbols := make([]string, 0, f.NArg())
	for _, arg := range f.Args() {
		symbols = append(symbols, strings.ToUpper(strings.TrimSpace(arg)))
	}

	histories, err := yahoo.New().Daily(symbols, from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, symbol := range symbols {
		h := histories[symbol]
		first, _ := h.First()
		last, _ := h.Latest()
		fmt.Printf("%-12s %4d days  %s to %s\n", symbol, h.Len(), first, last)
	}
	return subcommands.ExitSuccess
}
