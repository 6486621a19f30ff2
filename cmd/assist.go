package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/yaopinliu/backtest"
	"github.com/yaopinliu/backtest/agent"
	"github.com/yaopinliu/backtest/renderer"
	"github.com/yaopinliu/backtest/yahoo"
)

// assistCmd runs a backtest then hands the report to the AI analyst for an
// interactive discussion.
type assistCmd struct {
	config configFlags
	ask    string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "discuss a backtest report with the AI analyst" }
func (*assistCmd) Usage() string {
	return `bt assist -start <date> [flags] SYMBOL=WEIGHT...

  Runs the same backtest as 'bt run', then opens a chat with an AI analyst
  primed with the report. Requires the GEMINI_API_KEY environment variable.

Usage example:
$ bt assist -start 2018-12-1 0050.TW=60 VT=40
analyst> how does the realized return compare to the projection median?
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.config.SetFlags(f)
	f.StringVar(&c.ask, "ask", "", "Ask a single question and exit instead of opening the chat")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.config.config(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	result, err := backtest.Run(cfg, yahoo.New().Daily)
	if err != nil {
		return reportRunError(err)
	}
	report := renderer.ReportMarkdown(result)
	printMarkdown(report)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot reach the analyst: %v\n", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(report)
	if c.ask != "" {
		if err := analyst.Start(ctx, client); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		answer, err := analyst.Ask(ctx, c.ask)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(answer)
		return subcommands.ExitSuccess
	}

	if err := agent.Run(ctx, client, analyst, os.Stdout, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
