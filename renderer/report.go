// Package renderer turns backtest results into markdown reports and PNG
// charts for display.
package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"

	"github.com/yaopinliu/backtest"
	"github.com/yaopinliu/backtest/date"
)

// ReportMarkdown renders the result of a run to a markdown string: headline
// metrics, a period-sampled valuation timeline, and the projection summary
// when a simulation was requested.
func ReportMarkdown(r *backtest.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	tl := r.Timeline
	rng := tl.Range()
	doc.H1(fmt.Sprintf("Backtest %s to %s", rng.From, rng.To))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Current value", r.FinalValueMoney().String()},
			{"Total invested", r.FinalCostMoney().String()},
			{"Total return", r.TotalReturn.SignedString()},
		},
	})

	doc.H2("Timeline")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Value", "Invested"},
		Rows:      [][]string{},
	}
	for _, i := range sampleMonthly(tl.Days) {
		table.Rows = append(table.Rows, []string{
			tl.Days[i].String(),
			backtest.M(tl.Value[i], r.Currency).String(),
			backtest.M(tl.Cost[i], r.Currency).String(),
		})
	}
	doc.Table(table)

	if r.Simulation != nil {
		projection(doc, r)
	}

	return doc.String()
}

// ProjectionMarkdown renders only the projection summary, for simulations
// run without a backtest behind them. r.Simulation must not be nil.
func ProjectionMarkdown(r *backtest.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	projection(doc, r)
	return doc.String()
}

func projection(doc *md.Markdown, r *backtest.Result) {
	doc.H2(fmt.Sprintf("Projection (%d paths, %d trading days)", len(r.Simulation), len(r.Simulation[0])-1))
	doc.PlainText(fmt.Sprintf("Daily return model: mean %+.4f%%, deviation %.4f%%.",
		r.Mean*100, r.Std*100))

	low, q1, mid, q3, high := pathQuantiles(r.Simulation)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Outcome", "Final value"},
		Rows: [][]string{
			{"Worst path", backtest.M(low, r.Currency).String()},
			{"Lower quartile", backtest.M(q1, r.Currency).String()},
			{"Median path", backtest.M(mid, r.Currency).String()},
			{"Upper quartile", backtest.M(q3, r.Currency).String()},
			{"Best path", backtest.M(high, r.Currency).String()},
		},
	})
}

// sampleMonthly returns the indexes to show in the timeline table: the first
// trading day of every month plus the final day.
func sampleMonthly(days []date.Date) []int {
	var idx []int
	var lastKey date.Date
	for i, on := range days {
		if key := on.StartOf(date.Monthly); key != lastKey {
			idx = append(idx, i)
			lastKey = key
		}
	}
	if last := len(days) - 1; len(idx) == 0 || idx[len(idx)-1] != last {
		idx = append(idx, last)
	}
	return idx
}

// pathQuantiles summarizes the distribution of simulated final values.
func pathQuantiles(bundle [][]float64) (low, q1, mid, q3, high float64) {
	finals := make([]float64, len(bundle))
	for i, path := range bundle {
		finals[i] = path[len(path)-1]
	}
	sort.Float64s(finals)

	n := len(finals)
	at := func(q float64) float64 { return finals[int(q*float64(n-1)+0.5)] }
	return finals[0], at(0.25), at(0.5), at(0.75), finals[n-1]
}
