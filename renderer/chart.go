package renderer

import (
	"errors"
	"fmt"

	"github.com/vicanso/go-charts/v2"

	"github.com/yaopinliu/backtest"
)

// TimelineChart renders the valuation timeline as a PNG: the asset value and
// the cumulative invested amount as two lines over the trading days.
func TimelineChart(r *backtest.Result) ([]byte, error) {
	tl := r.Timeline
	if len(tl.Days) < 2 {
		return nil, errors.New("not enough history to chart")
	}

	labels := make([]string, len(tl.Days))
	for i, on := range tl.Days {
		labels[i] = on.String()
	}

	painter, err := charts.LineRender(
		[][]float64{tl.Value, tl.Cost},
		charts.TitleTextOptionFunc(fmt.Sprintf("Portfolio value (%s)", r.Currency)),
		charts.LegendLabelsOptionFunc([]string{"Value", "Invested"}),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: 8,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// FanChart renders the Monte Carlo projection as a PNG: every simulated
// path as its own line starting from the final realized value.
func FanChart(r *backtest.Result) ([]byte, error) {
	if r.Simulation == nil {
		return nil, errors.New("result has no simulation")
	}

	horizon := len(r.Simulation[0])
	labels := make([]string, horizon)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i)
	}

	painter, err := charts.LineRender(
		r.Simulation,
		charts.TitleTextOptionFunc(fmt.Sprintf("Projection, %d paths (%s)", len(r.Simulation), r.Currency)),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: 10,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
