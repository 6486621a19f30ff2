package backtest

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/yaopinliu/backtest/date"
)

// Reference projection settings: 15 paths over one trading year.
const (
	DefaultPaths   = 15
	DefaultHorizon = 252
)

// Stats returns the empirical mean and standard deviation of a daily return
// series. A series too short to estimate dispersion yields a zero deviation.
func Stats(returns *date.History[float64]) (mean, std float64) {
	values := make([]float64, 0, returns.Len())
	for _, r := range returns.Values() {
		values = append(values, r)
	}
	if len(values) == 0 {
		return 0, 0
	}
	mean, std = stat.MeanStdDev(values, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return mean, std
}

// Project draws independent forward value paths from a normal daily return
// model fitted on (mean, std). Each path starts at the seed value and has
// horizon+1 points; step t+1 is step t times one plus a fresh sample.
//
// Paths share no state and no correlation is modeled between them, nor
// between the assets behind the combined return series: the projection
// operates on the portfolio level only.
//
// src seeds the randomness; pass nil to use the global source. Two calls
// with the same parameters and equally-seeded sources yield identical paths.
func Project(mean, std, seed float64, paths, horizon int, src rand.Source) [][]float64 {
	normal := distuv.Normal{Mu: mean, Sigma: std, Src: src}
	bundle := make([][]float64, paths)
	for p := range bundle {
		path := make([]float64, horizon+1)
		path[0] = seed
		for t := 1; t <= horizon; t++ {
			path[t] = path[t-1] * (1 + normal.Rand())
		}
		bundle[p] = path
	}
	return bundle
}
