// Package backtest computes the historical value of a multi-asset,
// multi-currency portfolio built from a lump-sum plus recurring
// contributions, and projects its near-term risk by simulation.
//
// The core of the package is a small pipeline of pure components:
//
//   - Align: normalizes raw per-symbol daily price series (gaps, staggered
//     start dates, auxiliary FX series) into a single gap-free price table
//     over a common date index.
//   - ConvertHome: rebases every asset column into the investor's home
//     currency using the FX columns selected by the symbol convention.
//   - Returns and Composite: derive per-asset daily simple returns and
//     combine them into one weighted portfolio return series.
//   - Compound: walks the return series day by day, posting the periodic
//     contribution on each period boundary and compounding the value.
//   - Project: samples the empirical return distribution to generate
//     independent forward value paths.
//
// Components are pure functions of their inputs: no I/O, no retained state,
// and no locking. The network data source is an external collaborator behind
// the Fetcher type; see the yahoo subpackage for the default implementation.
// Run wires the whole pipeline and produces a Result for display.
package backtest
