package backtest

import (
	"slices"
	"strings"
)

// Asset is one position in the backtested portfolio. The set of assets and
// their weights are fixed for a whole run, there is no rebalancing.
type Asset struct {
	Symbol string
	Weight float64 // fraction of the portfolio in [0,1]
}

// Convention maps symbol suffixes to the FX series needed to convert their
// prices into the home currency. The market suffix is the part of the symbol
// after the last dot, following the usual data-source convention
// (e.g. "0050.TW", "VWRL.L", "VT" for the default US market).
type Convention struct {
	// HomeCurrency is the ISO code of the reporting currency.
	HomeCurrency string
	// HomeSuffixes lists the suffixes of markets already quoting in the
	// home currency. Those assets trade at par, no FX applies.
	HomeSuffixes []string
	// Pairs maps a market suffix to the FX symbol converting that market's
	// quote currency into the home currency.
	Pairs map[string]string
	// DefaultPair converts any other market's quote currency into the home
	// currency.
	DefaultPair string
}

// DefaultConvention covers the markets of the original use case: a Taiwanese
// investor holding Taiwan, London and US-listed instruments.
func DefaultConvention() Convention {
	return Convention{
		HomeCurrency: "TWD",
		HomeSuffixes: []string{".TW", ".TWO"},
		Pairs:        map[string]string{".L": "GBPTWD=X"},
		DefaultPair:  "TWD=X",
	}
}

// FXPair returns the FX symbol required to convert the given asset symbol
// into the home currency, or ok=false when the asset already trades in it.
func (c Convention) FXPair(symbol string) (pair string, ok bool) {
	for _, s := range c.HomeSuffixes {
		if strings.HasSuffix(symbol, s) {
			return "", false
		}
	}
	for suffix, p := range c.Pairs {
		if strings.HasSuffix(symbol, suffix) {
			return p, true
		}
	}
	return c.DefaultPair, true
}

// RequiredSymbols returns the deduplicated set of symbols to fetch for the
// given assets: the assets themselves plus every FX pair they resolve to.
// Asset symbols come first, in input order.
func (c Convention) RequiredSymbols(assets []Asset) []string {
	symbols := make([]string, 0, len(assets)+2)
	for _, a := range assets {
		if !slices.Contains(symbols, a.Symbol) {
			symbols = append(symbols, a.Symbol)
		}
	}
	for _, a := range assets {
		if pair, ok := c.FXPair(a.Symbol); ok && !slices.Contains(symbols, pair) {
			symbols = append(symbols, pair)
		}
	}
	return symbols
}
