package backtest

// ConvertHome rebases every asset column of an aligned price table into the
// home currency, and drops the FX columns. Home-market assets trade at par
// and are copied verbatim; foreign assets are multiplied element-wise,
// date by date, by the FX column their suffix resolves to.
//
// A missing FX column means Align did not honor its contract: it is reported
// as a MissingFXSeriesError, never silently defaulted.
func ConvertHome(t *Table, assets []Asset, conv Convention) (*Table, error) {
	out := NewTable(t.Days())
	for _, a := range assets {
		col, ok := t.Column(a.Symbol)
		if !ok {
			return nil, &DataUnavailableError{Symbol: a.Symbol}
		}

		pair, foreign := conv.FXPair(a.Symbol)
		if !foreign {
			out.SetColumn(a.Symbol, col)
			continue
		}

		fx, ok := t.Column(pair)
		if !ok {
			return nil, &MissingFXSeriesError{Pair: pair}
		}
		converted := make([]float64, len(col))
		for i, v := range col {
			converted[i] = v * fx[i]
		}
		out.SetColumn(a.Symbol, converted)
	}
	return out, nil
}
