package backtest

import "fmt"

// ConfigurationError reports invalid user-supplied settings, detected before
// any price data is fetched.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return "invalid configuration: " + e.Reason }

// DataUnavailableError reports that a required price or FX series is missing
// entirely from the data source. Usually a mistyped symbol or a symbol with
// no trading history in the requested range.
type DataUnavailableError struct {
	Symbol string
	Cause  error
}

func (e *DataUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("no data available for %q: %v", e.Symbol, e.Cause)
	}
	return fmt.Sprintf("no data available for %q", e.Symbol)
}

func (e *DataUnavailableError) Unwrap() error { return e.Cause }

// MissingFXSeriesError reports that a price table reached the currency
// conversion step without the FX column it needs. This is an internal
// contract violation between Align and ConvertHome, not a user error.
type MissingFXSeriesError struct {
	Pair string
}

func (e *MissingFXSeriesError) Error() string {
	return fmt.Sprintf("internal: FX series %q missing from aligned table", e.Pair)
}

// WeightAlignmentError reports a price column with no matching asset
// definition when combining returns. Like MissingFXSeriesError it indicates
// a defect in the wiring between components.
type WeightAlignmentError struct {
	Symbol string
}

func (e *WeightAlignmentError) Error() string {
	return fmt.Sprintf("internal: no weight defined for column %q", e.Symbol)
}
