package yahoo

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// Latest returns the most recent traded price of a symbol, together with its
// quote currency.
//
// It reads the chart metadata rather than the historical bars, so it works
// during the trading session. The payload nests the quote deep inside the
// chart envelope, jsonpath keeps the extraction readable:
//
//	{ "chart": { "result": [ { "meta": {
//	      "currency": "TWD", "regularMarketPrice": 147.25, ... } } ] } }
func (c *Client) Latest(symbol string) (price float64, currency string, err error) {
	addr := fmt.Sprintf("%s%s?range=1d&interval=1d", chartBase, url.PathEscape(symbol))
	body, err := c.get(addr)
	if err != nil {
		return math.NaN(), "", fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return math.NaN(), "", fmt.Errorf("error parsing %q: %w", symbol, err)
	}

	price, err = jsonFloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return math.NaN(), "", fmt.Errorf("no last price for %q: %w", symbol, err)
	}
	// currency is informative only, a missing one is not an error
	if jval, err := jsonpath.Get("$.chart.result[0].meta.currency", jobj); err == nil {
		currency, _ = jval.(string)
	}
	return price, currency, nil
}

// jsonFloat extracts a float64 at a jsonpath from a decoded JSON value.
func jsonFloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error at %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer
	// or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("value at %q is not a number: %v", path, jval)
	}
	return val, nil
}
