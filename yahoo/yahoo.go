// Package yahoo fetches daily adjusted close prices and FX rates from the
// Yahoo Finance chart API. It is the default data source behind
// backtest.Fetcher.
//
// Responses are cached on disk with a key that rolls over daily, so repeated
// identical requests within the same day never hit the network twice.
package yahoo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/yaopinliu/backtest"
	"github.com/yaopinliu/backtest/date"
)

const chartBase = "https://query1.finance.yahoo.com/v8/finance/chart/"

// Client queries the Yahoo Finance chart API.
type Client struct {
	http *http.Client
}

// New returns a Client with daily-expiring disk caching.
func New() *Client {
	return &Client{http: newDailyCachingClient()}
}

// Daily fetches the daily adjusted-close history of every symbol from the
// given day up to today. The returned map is keyed by symbol. A symbol with
// no usable data is reported as a DataUnavailableError.
func (c *Client) Daily(symbols []string, from date.Date) (map[string]date.History[float64], error) {
	result := make(map[string]date.History[float64], len(symbols))
	for _, symbol := range symbols {
		h, err := c.daily(symbol, from, date.Today())
		if err != nil {
			return nil, err
		}
		result[symbol] = h
	}
	return result, nil
}

// daily fetches one symbol's daily adjusted closes over a range.
func (c *Client) daily(symbol string, from, to date.Date) (date.History[float64], error) {
	// https://query1.finance.yahoo.com/v8/finance/chart/0050.TW?period1=...&period2=...&interval=1d
	// {
	//   "chart": { "result": [ {
	//     "timestamp": [1735785000, ...],
	//     "indicators": {
	//       "quote":    [ { "close": [...] } ],
	//       "adjclose": [ { "adjclose": [...] } ] } } ] } }
	addr := fmt.Sprintf("%s%s?period1=%d&period2=%d&interval=1d&events=div%%2Csplit",
		chartBase, url.PathEscape(symbol), from.Unix(), to.Add(1).Unix())

	body, err := c.get(addr)
	if err != nil {
		return date.History[float64]{}, &backtest.DataUnavailableError{Symbol: symbol, Cause: err}
	}
	h, err := parseChart(body)
	if err != nil {
		return date.History[float64]{}, &backtest.DataUnavailableError{Symbol: symbol, Cause: err}
	}
	return h, nil
}

// chartResponse is the part of the chart payload this package consumes.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Adjclose []struct {
					Adjclose []float64 `json:"adjclose"`
				} `json:"adjclose"`
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// parseChart extracts a daily history from a chart API payload. It prefers
// the split- and dividend-adjusted closes and falls back to raw closes (FX
// series have no adjclose on some symbols).
func parseChart(body []byte) (date.History[float64], error) {
	var payload chartResponse
	var h date.History[float64]
	if err := json.Unmarshal(body, &payload); err != nil {
		return h, err
	}
	if len(payload.Chart.Result) == 0 {
		return h, fmt.Errorf("chart response has no result (%v)", payload.Chart.Error)
	}
	result := payload.Chart.Result[0]

	var closes []float64
	if len(result.Indicators.Adjclose) > 0 {
		closes = result.Indicators.Adjclose[0].Adjclose
	} else if len(result.Indicators.Quote) > 0 {
		closes = result.Indicators.Quote[0].Close
	}
	if len(result.Timestamp) == 0 || len(closes) == 0 {
		return h, fmt.Errorf("chart response has no daily bars")
	}

	for i, ts := range result.Timestamp {
		if i >= len(closes) {
			break
		}
		// holidays come back as nulls, decoded as zeros: skip them, the
		// aligner forward-fills gaps
		if !(closes[i] > 0) {
			continue
		}
		h.Append(date.FromUnix(ts), closes[i])
	}
	if h.Len() == 0 {
		return h, fmt.Errorf("chart response has no usable closes")
	}
	return h, nil
}

// get performs an HTTP GET and returns the response body.
func (c *Client) get(addr string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	// Yahoo rejects the default Go user agent.
	req.Header.Set("User-Agent", "curl/8")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
