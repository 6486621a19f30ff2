package yahoo

import (
	"testing"

	"github.com/yaopinliu/backtest/date"
)

// a trimmed chart payload: three bars, the middle close is null (holiday).
const chartFixture = `{
  "chart": {
    "result": [
      {
        "meta": {"currency": "TWD", "symbol": "0050.TW", "regularMarketPrice": 151.5},
        "timestamp": [1735776000, 1735862400, 1735948800],
        "indicators": {
          "quote": [{"close": [150.0, null, 152.0]}],
          "adjclose": [{"adjclose": [149.0, null, 151.0]}]
        }
      }
    ],
    "error": null
  }
}`

const fxFixture = `{
  "chart": {
    "result": [
      {
        "meta": {"currency": "TWD", "symbol": "TWD=X"},
        "timestamp": [1735776000],
        "indicators": {
          "quote": [{"close": [32.5]}]
        }
      }
    ],
    "error": null
  }
}`

func TestParseChart(t *testing.T) {
	h, err := parseChart([]byte(chartFixture))
	if err != nil {
		t.Fatalf("parseChart() error: %v", err)
	}
	// the null bar is skipped, not recorded as zero
	if h.Len() != 2 {
		t.Fatalf("Len() = %d want 2", h.Len())
	}
	// adjusted closes are preferred over raw closes
	if v, ok := h.Get(date.New(2025, 1, 2)); !ok || v != 149.0 {
		t.Errorf("first bar = %v, %v want 149, true", v, ok)
	}
	if v, ok := h.Get(date.New(2025, 1, 4)); !ok || v != 151.0 {
		t.Errorf("last bar = %v, %v want 151, true", v, ok)
	}
}

func TestParseChartFallsBackToClose(t *testing.T) {
	h, err := parseChart([]byte(fxFixture))
	if err != nil {
		t.Fatalf("parseChart() error: %v", err)
	}
	if v, ok := h.Get(date.New(2025, 1, 2)); !ok || v != 32.5 {
		t.Errorf("bar = %v, %v want 32.5, true", v, ok)
	}
}

func TestParseChartErrors(t *testing.T) {
	if _, err := parseChart([]byte(`{"chart":{"result":[],"error":{"code":"Not Found"}}}`)); err == nil {
		t.Errorf("parseChart(no result) want error")
	}
	if _, err := parseChart([]byte(`not json`)); err == nil {
		t.Errorf("parseChart(garbage) want error")
	}
	if _, err := parseChart([]byte(`{"chart":{"result":[{"timestamp":[],"indicators":{}}]}}`)); err == nil {
		t.Errorf("parseChart(no bars) want error")
	}
}

func TestJSONFloat(t *testing.T) {
	var jobj any = map[string]any{
		"chart": map[string]any{
			"result": []any{
				map[string]any{"meta": map[string]any{"regularMarketPrice": 151.5}},
			},
		},
	}
	v, err := jsonFloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		t.Fatalf("jsonFloat() error: %v", err)
	}
	if v != 151.5 {
		t.Errorf("jsonFloat() = %v want 151.5", v)
	}

	if _, err := jsonFloat(jobj, "$.chart.result[0].meta.nope"); err == nil {
		t.Errorf("jsonFloat(missing path) want error")
	}
}
