package renderer

import (
	"strings"
	"testing"

	"github.com/yaopinliu/backtest"
	"github.com/yaopinliu/backtest/date"
)

func sampleResult() *backtest.Result {
	days := []date.Date{
		date.MustParse("2025-01-02"),
		date.MustParse("2025-01-03"),
		date.MustParse("2025-02-03"),
	}
	return &backtest.Result{
		Currency: "TWD",
		Timeline: backtest.Timeline{
			Days:  days,
			Value: []float64{1000, 1010, 1105},
			Cost:  []float64{1000, 1000, 1100},
		},
		FinalValue:  1105,
		FinalCost:   1100,
		TotalReturn: backtest.Percent(0.45),
	}
}

func TestReportMarkdown(t *testing.T) {
	md := ReportMarkdown(sampleResult())

	for _, want := range []string{
		"# Backtest 2025-01-02 to 2025-02-03",
		"## Timeline",
		"Current value",
		"+0.45%",
		"2025-02-03",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report does not contain %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Projection") {
		t.Errorf("report has a projection section without a simulation:\n%s", md)
	}
}

func TestReportMarkdownWithSimulation(t *testing.T) {
	r := sampleResult()
	r.Simulation = [][]float64{
		{1105, 1200},
		{1105, 900},
		{1105, 1100},
	}

	md := ReportMarkdown(r)
	for _, want := range []string{"Projection", "Worst path", "Median path", "Best path"} {
		if !strings.Contains(md, want) {
			t.Errorf("report does not contain %q:\n%s", want, md)
		}
	}
}

func TestProjectionMarkdown(t *testing.T) {
	r := sampleResult()
	r.Simulation = [][]float64{{1105, 1200}, {1105, 900}}

	md := ProjectionMarkdown(r)
	if !strings.Contains(md, "Projection (2 paths, 1 trading days)") {
		t.Errorf("unexpected projection heading:\n%s", md)
	}
	if strings.Contains(md, "# Backtest") {
		t.Errorf("standalone projection should not carry the report heading:\n%s", md)
	}
}

func TestSampleMonthly(t *testing.T) {
	days := []date.Date{
		date.MustParse("2025-01-02"),
		date.MustParse("2025-01-03"),
		date.MustParse("2025-02-03"),
		date.MustParse("2025-02-04"),
	}
	idx := sampleMonthly(days)

	// first trading day of each month plus the final day
	want := []int{0, 2, 3}
	if len(idx) != len(want) {
		t.Fatalf("sampleMonthly() = %v want %v", idx, want)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Errorf("sampleMonthly() = %v want %v", idx, want)
		}
	}
}

func TestPathQuantiles(t *testing.T) {
	bundle := [][]float64{{0, 10}, {0, 50}, {0, 30}, {0, 20}, {0, 40}}
	low, _, mid, _, high := pathQuantiles(bundle)
	if low != 10 || mid != 30 || high != 50 {
		t.Errorf("pathQuantiles() = %v, %v, %v want 10, 30, 50", low, mid, high)
	}
}

func TestTimelineChart(t *testing.T) {
	img, err := TimelineChart(sampleResult())
	if err != nil {
		t.Fatalf("TimelineChart() error: %v", err)
	}
	if len(img) == 0 {
		t.Errorf("TimelineChart() returned no bytes")
	}
}
