package covid

import (
	"testing"

	"github.com/five82/covidboard/internal/diseasesh"
)

func TestDailySeries(t *testing.T) {
	h := diseasesh.History{
		Cases:  map[string]int64{"1/3/21": 160, "1/1/21": 100, "1/2/21": 130},
		Deaths: map[string]int64{"1/1/21": 5},
	}

	got := DailySeries(h, MetricCases)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Value != 30 || got[1].Value != 30 {
		t.Fatalf("values = %d,%d want 30,30", got[0].Value, got[1].Value)
	}
	if got[0].Date.Day() != 2 || got[1].Date.Day() != 3 {
		t.Fatalf("dates out of order: %v", got)
	}

	if got := DailySeries(h, MetricDeaths); got != nil {
		t.Fatalf("single point series = %v, want nil", got)
	}
	if got := DailySeries(h, MetricRecovered); got != nil {
		t.Fatalf("missing series = %v, want nil", got)
	}
}
