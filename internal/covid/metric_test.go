package covid

import (
	"errors"
	"testing"

	"github.com/five82/covidboard/internal/diseasesh"
)

func TestParseMetric(t *testing.T) {
	cases := []struct {
		in      string
		want    Metric
		wantErr bool
	}{
		{"cases", MetricCases, false},
		{" Recovered ", MetricRecovered, false},
		{"DEATHS", MetricDeaths, false},
		{"active", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMetric(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownMetric) {
					t.Fatalf("ParseMetric(%q) error = %v, want ErrUnknownMetric", tc.in, err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("ParseMetric(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
			}
		})
	}
}

func TestMetricNextCycles(t *testing.T) {
	if got := MetricCases.Next(); got != MetricRecovered {
		t.Fatalf("Next(cases) = %q", got)
	}
	if got := MetricDeaths.Next(); got != MetricCases {
		t.Fatalf("Next(deaths) = %q", got)
	}
	if got := Metric("bogus").Next(); got != MetricCases {
		t.Fatalf("Next(bogus) = %q", got)
	}
}

func TestMetricSelectors(t *testing.T) {
	today := int64(7)
	s := diseasesh.Summary{Cases: 10, Recovered: 8, Deaths: 1, TodayDeaths: &today}

	if MetricCases.Total(s) != 10 || MetricRecovered.Total(s) != 8 || MetricDeaths.Total(s) != 1 {
		t.Fatalf("Total selectors returned wrong fields")
	}
	if MetricCases.Today(s) != nil {
		t.Fatalf("Today(cases) should be nil when omitted")
	}
	if got := MetricDeaths.Today(s); got == nil || *got != 7 {
		t.Fatalf("Today(deaths) = %v, want 7", got)
	}
	if MetricCases.Title() != "Coronavirus Cases" || MetricDeaths.Title() != "Deaths" {
		t.Fatalf("unexpected titles")
	}
}
