package covid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/covidboard/internal/diseasesh"
)

// Metric selects which count drives the map, graph and highlighted info box.
type Metric string

const (
	MetricCases     Metric = "cases"
	MetricRecovered Metric = "recovered"
	MetricDeaths    Metric = "deaths"
)

// ErrUnknownMetric is returned by ParseMetric for unsupported names.
var ErrUnknownMetric = errors.New("unknown metric")

var metricOrder = []Metric{MetricCases, MetricRecovered, MetricDeaths}

// Metrics returns all metrics in display order.
func Metrics() []Metric {
	out := make([]Metric, len(metricOrder))
	copy(out, metricOrder)
	return out
}

// ParseMetric converts a user-supplied name into a Metric.
func ParseMetric(value string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(value)))
	if !m.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownMetric, value)
	}
	return m, nil
}

// Valid reports whether m is one of the known metrics.
func (m Metric) Valid() bool {
	for _, known := range metricOrder {
		if m == known {
			return true
		}
	}
	return false
}

// Next returns the following metric in display order, wrapping around.
func (m Metric) Next() Metric {
	for i, known := range metricOrder {
		if m == known {
			return metricOrder[(i+1)%len(metricOrder)]
		}
	}
	return MetricCases
}

// Title is the info box heading.
func (m Metric) Title() string {
	switch m {
	case MetricRecovered:
		return "Recovered"
	case MetricDeaths:
		return "Deaths"
	default:
		return "Coronavirus Cases"
	}
}

// Total selects the cumulative count for m.
func (m Metric) Total(s diseasesh.Summary) int64 {
	switch m {
	case MetricRecovered:
		return s.Recovered
	case MetricDeaths:
		return s.Deaths
	default:
		return s.Cases
	}
}

// Today selects the daily delta for m; nil when the API omitted it.
func (m Metric) Today(s diseasesh.Summary) *int64 {
	switch m {
	case MetricRecovered:
		return s.TodayRecovered
	case MetricDeaths:
		return s.TodayDeaths
	default:
		return s.TodayCases
	}
}

func (m Metric) historySeries(h diseasesh.History) map[string]int64 {
	switch m {
	case MetricRecovered:
		return h.Recovered
	case MetricDeaths:
		return h.Deaths
	default:
		return h.Cases
	}
}

// markerMultiplier scales sqrt(value) into a marker radius in meters.
func (m Metric) markerMultiplier() float64 {
	switch m {
	case MetricRecovered:
		return 1200
	case MetricDeaths:
		return 2000
	default:
		return 800
	}
}
