package diseasesh

import (
	"fmt"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

func observeFetch(op string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case IsParseError(err):
		outcome = "parse_error"
	case IsNetworkError(err):
		outcome = "network_error"
	default:
		outcome = "error"
	}
	metrics.GetOrCreateCounter(fmt.Sprintf(`covidboard_fetch_total{op=%q,outcome=%q}`, op, outcome)).Inc()
	metrics.GetOrCreateHistogram(fmt.Sprintf(`covidboard_fetch_duration_seconds{op=%q}`, op)).UpdateDuration(start)
}

// FetchCount returns how many fetches of op ended with outcome so far.
func FetchCount(op, outcome string) uint64 {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`covidboard_fetch_total{op=%q,outcome=%q}`, op, outcome)).Get()
}
