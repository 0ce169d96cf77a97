package covid

import (
	"time"

	"github.com/five82/covidboard/internal/diseasesh"
)

// SeriesPoint is one day of new values.
type SeriesPoint struct {
	Date  time.Time
	Value int64
}

// DailySeries turns the cumulative history for m into day-over-day new
// values. The first day has no predecessor and is dropped. Corrections in the
// upstream data can make a value negative; callers decide how to draw those.
func DailySeries(h diseasesh.History, m Metric) []SeriesPoint {
	ordered := diseasesh.Ordered(m.historySeries(h))
	if len(ordered) < 2 {
		return nil
	}
	out := make([]SeriesPoint, 0, len(ordered)-1)
	for i := 1; i < len(ordered); i++ {
		out = append(out, SeriesPoint{
			Date:  ordered[i].Date,
			Value: ordered[i].Value - ordered[i-1].Value,
		})
	}
	return out
}
