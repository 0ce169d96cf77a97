package covid

import (
	"cmp"
	"math"
	"slices"

	"github.com/five82/covidboard/internal/diseasesh"
)

// Marker is one map circle.
type Marker struct {
	Name    string
	Code    string
	Point   Point
	Value   int64
	RadiusM float64 // circle radius in meters
}

// BuildMarkers derives one marker per record for metric m, keeping API order.
func BuildMarkers(records []diseasesh.Country, m Metric) []Marker {
	out := make([]Marker, 0, len(records))
	for _, rec := range records {
		value := m.Total(rec.Summary)
		out = append(out, Marker{
			Name:    rec.Name,
			Code:    rec.Code(),
			Point:   Point{Lat: rec.Info.Lat, Lng: rec.Info.Long},
			Value:   value,
			RadiusM: markerRadius(value, m),
		})
	}
	return out
}

func markerRadius(value int64, m Metric) float64 {
	if value <= 0 {
		return 0
	}
	return math.Sqrt(float64(value)) * m.markerMultiplier()
}

// VisibleMarkers returns the markers inside vp, largest value first.
func VisibleMarkers(markers []Marker, vp Viewport) []Marker {
	out := make([]Marker, 0, len(markers))
	for _, mk := range markers {
		if vp.Contains(mk.Point) {
			out = append(out, mk)
		}
	}
	slices.SortStableFunc(out, func(a, b Marker) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
