package covid

import (
	"math"

	"github.com/umahmood/haversine"
)

// Zoom levels and the initial center match the dashboard's map defaults.
const (
	DefaultZoom = 3
	CountryZoom = 4

	earthCircumferenceKm = 40075.0
)

// DefaultCenter is the initial map center, over the North Atlantic.
var DefaultCenter = Point{Lat: 34.80746, Lng: -40.4796}

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Viewport is the visible map region: a center and a slippy-map zoom level.
type Viewport struct {
	Center Point
	Zoom   int
}

// DefaultViewport returns the worldwide view.
func DefaultViewport() Viewport {
	return Viewport{Center: DefaultCenter, Zoom: DefaultZoom}
}

// CountryViewport centers on a country at the zoomed-in level.
func CountryViewport(lat, lng float64) Viewport {
	return Viewport{Center: Point{Lat: lat, Lng: lng}, Zoom: CountryZoom}
}

// RadiusKm approximates how far from the center the viewport reaches. Each
// zoom step halves the visible span.
func (v Viewport) RadiusKm() float64 {
	zoom := v.Zoom
	if zoom < 0 {
		zoom = 0
	}
	return earthCircumferenceKm * 2 / math.Pow(2, float64(zoom))
}

// DistanceKm is the great-circle distance from the viewport center to p.
func (v Viewport) DistanceKm(p Point) float64 {
	from := haversine.Coord{Lat: v.Center.Lat, Lon: v.Center.Lng}
	to := haversine.Coord{Lat: p.Lat, Lon: p.Lng}
	_, km := haversine.Distance(from, to)
	return km
}

// Contains reports whether p falls inside the viewport radius.
func (v Viewport) Contains(p Point) bool {
	return v.DistanceKm(p) <= v.RadiusKm()
}
