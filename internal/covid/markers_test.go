package covid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/covidboard/internal/diseasesh"
)

func located(name, iso2 string, lat, lng float64, cases, deaths int64) diseasesh.Country {
	c := country(name, iso2, cases)
	c.Deaths = deaths
	c.Info.Lat = lat
	c.Info.Long = lng
	return c
}

func TestBuildMarkers(t *testing.T) {
	in := []diseasesh.Country{
		located("USA", "US", 38, -97, 10000, 100),
		located("Nowhere", "NW", 0, 0, 0, 0),
	}
	got := BuildMarkers(in, MetricDeaths)
	require.Len(t, got, 2)
	assert.Equal(t, "US", got[0].Code)
	assert.EqualValues(t, 100, got[0].Value)
	assert.InDelta(t, math.Sqrt(100)*2000, got[0].RadiusM, 0.001)
	assert.Zero(t, got[1].RadiusM)

	cases := BuildMarkers(in, MetricCases)
	assert.InDelta(t, math.Sqrt(10000)*800, cases[0].RadiusM, 0.001)
}

func TestViewportContainment(t *testing.T) {
	vp := CountryViewport(38, -97) // central USA, zoom 4
	assert.Equal(t, CountryZoom, vp.Zoom)

	assert.True(t, vp.Contains(Point{Lat: 45.4, Lng: -75.7}), "Ottawa should be visible")
	assert.False(t, vp.Contains(Point{Lat: -33.9, Lng: 151.2}), "Sydney should not be visible")
	assert.InDelta(t, 0, vp.DistanceKm(vp.Center), 0.001)

	world := DefaultViewport()
	assert.Greater(t, world.RadiusKm(), vp.RadiusKm())
	assert.Equal(t, DefaultCenter, world.Center)
}

func TestVisibleMarkersFiltersAndRanks(t *testing.T) {
	markers := BuildMarkers([]diseasesh.Country{
		located("Canada", "CA", 60, -95, 500, 0),
		located("Australia", "AU", -27, 133, 9000, 0),
		located("Mexico", "MX", 23, -102, 800, 0),
		located("USA", "US", 38, -97, 1000, 0),
	}, MetricCases)

	got := VisibleMarkers(markers, CountryViewport(38, -97))
	codes := make([]string, len(got))
	for i, m := range got {
		codes[i] = m.Code
	}
	assert.Equal(t, []string{"US", "MX", "CA"}, codes)
}
