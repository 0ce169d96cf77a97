package diseasesh

import (
	"sort"
	"strings"
	"time"
)

const historyDateLayout = "1/2/06"

// Summary mirrors the count fields shared by /all and /countries payloads.
// The "today" deltas are optional on the wire; nil means the API omitted them.
type Summary struct {
	Updated           int64  `json:"updated"`
	Cases             int64  `json:"cases"`
	TodayCases        *int64 `json:"todayCases"`
	Deaths            int64  `json:"deaths"`
	TodayDeaths       *int64 `json:"todayDeaths"`
	Recovered         int64  `json:"recovered"`
	TodayRecovered    *int64 `json:"todayRecovered"`
	Active            int64  `json:"active"`
	Critical          int64  `json:"critical"`
	Population        int64  `json:"population"`
	AffectedCountries int    `json:"affectedCountries"`
}

// UpdatedAt returns the upstream update timestamp.
func (s Summary) UpdatedAt() time.Time {
	if s.Updated <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(s.Updated)
}

// Country mirrors a single entry of /countries.
type Country struct {
	Summary
	Name      string      `json:"country"`
	Continent string      `json:"continent"`
	Info      CountryInfo `json:"countryInfo"`
}

// CountryInfo carries the geographic metadata nested in country payloads.
type CountryInfo struct {
	ISO2 string  `json:"iso2"`
	ISO3 string  `json:"iso3"`
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
	Flag string  `json:"flag"`
}

// Code returns the identifier used to select the country. Entries without an
// ISO2 code (cruise ships) fall back to their name, which the API also accepts.
func (c Country) Code() string {
	if code := strings.TrimSpace(c.Info.ISO2); code != "" {
		return code
	}
	return c.Name
}

// History mirrors /historical/all: cumulative counts keyed by M/D/YY dates.
type History struct {
	Cases     map[string]int64 `json:"cases"`
	Deaths    map[string]int64 `json:"deaths"`
	Recovered map[string]int64 `json:"recovered"`
}

// DatedValue is one point of a cumulative series.
type DatedValue struct {
	Date  time.Time
	Value int64
}

// Ordered returns the series in chronological order. Keys that do not parse
// as dates are skipped.
func Ordered(series map[string]int64) []DatedValue {
	out := make([]DatedValue, 0, len(series))
	for key, value := range series {
		date, err := time.Parse(historyDateLayout, strings.TrimSpace(key))
		if err != nil {
			continue
		}
		out = append(out, DatedValue{Date: date, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
