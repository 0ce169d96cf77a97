package covid

import (
	"cmp"
	"slices"
	"strings"

	"github.com/five82/covidboard/internal/diseasesh"
)

// SortByCases returns a copy of records ranked by total cases, highest first.
// Ties fall back to the case-insensitive name and then the code so equal
// inputs always produce the same order. The input slice is not modified.
func SortByCases(records []diseasesh.Country) []diseasesh.Country {
	out := make([]diseasesh.Country, len(records))
	copy(out, records)
	slices.SortStableFunc(out, compareByCases)
	return out
}

func compareByCases(a, b diseasesh.Country) int {
	if c := cmp.Compare(b.Cases, a.Cases); c != 0 {
		return c
	}
	if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return cmp.Compare(a.Code(), b.Code())
}

// IsRanked reports whether records are already in SortByCases order.
func IsRanked(records []diseasesh.Country) bool {
	return slices.IsSortedFunc(records, compareByCases)
}
