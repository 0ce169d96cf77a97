// Package format renders case counts for display.
package format

import (
	"github.com/dustin/go-humanize"
)

// PrettyDelta renders a "today" delta. A missing value renders as "0"; present
// values are grouped and carry a leading "+" unless negative, in which case the
// number keeps its own minus sign.
func PrettyDelta(n *int64) string {
	if n == nil {
		return "0"
	}
	if *n < 0 {
		return humanize.Comma(*n)
	}
	return "+" + humanize.Comma(*n)
}

// Total renders a cumulative count with thousands separators and no sign.
func Total(n int64) string {
	return humanize.Comma(n)
}

// Compact renders a count in short SI form (1.2M, 45.3k) for narrow layouts.
func Compact(n int64) string {
	if n > -1000 && n < 1000 {
		return humanize.Comma(n)
	}
	value, prefix := humanize.ComputeSI(float64(n))
	return humanize.FtoaWithDigits(value, 1) + prefix
}
