package ui

import "strings"

var sparkBlocks = []rune(" ▁▂▃▄▅▆▇█")

// sparkline draws values as a block chart width columns wide and rows tall.
// Longer series are averaged into buckets; negative values (upstream
// corrections) are drawn as zero. Lines are returned top to bottom.
func sparkline(values []int64, width, rows int) []string {
	if width <= 0 || rows <= 0 || len(values) == 0 {
		return nil
	}
	cols := resample(values, width)
	top := peak(cols)

	levels := len(sparkBlocks) - 1
	heights := make([]int, len(cols))
	for i, v := range cols {
		if top > 0 && v > 0 {
			heights[i] = int(float64(v) / float64(top) * float64(rows*levels))
			if heights[i] == 0 {
				heights[i] = 1
			}
		}
	}

	out := make([]string, rows)
	for r := 0; r < rows; r++ {
		floor := (rows - 1 - r) * levels
		var b strings.Builder
		for _, h := range heights {
			fill := h - floor
			switch {
			case fill <= 0:
				b.WriteRune(sparkBlocks[0])
			case fill >= levels:
				b.WriteRune(sparkBlocks[levels])
			default:
				b.WriteRune(sparkBlocks[fill])
			}
		}
		out[r] = b.String()
	}
	return out
}

// resample averages values into at most width buckets.
func resample(values []int64, width int) []int64 {
	if len(values) <= width {
		return values
	}
	out := make([]int64, width)
	for i := range out {
		lo := i * len(values) / width
		hi := (i + 1) * len(values) / width
		var sum int64
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[i] = sum / int64(hi-lo)
	}
	return out
}

func peak(values []int64) int64 {
	var top int64
	for _, v := range values {
		top = max(top, v)
	}
	return top
}
