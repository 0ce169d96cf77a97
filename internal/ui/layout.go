package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops detail
	// and the map and table stack vertically.
	LayoutCompactWidth = 100

	// LayoutExtraWideWidth gives the map a larger share.
	LayoutExtraWideWidth = 160
)

// Pane heights.
const (
	infoBoxHeight  = 5
	minGraphHeight = 6
	minPaneHeight  = 5
)

// ActivityLineLimit is how many log lines the Activity view loads.
const ActivityLineLimit = 500
