package state

import (
	"strings"
	"time"

	"github.com/five82/covidboard/internal/covid"
	"github.com/five82/covidboard/internal/diseasesh"
)

// Phase tracks the lifecycle of the most recent summary request.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseApplied
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseFetching:
		return "fetching"
	case PhaseApplied:
		return "applied"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Operation buckets used for error bookkeeping. A success only clears an
// error raised by the same bucket.
const (
	OpSummary   = "summary"
	OpCountries = "countries"
	OpHistory   = "history"
)

// Snapshot is an immutable copy of the view state handed to renderers.
type Snapshot struct {
	SelectedCode string
	Metric       covid.Metric
	Viewport     covid.Viewport

	Current        diseasesh.Summary
	CurrentCountry *diseasesh.Country // nil when the worldwide summary is shown
	HasSummary     bool

	Countries    []diseasesh.Country // ranked by SortByCases
	MapCountries []diseasesh.Country // API order
	Options      []covid.DropdownOption

	History    diseasesh.History // maps are replaced, never mutated; treat as read-only
	HasHistory bool

	Phase       Phase
	Generation  uint64
	LastError   error
	ErrorOp     string
	Failures    int // consecutive failed fetches of any kind
	LastUpdated time.Time
}

// IsWorldwide reports whether the worldwide sentinel is selected.
func (s Snapshot) IsWorldwide() bool {
	return s.SelectedCode == covid.Worldwide
}

// IsOffline returns true when the API has failed several times in a row.
func (s Snapshot) IsOffline() bool {
	return s.Failures >= 2
}

// SelectedLabel returns a display name for the current selection.
func (s Snapshot) SelectedLabel() string {
	if s.IsWorldwide() {
		return covid.WorldwideOption.Label
	}
	if s.CurrentCountry != nil && strings.EqualFold(s.CurrentCountry.Code(), s.SelectedCode) {
		return s.CurrentCountry.Name
	}
	for _, opt := range s.Options {
		if opt.Code == s.SelectedCode {
			return opt.Label
		}
	}
	return s.SelectedCode
}

// Markers returns the map markers for the selected metric.
func (s Snapshot) Markers() []covid.Marker {
	return covid.BuildMarkers(s.MapCountries, s.Metric)
}

// VisibleMarkers returns the markers inside the current viewport.
func (s Snapshot) VisibleMarkers() []covid.Marker {
	return covid.VisibleMarkers(s.Markers(), s.Viewport)
}

// Series returns the worldwide daily values for the selected metric.
func (s Snapshot) Series() []covid.SeriesPoint {
	if !s.HasHistory {
		return nil
	}
	return covid.DailySeries(s.History, s.Metric)
}
