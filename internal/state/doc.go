// Package state owns the dashboard's view state and the controller that
// mutates it.
//
// # Overview
//
// The Controller is the only writer. It holds the selected country, the
// selected metric, the map viewport, the most recent summary, the ranked
// country list, the picker options and the worldwide history. Renderers read
// it through Snapshot, which returns a copy that is safe to keep across
// frames.
//
// # Selection
//
// Selecting a country is split in two so the UI can show the new selection
// before the network answers:
//
//	sel, err := ctrl.BeginSelection("US") // synchronous, bumps Generation
//	err = ctrl.ResolveSelection(ctx, sel) // network, may return ErrSuperseded
//
// Every issued request carries a generation number. A response is applied
// only when its generation is still the latest one, so the last selection
// the user made always wins regardless of response order. Superseded results
// are dropped with ErrSuperseded and never touch the snapshot. Country list
// loads follow the same rule with their own counter.
//
// # Loading
//
// Refresh starts the summary, country list and history fetches together and
// applies each result independently. A failure in one leaves the others in
// place and keeps the last good data for its own slot. Errors are recorded
// on the snapshot (LastError, ErrorOp, Failures) and a later success in the
// same bucket clears them.
//
// # Concurrency
//
// A sync.RWMutex guards the snapshot. The lock is never held across network
// calls.
package state
