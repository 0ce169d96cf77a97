// Package app wires covidboard together.
//
// Bootstrap loads the config, opens the rotated log file and builds the
// disease.sh client; both entry points share it. Run then restores the
// user's theme and metric, creates the state controller, optionally serves
// /metrics, and hands control to the Bubble Tea program until the user quits
// or the context is cancelled. Summary is the non-interactive path: it fetches
// the selected summary and the country list in parallel and prints a report.
//
// Data is fetched on start, on selection and on explicit refresh only; there
// is no background polling.
package app
