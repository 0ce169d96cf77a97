// Package logtail reads the tail of covidboard's own log file for the
// Activity view.
//
// Read keeps a ring buffer of the last N lines so large files are scanned
// once without being held in memory. Parse decodes the JSON records the
// application logger writes into an Entry whose String form fits on one
// terminal line; anything that is not a JSON object passes through as-is.
package logtail
