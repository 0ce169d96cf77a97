// Package prefs persists the dashboard's theme and metric choice between
// sessions in ~/.config/covidboard/prefs.toml.
//
// Load never fails: a missing, unreadable or malformed file yields defaults
// and individual bad values fall back on their own. Save creates the parent
// directory when needed.
package prefs
