// Package covid holds the pure data shaping behind the dashboard: ranking
// countries, picker options, metric selection, map markers and the daily
// series for the graph. Nothing here performs I/O or holds state.
package covid
