// Package ui provides the covidboard terminal dashboard, built on Bubble Tea.
//
// # Layout
//
//	┌ covidboard  Country: USA  Metric: cases  ⠋ loading  12:04:11 (now) ┐
//	│ 1/2/3:Metric  s:Country  w:Worldwide  enter:Select  ...            │
//	├─ 1 Coronavirus Cases ─┬─ 2 Recovered ─┬─ 3 Deaths ─────────────────┤
//	├─ Map · 42 in view ────────────────┬─ Live Cases by Country ────────┤
//	├─ Worldwide new cases ─────────────┴────────────────────────────────┤
//
// The info boxes show today's delta and the running total for each metric;
// the active metric is framed in the focus color. The map pane lists the
// countries inside the current viewport, largest first. The table ranks every
// country by total cases. The graph is a sparkline of daily worldwide values.
//
// # Data Flow
//
// The Model never fetches on its own. Every fetch is a tea.Cmd that calls the
// state.Controller; the resulting message only signals completion and the
// Model re-reads Controller.Snapshot. Selections are issued synchronously
// (BeginSelection) so the header reflects the new country at once, and
// resolved in the background. There is no polling; R reloads everything.
//
// # Views and Overlays
//
//   - Dashboard: the panes above
//   - Activity (l): tail of the application log file
//   - Country picker (s or /): filter-as-you-type list of dropdown options
//   - Help (h or ?): key reference built from the key map
//
// Theme and metric choices are written to the prefs file as they change.
package ui
