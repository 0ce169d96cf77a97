package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	Escape     key.Binding
	Refresh    key.Binding

	// Data selection
	MetricCases     key.Binding
	MetricRecovered key.Binding
	MetricDeaths    key.Binding
	CycleMetric     key.Binding
	Picker          key.Binding
	Worldwide       key.Binding
	Select          key.Binding

	// Views
	Activity key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Switch pane"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back / close"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Refresh data"),
		),

		MetricCases: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Cases"),
		),
		MetricRecovered: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Recovered"),
		),
		MetricDeaths: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Deaths"),
		),
		CycleMetric: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Cycle metric"),
		),
		Picker: key.NewBinding(
			key.WithKeys("s", "/"),
			key.WithHelp("s or /", "Pick country"),
		),
		Worldwide: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Worldwide"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Select row"),
		),

		Activity: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Activity log"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MetricCases, k.MetricRecovered, k.MetricDeaths, k.CycleMetric},
		{k.Picker, k.Worldwide, k.Select, k.Refresh},
		{k.Tab, k.Up, k.Down, k.Top, k.Bottom, k.HalfPageDown, k.HalfPageUp},
		{k.Activity, k.CycleTheme, k.Help, k.Escape, k.Quit},
	}
}
