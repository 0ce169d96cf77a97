package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/covidboard/internal/covid"
	"github.com/five82/covidboard/internal/prefs"
	"github.com/five82/covidboard/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewDashboard View = iota
	ViewActivity
)

// initialFetches is the number of requests Init starts: summary, country
// list and history.
const initialFetches = 3

// pane is the focused dashboard pane.
type pane int

const (
	paneTable pane = iota
	paneMap
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *state.Controller
	Logger     *zap.Logger
	ThemeName  string
	PrefsPath  string
	LogPath    string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	ctrl      *state.Controller
	logger    *zap.Logger
	prefsPath string
	logPath   string
	keys      keyMap

	// UI state
	theme       Theme
	currentView View
	focus       pane
	width       int
	height      int
	ready       bool

	// Data state
	snapshot state.Snapshot
	pending  int
	spinner  spinner.Model
	spinning bool

	tableRow  int
	markerRow int

	// Overlays
	showHelp bool
	picker   Modal

	// Activity view
	activity activityState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:         ctx,
		ctrl:        opts.Controller,
		logger:      logger,
		prefsPath:   opts.PrefsPath,
		logPath:     opts.LogPath,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		currentView: ViewDashboard,
		spinner:     sp,
		activity:    activityState{viewport: viewport.New(0, 0)},
	}
	if m.ctrl != nil {
		m.snapshot = m.ctrl.Snapshot()
		// Init issues the initial fetches; count them here so a result
		// that lands first still balances.
		m.pending = initialFetches
		m.spinning = true
	}
	return m
}

// Init implements tea.Model. It kicks off the initial load.
func (m Model) Init() tea.Cmd {
	if m.ctrl == nil {
		return nil
	}
	return tea.Batch(
		m.spinner.Tick,
		resolveCmd(m.ctx, m.ctrl, m.ctrl.BeginRefresh()),
		countriesCmd(m.ctx, m.ctrl),
		historyCmd(m.ctx, m.ctrl),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeActivity()
		return m, nil

	case summaryMsg:
		m.finishFetch()
		m.refreshSnapshot()
		return m, nil

	case countriesMsg:
		m.finishFetch()
		m.refreshSnapshot()
		m.tableRow = clamp(m.tableRow, len(m.snapshot.Countries))
		return m, nil

	case historyMsg:
		m.finishFetch()
		m.refreshSnapshot()
		return m, nil

	case countryPickedMsg:
		return m, m.selectCountry(msg.code)

	case activityMsg:
		m.handleActivity(msg)
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.picker != nil {
		return m.updatePicker(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.picker != nil {
		return m.picker.View(m.theme, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	switch m.currentView {
	case ViewActivity:
		b.WriteString(m.renderActivity())
	default:
		b.WriteString(m.renderDashboard())
	}
	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.picker != nil {
		return m.updatePicker(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshAll()
	case key.Matches(msg, m.keys.Activity):
		if m.currentView == ViewActivity {
			m.currentView = ViewDashboard
			return m, nil
		}
		m.currentView = ViewActivity
		return m, readActivityCmd(m.logPath)
	case key.Matches(msg, m.keys.Escape):
		if m.currentView == ViewActivity {
			m.currentView = ViewDashboard
			return m, nil
		}
		if m.snapshot.LastError != nil && m.ctrl != nil {
			m.ctrl.ClearError()
			m.refreshSnapshot()
		}
		return m, nil
	}

	if m.currentView == ViewActivity {
		return m.handleActivityKey(msg)
	}
	return m.handleDashboardKey(msg)
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.MetricCases):
		m.setMetric(covid.MetricCases)
	case key.Matches(msg, m.keys.MetricRecovered):
		m.setMetric(covid.MetricRecovered)
	case key.Matches(msg, m.keys.MetricDeaths):
		m.setMetric(covid.MetricDeaths)
	case key.Matches(msg, m.keys.CycleMetric):
		m.setMetric(m.snapshot.Metric.Next())
	case key.Matches(msg, m.keys.Worldwide):
		return m, m.selectCountry(covid.Worldwide)
	case key.Matches(msg, m.keys.Picker):
		if len(m.snapshot.Options) == 0 {
			return m, nil
		}
		m.picker = newPicker(m.snapshot.Options, m.snapshot.SelectedCode)
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		if m.focus == paneTable {
			m.focus = paneMap
		} else {
			m.focus = paneTable
		}
	case key.Matches(msg, m.keys.Select):
		if m.focus == paneTable && len(m.snapshot.Countries) > 0 {
			row := m.snapshot.Countries[clamp(m.tableRow, len(m.snapshot.Countries))]
			return m, m.selectCountry(row.Code())
		}
		if m.focus == paneMap {
			markers := m.snapshot.VisibleMarkers()
			if len(markers) > 0 {
				return m, m.selectCountry(markers[clamp(m.markerRow, len(markers))].Code)
			}
		}
	default:
		m.navigate(msg)
	}
	return m, nil
}

// navigate moves the cursor of the focused pane.
func (m *Model) navigate(msg tea.KeyMsg) {
	row, total := &m.tableRow, len(m.snapshot.Countries)
	if m.focus == paneMap {
		row, total = &m.markerRow, len(m.snapshot.VisibleMarkers())
	}
	if total == 0 {
		return
	}
	half := max(m.middleHeight()/2, 1)

	switch {
	case key.Matches(msg, m.keys.Down):
		*row++
	case key.Matches(msg, m.keys.Up):
		*row--
	case key.Matches(msg, m.keys.Top):
		*row = 0
	case key.Matches(msg, m.keys.Bottom):
		*row = total - 1
	case key.Matches(msg, m.keys.HalfPageDown):
		*row += half
	case key.Matches(msg, m.keys.HalfPageUp):
		*row -= half
	}
	*row = clamp(*row, total)
}

func (m *Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, done := m.picker.Update(msg, m.keys)
	if done {
		m.picker = nil
	} else {
		m.picker = next
	}
	return *m, cmd
}

// selectCountry records the selection right away and fetches in the
// background.
func (m *Model) selectCountry(code string) tea.Cmd {
	if m.ctrl == nil {
		return nil
	}
	sel, err := m.ctrl.BeginSelection(code)
	if err != nil {
		m.logger.Warn("country selection rejected", zap.String("code", code), zap.Error(err))
		return nil
	}
	m.refreshSnapshot()
	m.markerRow = 0
	return tea.Batch(m.addPending(1), resolveCmd(m.ctx, m.ctrl, sel))
}

func (m *Model) refreshAll() tea.Cmd {
	if m.ctrl == nil {
		return nil
	}
	sel := m.ctrl.BeginRefresh()
	m.refreshSnapshot()
	cmds := []tea.Cmd{
		m.addPending(initialFetches),
		resolveCmd(m.ctx, m.ctrl, sel),
		countriesCmd(m.ctx, m.ctrl),
		historyCmd(m.ctx, m.ctrl),
	}
	if m.currentView == ViewActivity {
		cmds = append(cmds, readActivityCmd(m.logPath))
	}
	return tea.Batch(cmds...)
}

func (m *Model) setMetric(metric covid.Metric) {
	if m.ctrl == nil {
		return
	}
	if err := m.ctrl.SelectMetric(metric); err != nil {
		m.logger.Warn("metric selection rejected", zap.Error(err))
		return
	}
	m.refreshSnapshot()
	m.markerRow = 0
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Metric: m.snapshot.Metric}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

func (m *Model) refreshSnapshot() {
	if m.ctrl != nil {
		m.snapshot = m.ctrl.Snapshot()
	}
}

// addPending counts n in-flight fetches and starts the spinner if idle.
func (m *Model) addPending(n int) tea.Cmd {
	m.pending += n
	if m.spinning || m.pending == 0 {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) finishFetch() {
	if m.pending > 0 {
		m.pending--
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
