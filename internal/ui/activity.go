package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/covidboard/internal/logtail"
)

// activityState backs the Activity view, a tail of the application log.
type activityState struct {
	viewport viewport.Model
	entries  []logtail.Entry
	err      error
	loaded   bool
}

func (m *Model) resizeActivity() {
	// Box height = content height; inner = minus top and bottom borders.
	m.activity.viewport.Width = max(m.width-2, 0)
	m.activity.viewport.Height = max(m.contentHeight()-2, 0)
	m.activity.viewport.SetContent(m.renderActivityContent())
}

func (m *Model) handleActivity(msg activityMsg) {
	m.activity.loaded = true
	m.activity.err = msg.err
	m.activity.entries = m.activity.entries[:0]
	for _, line := range msg.lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m.activity.entries = append(m.activity.entries, logtail.Parse(line))
	}
	m.activity.viewport.SetContent(m.renderActivityContent())
	m.activity.viewport.GotoBottom()
}

func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := &m.activity.viewport
	switch {
	case key.Matches(msg, m.keys.Down):
		vp.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		vp.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		vp.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		vp.HalfPageUp()
	}
	return m, nil
}

func (m Model) renderActivity() string {
	title := "Activity"
	if m.logPath != "" {
		title += " · " + m.logPath
	}
	return m.renderTitledBox(title, m.activity.viewport.View(), m.width, m.contentHeight(), true)
}

func (m Model) renderActivityContent() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.FocusBg)
	width := m.activity.viewport.Width

	switch {
	case m.logPath == "":
		return bg.Render("logging is disabled (log_file is empty)", styles.MutedText)
	case m.activity.err != nil:
		return bg.Render("read log: "+m.activity.err.Error(), styles.DangerText)
	case !m.activity.loaded:
		return bg.Render("loading...", styles.MutedText)
	case len(m.activity.entries) == 0:
		return bg.Render("no log entries", styles.MutedText)
	}

	lines := make([]string, 0, len(m.activity.entries))
	for _, entry := range m.activity.entries {
		line := truncate(entry.String(), width)
		lines = append(lines, bg.Render(line, m.levelStyle(entry.Level)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) levelStyle(level string) lipgloss.Style {
	styles := m.theme.Styles()
	switch level {
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return styles.DangerText.Bold(false)
	case "WARN":
		return styles.WarningText
	case "DEBUG":
		return styles.FaintText
	case "":
		return styles.MutedText
	default:
		return styles.Text
	}
}
