package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/five82/covidboard/internal/diseasesh"
	"github.com/five82/covidboard/internal/state"
)

// renderHeader renders the status bar: logo, selection, metric, fetch state,
// last update and any error notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	snap := m.snapshot

	parts := []string{
		bg.Render("covidboard", styles.Logo),
		bg.Pair("Country:", snap.SelectedLabel(), styles.MutedText, styles.Text.Bold(true)),
		bg.Pair("Metric:", string(snap.Metric), styles.MutedText, styles.MetricText(snap.Metric)),
	}

	if m.pending > 0 || snap.Phase == state.PhaseFetching {
		parts = append(parts, bg.Render(m.spinner.View()+" loading", styles.WarningText))
	}

	if ts := formatTimestamp(snap.LastUpdated, time.Now()); ts != "" && !compact {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	if snap.LastError != nil {
		maxErr := 80
		if compact {
			maxErr = 30
		}
		label := classifyError(snap.LastError)
		if snap.IsOffline() {
			label = "OFFLINE"
		}
		parts = append(parts,
			bg.Render(label, styles.DangerText)+bg.Space()+
				bg.Render(truncate(snap.LastError.Error(), maxErr), styles.DangerText.Bold(false)))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, "  "))
}

// formatTimestamp formats the last update time with a relative hint.
func formatTimestamp(last, now time.Time) string {
	if last.IsZero() {
		return ""
	}
	out := last.Format("15:04:05")
	since := now.Sub(last)
	switch {
	case since < time.Minute:
		out += " (now)"
	case since < time.Hour:
		out += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	case since < 24*time.Hour:
		out += fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	}
	return out
}

// classifyError returns a short label for a fetch failure.
func classifyError(err error) string {
	if err == nil {
		return ""
	}
	if diseasesh.IsParseError(err) {
		return "BAD DATA"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "TIMEOUT"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "no such host"):
		return "OFFLINE"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd
	switch m.currentView {
	case ViewActivity:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"R", "Reload"},
			{"l/esc", "Dashboard"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"1/2/3", "Metric"},
			{"s", "Country"},
			{"w", "Worldwide"},
			{"enter", "Select"},
			{"tab", "Focus"},
			{"R", "Refresh"},
			{"l", "Activity"},
			{"?", "More"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(segments, "  "))
}
