package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/covidboard/internal/logtail"
	"github.com/five82/covidboard/internal/state"
)

// Messages. Fetch results carry only the outcome; the model re-reads the
// controller snapshot to pick up what was applied.

type summaryMsg struct {
	sel state.Selection
	err error
}

type countriesMsg struct{ err error }

type historyMsg struct{ err error }

type countryPickedMsg struct{ code string }

type activityMsg struct {
	lines []string
	err   error
}

// Commands

func resolveCmd(ctx context.Context, ctrl *state.Controller, sel state.Selection) tea.Cmd {
	return func() tea.Msg {
		return summaryMsg{sel: sel, err: ctrl.ResolveSelection(ctx, sel)}
	}
}

func countriesCmd(ctx context.Context, ctrl *state.Controller) tea.Cmd {
	return func() tea.Msg {
		return countriesMsg{err: ctrl.LoadCountries(ctx)}
	}
}

func historyCmd(ctx context.Context, ctrl *state.Controller) tea.Cmd {
	return func() tea.Msg {
		return historyMsg{err: ctrl.LoadHistory(ctx)}
	}
}

func readActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return activityMsg{}
		}
		lines, err := logtail.Read(path, ActivityLineLimit)
		return activityMsg{lines: lines, err: err}
	}
}
