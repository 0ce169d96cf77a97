package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/covidboard/internal/covid"
)

const pickerRows = 12

// picker is the country selection overlay: a filter input over the
// dropdown options.
type picker struct {
	input    textinput.Model
	options  []covid.DropdownOption
	filtered []covid.DropdownOption
	cursor   int
}

func newPicker(options []covid.DropdownOption, selected string) *picker {
	ti := textinput.New()
	ti.Placeholder = "Filter countries..."
	ti.CharLimit = 40
	ti.Prompt = "› "
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	p := &picker{input: ti, options: options, filtered: options}
	for i, opt := range options {
		if opt.Code == selected {
			p.cursor = i
			break
		}
	}
	return p
}

// Update implements Modal.
func (p *picker) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd, false
	}

	switch keyMsg.String() {
	case "esc", "ctrl+c":
		return p, nil, true
	case "enter":
		if len(p.filtered) == 0 {
			return p, nil, false
		}
		code := p.filtered[clamp(p.cursor, len(p.filtered))].Code
		return p, func() tea.Msg { return countryPickedMsg{code: code} }, true
	case "up", "ctrl+p", "shift+tab":
		p.cursor = clamp(p.cursor-1, len(p.filtered))
		return p, nil, false
	case "down", "ctrl+n", "tab":
		p.cursor = clamp(p.cursor+1, len(p.filtered))
		return p, nil, false
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.filtered = filterOptions(p.options, p.input.Value())
		p.cursor = 0
	}
	return p, cmd, false
}

// View implements Modal.
func (p *picker) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	const boxWidth = 40

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Select country"))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", boxWidth-6)))
	b.WriteString("\n")

	if len(p.filtered) == 0 {
		b.WriteString(styles.MutedText.Render("no matches"))
	}
	start := windowStart(p.cursor, len(p.filtered), pickerRows)
	end := min(start+pickerRows, len(p.filtered))
	selected := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.SelectionBg)).
		Foreground(lipgloss.Color(theme.SelectionText)).
		Width(boxWidth - 6)
	for i := start; i < end; i++ {
		opt := p.filtered[i]
		label := truncate(opt.Label, boxWidth-14)
		line := padRight(label, boxWidth-13) + " " + opt.Code
		if opt.Code == covid.Worldwide {
			line = label
		}
		if i == p.cursor {
			b.WriteString(selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter select · esc cancel"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(boxWidth)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)))
}

// filterOptions keeps options whose label or code contains query,
// case-insensitively. Order is preserved.
func filterOptions(options []covid.DropdownOption, query string) []covid.DropdownOption {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return options
	}
	var out []covid.DropdownOption
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), query) || strings.Contains(strings.ToLower(opt.Code), query) {
			out = append(out, opt)
		}
	}
	return out
}
