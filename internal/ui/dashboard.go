package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/covidboard/internal/covid"
	"github.com/five82/covidboard/internal/format"
)

// contentHeight is the height below the header and command bar.
func (m Model) contentHeight() int {
	return max(m.height-2, 0)
}

func (m Model) graphHeight() int {
	return max(m.contentHeight()/4, minGraphHeight)
}

// middleHeight is the height shared by the map and table panes.
func (m Model) middleHeight() int {
	return max(m.contentHeight()-infoBoxHeight-m.graphHeight(), minPaneHeight)
}

// renderDashboard lays out the info boxes, the map and table panes and the
// graph.
func (m Model) renderDashboard() string {
	info := m.renderInfoBoxes()

	var middle string
	if m.width < LayoutCompactWidth {
		h := max(m.middleHeight()/2, minPaneHeight)
		middle = lipgloss.JoinVertical(lipgloss.Left,
			m.renderMapPane(m.width, h),
			m.renderTablePane(m.width, m.middleHeight()-h))
	} else {
		mapWidth := m.width * 55 / 100
		if m.width >= LayoutExtraWideWidth {
			mapWidth = m.width * 65 / 100
		}
		middle = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderMapPane(mapWidth, m.middleHeight()),
			m.renderTablePane(m.width-mapWidth, m.middleHeight()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, info, middle, m.renderGraphPane(m.width, m.graphHeight()))
}

// renderInfoBoxes renders one box per metric. The active metric is framed
// in the focus color.
func (m Model) renderInfoBoxes() string {
	metrics := covid.Metrics()
	boxes := make([]string, 0, len(metrics))
	remaining := m.width
	for i, metric := range metrics {
		w := m.width / len(metrics)
		if i == len(metrics)-1 {
			w = remaining
		}
		remaining -= w
		boxes = append(boxes, m.renderInfoBox(metric, w))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) renderInfoBox(metric covid.Metric, width int) string {
	active := metric == m.snapshot.Metric
	bgColor := m.theme.SurfaceAlt
	if active {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	var content string
	if !m.snapshot.HasSummary {
		content = bg.Render("waiting for data", styles.FaintText)
	} else {
		delta := format.PrettyDelta(metric.Today(m.snapshot.Current))
		total := format.Total(metric.Total(m.snapshot.Current))
		content = bg.Render(delta, styles.MetricText(metric)) + "\n" +
			bg.Pair(total, "Total", styles.Text, styles.MutedText)
	}
	return m.renderTitledBox(infoBoxTitle(metric), content, width, infoBoxHeight, active)
}

func infoBoxTitle(metric covid.Metric) string {
	for i, known := range covid.Metrics() {
		if known == metric {
			return fmt.Sprintf("%d %s", i+1, metric.Title())
		}
	}
	return metric.Title()
}

// renderMapPane lists the markers inside the viewport, largest first, with a
// glyph scaled by marker radius.
func (m Model) renderMapPane(width, height int) string {
	focused := m.focus == paneMap
	bgColor := m.paneBg(focused)
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	inner := width - 2
	vp := m.snapshot.Viewport

	header := bg.Pair("center", fmt.Sprintf("%.2f, %.2f", vp.Center.Lat, vp.Center.Lng), styles.FaintText, styles.Text) +
		bg.Spaces(2) + bg.Pair("zoom", fmt.Sprintf("%d", vp.Zoom), styles.FaintText, styles.Text) +
		bg.Spaces(2) + bg.Pair("radius", format.Total(int64(vp.RadiusKm()))+" km", styles.FaintText, styles.Text)

	markers := m.snapshot.VisibleMarkers()
	title := fmt.Sprintf("Map · %d in view", len(markers))
	if len(markers) == 0 {
		body := header + "\n" + bg.Render("no countries in view", styles.MutedText)
		return m.renderTitledBox(title, body, width, height, focused)
	}

	var maxRadius float64
	for _, mk := range markers {
		maxRadius = max(maxRadius, mk.RadiusM)
	}

	visible := max(height-3, 1)
	start := windowStart(m.markerRow, len(markers), visible)
	end := min(start+visible, len(markers))
	valueWidth := 8
	nameWidth := max(inner-valueWidth-4, 6)
	metricStyle := styles.MetricText(m.snapshot.Metric)

	lines := []string{header}
	for i := start; i < end; i++ {
		mk := markers[i]
		glyph := markerGlyph(mk.RadiusM, maxRadius)
		row := padRight(truncate(mk.Name, nameWidth), nameWidth) + " " + padLeft(format.Compact(mk.Value), valueWidth)
		if focused && i == m.markerRow {
			lines = append(lines, m.selectedRow(glyph+" "+row, inner))
			continue
		}
		lines = append(lines, bg.Render(glyph, metricStyle)+bg.Space()+bg.Render(row, styles.Text))
	}
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, focused)
}

var markerGlyphs = []string{"·", "∙", "•", "●"}

func markerGlyph(radius, maxRadius float64) string {
	if maxRadius <= 0 {
		return markerGlyphs[0]
	}
	idx := int(radius / maxRadius * float64(len(markerGlyphs)))
	return markerGlyphs[clamp(idx, len(markerGlyphs))]
}

// renderTablePane renders "Live Cases by Country".
func (m Model) renderTablePane(width, height int) string {
	focused := m.focus == paneTable
	bg := NewBgStyle(m.paneBg(focused))
	styles := m.theme.Styles()
	inner := width - 2
	rows := m.snapshot.Countries

	if len(rows) == 0 {
		return m.renderTitledBox("Live Cases by Country", bg.Render("no data", styles.MutedText), width, height, focused)
	}

	visible := max(height-2, 1)
	start := windowStart(m.tableRow, len(rows), visible)
	end := min(start+visible, len(rows))
	rankWidth := len(fmt.Sprint(len(rows)))
	casesWidth := 12
	nameWidth := max(inner-rankWidth-casesWidth-2, 6)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rec := rows[i]
		rank := padLeft(fmt.Sprint(i+1), rankWidth)
		name := padRight(truncate(rec.Name, nameWidth), nameWidth)
		cases := padLeft(format.Total(rec.Cases), casesWidth)
		if i == m.tableRow && focused {
			lines = append(lines, m.selectedRow(rank+" "+name+" "+cases, inner))
			continue
		}
		nameStyle := styles.Text
		if rec.Code() == m.snapshot.SelectedCode {
			nameStyle = styles.AccentText.Bold(true)
		}
		lines = append(lines,
			bg.Render(rank, styles.FaintText)+bg.Space()+
				bg.Render(name, nameStyle)+bg.Space()+
				bg.Render(cases, styles.MutedText))
	}
	title := fmt.Sprintf("Live Cases by Country · %d/%d", clamp(m.tableRow, len(rows))+1, len(rows))
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, focused)
}

// renderGraphPane renders "Worldwide new {metric}" as a sparkline.
func (m Model) renderGraphPane(width, height int) string {
	metric := m.snapshot.Metric
	bg := NewBgStyle(m.theme.SurfaceAlt)
	styles := m.theme.Styles()
	title := "Worldwide new " + string(metric)
	inner := width - 2

	series := m.snapshot.Series()
	if len(series) == 0 {
		msg := "no history yet"
		if m.snapshot.HasHistory {
			msg = "not enough history to plot"
		}
		return m.renderTitledBox(title, bg.Render(msg, styles.MutedText), width, height, false)
	}

	values := make([]int64, len(series))
	for i, p := range series {
		values[i] = p.Value
	}
	rows := max(height-3, 1)
	chart := sparkline(values, inner, rows)

	chartStyle := styles.MetricText(metric).Bold(false)
	lines := make([]string, 0, len(chart)+1)
	for _, line := range chart {
		lines = append(lines, bg.Render(line, chartStyle))
	}

	first, last := series[0], series[len(series)-1]
	latest := last.Value
	lines = append(lines,
		bg.Pair(first.Date.Format("Jan 2"), "→ "+last.Date.Format("Jan 2, 2006"), styles.FaintText, styles.FaintText)+
			bg.Spaces(2)+bg.Pair("latest", format.PrettyDelta(&latest), styles.FaintText, styles.Text)+
			bg.Spaces(2)+bg.Pair("peak", format.Compact(peak(values)), styles.FaintText, styles.Text))
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, false)
}

func (m Model) paneBg(focused bool) string {
	if focused {
		return m.theme.FocusBg
	}
	return m.theme.SurfaceAlt
}

func (m Model) selectedRow(text string, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SelectionBg)).
		Foreground(lipgloss.Color(m.theme.SelectionText)).
		Width(width).
		Render(text)
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐. Focused boxes use the focus colors.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor, bgColor := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColor, bgColor = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	top := bg.Render("┌"+strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad)+"┐", borderStyle)
	bottom := bg.Render("└"+strings.Repeat("─", innerWidth)+"┘", borderStyle)

	clipStyle := lipgloss.NewStyle().MaxWidth(innerWidth)
	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColor))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight+2)
	lines = append(lines, top)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = contentStyle.Render(clipStyle.Render(line))
		lines = append(lines, bg.Render("│", borderStyle)+line+bg.Render("│", borderStyle))
	}
	lines = append(lines, bottom)
	return strings.Join(lines, "\n")
}
