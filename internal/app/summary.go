package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/sync/errgroup"

	"github.com/five82/covidboard/internal/covid"
	"github.com/five82/covidboard/internal/diseasesh"
	"github.com/five82/covidboard/internal/format"
)

// SummaryOptions control the non-interactive summary report.
type SummaryOptions struct {
	Country string // empty or "worldwide" for the global summary
	Top     int    // table rows; zero or less prints every country
	Metric  covid.Metric
}

// Summary fetches the selected summary and the country list concurrently and
// writes a plain report to w.
func Summary(ctx context.Context, fetcher diseasesh.Fetcher, opts SummaryOptions, w io.Writer) error {
	metric := opts.Metric
	if !metric.Valid() {
		metric = covid.MetricCases
	}
	code := strings.TrimSpace(opts.Country)
	worldwide := code == "" || strings.EqualFold(code, covid.Worldwide)

	var (
		label     = covid.WorldwideOption.Label
		summary   diseasesh.Summary
		countries []diseasesh.Country
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if worldwide {
			s, err := fetcher.FetchGlobal(gctx)
			if err != nil {
				return fmt.Errorf("fetch worldwide summary: %w", err)
			}
			summary = s
			return nil
		}
		c, err := fetcher.FetchCountry(gctx, code)
		if err != nil {
			return fmt.Errorf("fetch summary for %s: %w", code, err)
		}
		summary, label = c.Summary, c.Name
		return nil
	})
	g.Go(func() error {
		list, err := fetcher.FetchCountries(gctx)
		if err != nil {
			return fmt.Errorf("fetch countries: %w", err)
		}
		countries = covid.SortByCases(list)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	_, err := io.WriteString(w, renderSummary(label, summary, countries, metric, opts.Top))
	return err
}

func renderSummary(label string, s diseasesh.Summary, ranked []diseasesh.Country, metric covid.Metric, top int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(label))
	if ts := s.UpdatedAt(); !ts.IsZero() {
		b.WriteString("  (updated " + ts.Local().Format("2006-01-02 15:04") + ")")
	}
	b.WriteString("\n")

	for _, m := range covid.Metrics() {
		marker := " "
		if m == metric {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %-18s %10s  %s total\n",
			marker, m.Title(), format.PrettyDelta(m.Today(s)), format.Total(m.Total(s)))
	}
	b.WriteString("\n")

	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}
	headers := []string{"#", "Country", "Cases"}
	if metric != covid.MetricCases {
		headers = append(headers, metric.Title())
	}
	headers = append(headers, "Today")

	rows := make([][]string, 0, len(ranked))
	for i, c := range ranked {
		row := []string{fmt.Sprint(i + 1), c.Name, format.Total(c.Cases)}
		if metric != covid.MetricCases {
			row = append(row, format.Total(metric.Total(c.Summary)))
		}
		row = append(row, format.PrettyDelta(metric.Today(c.Summary)))
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if col != 1 {
				style = style.Align(lipgloss.Right)
			}
			if row == table.HeaderRow {
				style = style.Bold(true)
			}
			return style
		})
	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}
