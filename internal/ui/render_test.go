package ui

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/five82/covidboard/internal/covid"
	"github.com/five82/covidboard/internal/diseasesh"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		width  int
		rows   int
		want   []string
	}{
		{name: "single row", values: []int64{0, 4, 8}, width: 3, rows: 1, want: []string{" ▄█"}},
		{name: "negative drawn as zero", values: []int64{-5, 8}, width: 2, rows: 1, want: []string{" █"}},
		{name: "two rows", values: []int64{8, 16}, width: 2, rows: 2, want: []string{" █", "██"}},
		{name: "tiny value still visible", values: []int64{1, 1000}, width: 2, rows: 1, want: []string{"▁█"}},
		{name: "empty", values: nil, width: 5, rows: 1, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sparkline(tt.values, tt.width, tt.rows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("sparkline() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResample(t *testing.T) {
	got := resample([]int64{1, 2, 3, 4}, 2)
	if !reflect.DeepEqual(got, []int64{1, 3}) {
		t.Fatalf("resample() = %v, want [1 3]", got)
	}
	short := []int64{7}
	if got := resample(short, 10); !reflect.DeepEqual(got, short) {
		t.Fatalf("resample() = %v, want %v", got, short)
	}
}

func TestFilterOptions(t *testing.T) {
	options := []covid.DropdownOption{
		covid.WorldwideOption,
		{Label: "France", Code: "FR"},
		{Label: "United States", Code: "US"},
		{Label: "Australia", Code: "AU"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"worldwide", "FR", "US", "AU"}},
		{query: "  STATES ", want: []string{"US"}},
		{query: "fr", want: []string{"FR"}},
		{query: "au", want: []string{"AU"}},
		{query: "us", want: []string{"US", "AU"}},
		{query: "zz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []string
			for _, opt := range filterOptions(options, tt.query) {
				got = append(got, opt.Code)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("filterOptions(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestWindowStart(t *testing.T) {
	tests := []struct {
		selected, total, visible, want int
	}{
		{selected: 0, total: 3, visible: 10, want: 0},
		{selected: 5, total: 20, visible: 10, want: 0},
		{selected: 12, total: 20, visible: 10, want: 3},
		{selected: 19, total: 20, visible: 10, want: 10},
		{selected: 3, total: 20, visible: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d/%d", tt.selected, tt.total, tt.visible), func(t *testing.T) {
			if got := windowStart(tt.selected, tt.total, tt.visible); got != tt.want {
				t.Fatalf("windowStart() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "parse", err: fmt.Errorf("wrap: %w", &diseasesh.ParseError{Op: "global", Err: errors.New("bad")}), want: "BAD DATA"},
		{name: "deadline", err: &diseasesh.NetworkError{Op: "global", Err: context.DeadlineExceeded}, want: "TIMEOUT"},
		{name: "refused", err: errors.New("dial tcp: connection refused"), want: "OFFLINE"},
		{name: "dns", err: errors.New("lookup disease.sh: no such host"), want: "OFFLINE"},
		{name: "status", err: &diseasesh.NetworkError{Op: "global", URL: "x", StatusCode: 500}, want: "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyError(tt.err); got != tt.want {
				t.Fatalf("classifyError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	tests := []struct {
		last time.Time
		want string
	}{
		{last: time.Time{}, want: ""},
		{last: now.Add(-10 * time.Second), want: "11:59:50 (now)"},
		{last: now.Add(-5 * time.Minute), want: "11:55:00 (5m ago)"},
		{last: now.Add(-3 * time.Hour), want: "09:00:00 (3h ago)"},
		{last: now.Add(-30 * time.Hour), want: "06:00:00"},
	}
	for _, tt := range tests {
		if got := formatTimestamp(tt.last, now); got != tt.want {
			t.Errorf("formatTimestamp(%v) = %q, want %q", tt.last, got, tt.want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Slate" {
		t.Fatalf("NextTheme(Dracula) = %q", got)
	}
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q", got)
	}
	if got := NextTheme("missing"); got != "Dracula" {
		t.Fatalf("NextTheme(missing) = %q", got)
	}
	if GetTheme("missing").Name != "Dracula" {
		t.Fatalf("GetTheme fallback should be Dracula")
	}
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, m := range covid.Metrics() {
			if theme.MetricColor(m) == "" {
				t.Fatalf("theme %s has no color for %s", name, m)
			}
		}
	}
}

func TestMarkerGlyph(t *testing.T) {
	if got := markerGlyph(0, 0); got != "·" {
		t.Fatalf("markerGlyph(0,0) = %q", got)
	}
	if got := markerGlyph(100, 100); got != "●" {
		t.Fatalf("markerGlyph(max) = %q", got)
	}
	if got := markerGlyph(10, 100); got != "·" {
		t.Fatalf("markerGlyph(small) = %q", got)
	}
}
