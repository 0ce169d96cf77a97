package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/covidboard/internal/covid"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != Default() {
		t.Fatalf("Load = %+v, want %+v", p, Default())
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "covidboard")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Slate\"\nmetric = \"Deaths\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Slate")
	}
	if p.Metric != "deaths" {
		t.Fatalf("Metric = %q, want %q", p.Metric, "deaths")
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	p := Prefs{Theme: "Slate", Metric: "recovered"}
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded != p {
		t.Fatalf("Load = %+v, want %+v", loaded, p)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	prefsFile := filepath.Join(dir, "prefs.toml")

	for _, theme := range []string{"Slate", "Dracula"} {
		if err := Save(prefsFile, Prefs{Theme: theme, Metric: "cases"}); err != nil {
			t.Fatalf("Save(%s) returned error: %v", theme, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.toml" {
		t.Fatalf("dir entries = %v, want only prefs.toml", entries)
	}
}

func TestLoad_FallbacksPerField(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantTheme  string
		wantMetric covid.Metric
	}{
		{name: "empty theme", body: "theme = \"\"\nmetric = \"deaths\"\n", wantTheme: defaultTheme, wantMetric: "deaths"},
		{name: "unknown metric", body: "theme = \"Slate\"\nmetric = \"vaccines\"\n", wantTheme: "Slate", wantMetric: "cases"},
		{name: "invalid toml", body: "not valid toml {{{\n", wantTheme: defaultTheme, wantMetric: "cases"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(prefsFile, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			p, err := Load(prefsFile)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if p.Theme != tt.wantTheme {
				t.Fatalf("Theme = %q, want %q", p.Theme, tt.wantTheme)
			}
			if p.Metric != tt.wantMetric {
				t.Fatalf("Metric = %q, want %q", p.Metric, tt.wantMetric)
			}
		})
	}
}
