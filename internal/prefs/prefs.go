package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/covidboard/internal/config"
	"github.com/five82/covidboard/internal/covid"
)

// Prefs holds user preferences that survive restarts.
type Prefs struct {
	Theme  string       `toml:"theme"`
	Metric covid.Metric `toml:"metric"`
}

const (
	defaultPrefsPath = "~/.config/covidboard/prefs.toml"
	defaultTheme     = "Dracula"
)

// DefaultPath returns the unexpanded location of the prefs file.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, Metric: covid.MetricCases}
}

// Load reads the prefs file. A missing, unreadable or malformed file yields
// defaults and a nil error; prefs never block startup. Fields are checked
// one by one, so a bad metric does not discard a good theme.
func Load(path string) (Prefs, error) {
	resolved, err := resolve(path)
	if err != nil {
		return Default(), nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default(), nil
	}

	var stored Prefs
	if err := toml.Unmarshal(data, &stored); err != nil {
		return Default(), nil
	}
	return stored.normalized(), nil
}

func (p Prefs) normalized() Prefs {
	out := Default()
	if theme := strings.TrimSpace(p.Theme); theme != "" {
		out.Theme = theme
	}
	if m, err := covid.ParseMetric(string(p.Metric)); err == nil {
		out.Metric = m
	}
	return out
}

// Save writes p to path, creating parent directories as needed. The file is
// replaced atomically so a crash mid-write leaves the old prefs intact.
func Save(path string, p Prefs) error {
	resolved, err := resolve(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
