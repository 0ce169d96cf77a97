package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/covidboard/internal/config"
	"github.com/five82/covidboard/internal/diseasesh"
	"github.com/five82/covidboard/internal/logging"
	"github.com/five82/covidboard/internal/prefs"
	"github.com/five82/covidboard/internal/state"
	"github.com/five82/covidboard/internal/ui"
)

// Options configure the covidboard application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/covidboard/prefs.toml
	ThemeName  string // overrides the stored theme when set
}

// Runtime bundles what every entry point needs: settings, a logger and an
// API client.
type Runtime struct {
	Config config.Config
	Logger *zap.Logger
	Client *diseasesh.Client

	closeLog func() error
}

// Close flushes and releases the log file.
func (r *Runtime) Close() error {
	if r == nil || r.closeLog == nil {
		return nil
	}
	return r.closeLog()
}

// Bootstrap loads configuration, opens the log file and builds the API
// client.
func Bootstrap(configPath string) (*Runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	client, err := diseasesh.NewClient(cfg.APIBaseURL, diseasesh.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("init api client: %w", err)
	}

	return &Runtime{Config: cfg, Logger: logger, Client: client, closeLog: closeLog}, nil
}

// newController builds the view-state controller over the runtime's client,
// starting on the stored metric.
func (r *Runtime) newController(p prefs.Prefs) *state.Controller {
	return state.NewController(r.Client,
		state.WithLogger(r.Logger.Named("state")),
		state.WithHistoryDays(r.Config.HistoryDays),
		state.WithMetric(p.Metric),
	)
}

// Run boots the dashboard until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := Bootstrap(opts.ConfigPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	themeName := userPrefs.Theme
	if opts.ThemeName != "" {
		themeName = opts.ThemeName
	}

	ctrl := rt.newController(userPrefs)

	if rt.Config.MetricsAddr != "" {
		srv, err := StartMetricsServer(ctx, rt.Config.MetricsAddr, rt.Logger.Named("metrics"))
		if err != nil {
			return err
		}
		defer srv.Close()
	}

	rt.Logger.Info("starting dashboard",
		zap.String("api", rt.Client.BaseURL()),
		zap.Duration("timeout", rt.Config.RequestTimeout),
		zap.String("theme", themeName),
		zap.String("metric", string(ctrl.Snapshot().Metric)))

	err = ui.Run(ui.Options{
		Context:    ctx,
		Controller: ctrl,
		Logger:     rt.Logger.Named("ui"),
		ThemeName:  themeName,
		PrefsPath:  prefsPath,
		LogPath:    rt.Config.LogFile,
	})
	if err != nil {
		rt.Logger.Error("dashboard exited with error", zap.Error(err))
		return fmt.Errorf("run dashboard: %w", err)
	}
	rt.Logger.Info("dashboard exited")
	return nil
}
