package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/covidboard/internal/app"
	"github.com/five82/covidboard/internal/covid"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "covidboard: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "covidboard",
		Short:         "Terminal dashboard for COVID-19 statistics from disease.sh",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/covidboard/config.toml)")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "prefs file (default ~/.config/covidboard/prefs.toml)")
	root.Flags().StringVar(&opts.ThemeName, "theme", "", "theme name, overrides the saved preference")

	root.AddCommand(newSummaryCmd(&opts))
	return root
}

func newSummaryCmd(root *app.Options) *cobra.Command {
	var (
		country string
		top     int
		metric  string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the current summary and top countries, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := covid.ParseMetric(metric)
			if err != nil {
				return err
			}

			rt, err := app.Bootstrap(root.ConfigPath)
			if err != nil {
				return err
			}
			defer rt.Close()

			return app.Summary(cmd.Context(), rt.Client, app.SummaryOptions{
				Country: country,
				Top:     top,
				Metric:  m,
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&country, "country", covid.Worldwide, "ISO2 code or country name")
	cmd.Flags().IntVar(&top, "top", 10, "number of countries to list (0 for all)")
	cmd.Flags().StringVar(&metric, "metric", string(covid.MetricCases), "cases, recovered or deaths")
	return cmd
}
