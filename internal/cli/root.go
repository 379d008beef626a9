// Package cli defines the tesslocate command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gideongrinberg/tesslocate/internal/config"
)

var (
	flagConfig      string
	flagCacheDir    string
	flagWorkers     int
	flagRefresh     bool
	flagMetricsAddr string
)

var rootCmd = &cobra.Command{
	Use:   "tesslocate <input.csv> <output.{csv,json}>",
	Short: "Locate targets on TESS full-frame images",
	Long: `tesslocate reads a CSV of targets (columns ID, ra, dec in degrees) and
reports, for each one, every TESS FFI footprint whose sky coverage contains
it. The footprint catalog is downloaded from MAST on first use and cached
locally.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true, // don't print usage on operational errors
	SilenceErrors: true,
	RunE:          runLocate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagCacheDir, "cache-dir", "", "footprint cache directory (default: per-user cache dir)")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "query workers (0 = one per CPU)")
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "re-download the footprint catalog even when cached")
	rootCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "serve /metrics, /healthz and /readyz on this address during the run")
}

// Execute is called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves the configuration and applies flag overrides, which win
// over both the environment and the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagCacheDir != "" {
		cfg.CacheDir = flagCacheDir
	}
	if flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}
	if flagMetricsAddr != "" {
		cfg.MetricsAddr = flagMetricsAddr
	}
	return cfg, nil
}
