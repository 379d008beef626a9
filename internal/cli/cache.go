package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gideongrinberg/tesslocate/internal/adapter/mast"
	"github.com/gideongrinberg/tesslocate/internal/observability"
)

var flagCacheClear bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the local footprint cache",
	Args:  cobra.NoArgs,
	RunE:  runCache,
}

func init() {
	cacheCmd.Flags().BoolVar(&flagCacheClear, "clear", false, "remove the cached footprint catalog")
	rootCmd.AddCommand(cacheCmd)
}

func runCache(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)

	client := mast.NewClient(cfg.FootprintURL, cfg.HTTPTimeout, logger)
	store, err := mast.NewStore(cfg.CacheDir, client, logger)
	if err != nil {
		return err
	}

	if flagCacheClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("cleared footprint cache")
		return nil
	}

	info, err := store.Stat()
	if err != nil {
		return err
	}
	if !info.Exists {
		fmt.Printf("no footprint cache at %s\n", info.Path)
		return nil
	}
	fmt.Printf("path: %s\n", info.Path)
	fmt.Printf("size: %d bytes\n", info.Size)
	fmt.Printf("age:  %s\n", time.Since(info.ModTime).Round(time.Second))
	return nil
}
