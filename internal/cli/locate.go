package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gideongrinberg/tesslocate/internal/adapter/fileio"
	"github.com/gideongrinberg/tesslocate/internal/adapter/httpapi"
	"github.com/gideongrinberg/tesslocate/internal/adapter/mast"
	"github.com/gideongrinberg/tesslocate/internal/batch"
	"github.com/gideongrinberg/tesslocate/internal/footprint"
	"github.com/gideongrinberg/tesslocate/internal/observability"
)

func runLocate(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("input file %s: %w", input, err)
	}
	// Reject an unusable output path before any parsing or network work.
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".csv", ".json":
	default:
		return fmt.Errorf("unsupported output format %q (use .csv or .json)", filepath.Ext(output))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ready := &httpapi.ReadyFlag{}
	if cfg.MetricsAddr != "" {
		srv := httpapi.NewServer(cfg.MetricsAddr, ready, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics server shutdown error", "error", err)
			}
		}()
	}

	targets, err := fileio.ReadTargets(input)
	if err != nil {
		return err
	}
	logger.Info("read targets", "path", input, "targets", len(targets))

	client := mast.NewClient(cfg.FootprintURL, cfg.HTTPTimeout, logger)
	store, err := mast.NewStore(cfg.CacheDir, client, logger)
	if err != nil {
		return err
	}
	records, err := store.Load(ctx, flagRefresh)
	if err != nil {
		return err
	}

	buildStart := time.Now()
	index, stats := footprint.BuildIndex(records, logger)
	buildSecs := time.Since(buildStart).Seconds()

	metrics.IndexBuildSeconds.Set(buildSecs)
	metrics.FootprintsLoaded.Set(float64(stats.Loaded))
	metrics.FootprintsSkipped.Set(float64(stats.Skipped))
	metrics.IndexReady.Set(1)
	ready.MarkReady()
	logger.Info("footprint index built",
		"footprints", stats.Loaded,
		"skipped", stats.Skipped,
		"seconds", buildSecs,
	)

	exec := batch.New(index, logger, metrics, cfg.Workers)
	results, err := exec.Run(ctx, targets, batch.LogProgress(logger))
	if err != nil {
		return err
	}

	if err := fileio.WriteResults(output, results); err != nil {
		return err
	}
	logger.Info("wrote results", "path", output, "targets", len(results))
	return nil
}
