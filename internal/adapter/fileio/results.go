package fileio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gideongrinberg/tesslocate/internal/domain"
)

// WriteResults writes results to path in the format chosen by its extension:
// .json for an ordered array of result objects, .csv for one row per
// (target, observation) pair with the observation ID expanded into sector,
// camera, and CCD columns.
func WriteResults(path string, results []domain.TargetResult) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return writeJSON(path, results)
	case ".csv":
		return writeCSV(path, results)
	default:
		return fmt.Errorf("unsupported output format %q (use .csv or .json)", filepath.Ext(path))
	}
}

func writeJSON(path string, results []domain.TargetResult) error {
	data, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

func writeCSV(path string, results []domain.TargetResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"ID", "ra", "dec", "sector", "camera", "ccd"}); err != nil {
		return fmt.Errorf("write results header: %w", err)
	}

	for _, res := range results {
		ra := strconv.FormatFloat(res.RA, 'g', -1, 64)
		dec := strconv.FormatFloat(res.Dec, 'g', -1, 64)
		for _, obsID := range res.Observations {
			obs, err := domain.ParseObservationID(obsID)
			if err != nil {
				return fmt.Errorf("target %s: %w", res.ID, err)
			}
			row := []string{
				res.ID, ra, dec,
				strconv.Itoa(obs.Sector),
				strconv.Itoa(obs.Camera),
				strconv.Itoa(obs.CCD),
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write results row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush results: %w", err)
	}
	return f.Close()
}
