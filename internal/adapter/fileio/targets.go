// Package fileio reads target batches from CSV and writes located results to
// CSV or JSON. The core never touches files; this adapter owns all tabular
// I/O for the CLI.
package fileio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gideongrinberg/tesslocate/internal/domain"
)

// ReadTargets reads a target CSV with header columns ID, ra, and dec
// (case-insensitive, any order; extra columns are ignored). Every row must
// carry parseable coordinates; a bad row is an input error naming its line.
func ReadTargets(path string) ([]domain.Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open target file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read target header: %w", err)
	}

	idCol, raCol, decCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "id":
			idCol = i
		case "ra":
			raCol = i
		case "dec":
			decCol = i
		}
	}
	if idCol < 0 || raCol < 0 || decCol < 0 {
		return nil, fmt.Errorf("target file %s must have ID, ra and dec columns (got %v)", path, header)
	}

	var targets []domain.Target
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read target file: %w", err)
		}
		line++

		ra, err := strconv.ParseFloat(strings.TrimSpace(row[raCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid ra %q", line, row[raCol])
		}
		dec, err := strconv.ParseFloat(strings.TrimSpace(row[decCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid dec %q", line, row[decCol])
		}

		targets = append(targets, domain.Target{
			ID:  strings.TrimSpace(row[idCol]),
			RA:  ra,
			Dec: dec,
		})
	}
	return targets, nil
}
