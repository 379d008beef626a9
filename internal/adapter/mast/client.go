// Package mast fetches the public TESS FFI footprint catalog from the MAST
// archive's S3 bucket and caches it on disk between runs.
package mast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gideongrinberg/tesslocate/internal/domain"
)

// DefaultCatalogURL is the public footprint cache published by STScI.
const DefaultCatalogURL = "https://stpubdata.s3.amazonaws.com/tess/public/footprints/tess_ffi_footprint_cache.json"

// Client downloads the raw footprint catalog.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a catalog client. An empty url selects DefaultCatalogURL.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if url == "" {
		url = DefaultCatalogURL
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchCatalog downloads the raw catalog JSON.
func (c *Client) FetchCatalog(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.logger.Info("downloading footprint catalog", "url", c.url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download footprint catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("footprint catalog download: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read footprint catalog: %w", err)
	}
	return data, nil
}

// catalogDocument is the columnar JSON shape of the footprint cache file:
// two parallel arrays pairing observation IDs with region polygons.
type catalogDocument struct {
	ObsIDs  []string `json:"obs_id"`
	Regions []string `json:"s_region"`
}

// DecodeCatalog parses the columnar catalog JSON into footprint records.
func DecodeCatalog(data []byte) ([]domain.FootprintRecord, error) {
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode footprint catalog: %w", err)
	}
	if len(doc.ObsIDs) != len(doc.Regions) {
		return nil, fmt.Errorf("footprint catalog is inconsistent: %d obs_id entries but %d s_region entries",
			len(doc.ObsIDs), len(doc.Regions))
	}

	records := make([]domain.FootprintRecord, len(doc.ObsIDs))
	for i := range doc.ObsIDs {
		records[i] = domain.FootprintRecord{ObsID: doc.ObsIDs[i], Region: doc.Regions[i]}
	}
	return records, nil
}
