package footprint

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/gideongrinberg/tesslocate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestBuildIndex(t *testing.T) {
	t.Run("single footprint", func(t *testing.T) {
		ix, stats := BuildIndex([]domain.FootprintRecord{
			{ObsID: "obs_0001", Region: "POLYGON 10 10 10 20 20 20 20 10"},
		}, discardLogger())

		assert.Equal(t, 1, stats.Loaded)
		assert.Equal(t, 0, stats.Skipped)
		assert.Equal(t, []string{"obs_0001"}, ix.Query(pointAt(15, 15)))
		assert.Empty(t, ix.Query(pointAt(50, 50)))
	})

	t.Run("malformed record skipped, build continues", func(t *testing.T) {
		ix, stats := BuildIndex([]domain.FootprintRecord{
			{ObsID: "obs_0001", Region: "POLYGON 10 10 10 20 20 20 20 10"},
			{ObsID: "obs_bad", Region: "POLYGON 10 10 10"},
			{ObsID: "obs_0002", Region: "POLYGON 30 10 30 20 40 20 40 10"},
		}, discardLogger())

		assert.Equal(t, 2, stats.Loaded)
		assert.Equal(t, 1, stats.Skipped)
		assert.Equal(t, []string{"obs_bad"}, stats.SkippedIDs)
		assert.Equal(t, 2, ix.Len())

		assert.Equal(t, []string{"obs_0001"}, ix.Query(pointAt(15, 15)))
		assert.Equal(t, []string{"obs_0002"}, ix.Query(pointAt(35, 15)))
	})

	t.Run("empty catalog", func(t *testing.T) {
		ix, stats := BuildIndex(nil, discardLogger())
		assert.Equal(t, 0, stats.Loaded)
		assert.Empty(t, ix.Query(pointAt(0, 0)))
	})

	t.Run("all records invalid", func(t *testing.T) {
		ix, stats := BuildIndex([]domain.FootprintRecord{
			{ObsID: "a", Region: "CIRCLE 1 2 3"},
			{ObsID: "b", Region: "POLYGON x y"},
		}, discardLogger())
		assert.Equal(t, 0, stats.Loaded)
		assert.Equal(t, 2, stats.Skipped)
		assert.Empty(t, ix.Query(pointAt(0, 0)))
	})
}

func TestIndexQuery(t *testing.T) {
	t.Run("overlapping footprints report both, in catalog order", func(t *testing.T) {
		ix, _ := BuildIndex([]domain.FootprintRecord{
			{ObsID: "obs_0002", Region: "POLYGON 12 12 12 25 25 25 25 12"},
			{ObsID: "obs_0001", Region: "POLYGON 10 10 10 20 20 20 20 10"},
		}, discardLogger())

		got := ix.Query(pointAt(15, 15))
		assert.Equal(t, []string{"obs_0002", "obs_0001"}, got)
	})

	t.Run("duplicate identifiers are kept per record", func(t *testing.T) {
		ix, _ := BuildIndex([]domain.FootprintRecord{
			{ObsID: "obs_0001", Region: "POLYGON 10 10 10 20 20 20 20 10"},
			{ObsID: "obs_0001", Region: "POLYGON 12 12 12 25 25 25 25 12"},
		}, discardLogger())

		assert.Equal(t, []string{"obs_0001", "obs_0001"}, ix.Query(pointAt(15, 15)))
	})

	t.Run("footprint straddling the RA seam", func(t *testing.T) {
		ix, _ := BuildIndex([]domain.FootprintRecord{
			{ObsID: "seam", Region: "POLYGON 355 -5 5 -5 5 5 355 5"},
		}, discardLogger())

		assert.Equal(t, []string{"seam"}, ix.Query(pointAt(0, 0)))
		assert.Equal(t, []string{"seam"}, ix.Query(pointAt(359.5, 2)))
		assert.Equal(t, []string{"seam"}, ix.Query(pointAt(3, -3)))
		assert.Empty(t, ix.Query(pointAt(10, 0)))
		assert.Empty(t, ix.Query(pointAt(180, 0)))
	})

	t.Run("footprint around the north pole", func(t *testing.T) {
		ix, _ := BuildIndex([]domain.FootprintRecord{
			{ObsID: "polar", Region: "POLYGON 0 80 90 80 180 80 270 80"},
		}, discardLogger())

		assert.Equal(t, []string{"polar"}, ix.Query(pointAt(45, 89)))
		assert.Equal(t, []string{"polar"}, ix.Query(pointAt(222, 88)))
		assert.Empty(t, ix.Query(pointAt(45, 60)))
		assert.Empty(t, ix.Query(pointAt(45, -89)))
	})

	t.Run("grid prefilter never drops true matches", func(t *testing.T) {
		// Tile a band of sky and check every footprint is found from its own
		// center, which exercises many distinct grid cells.
		var records []domain.FootprintRecord
		for i := 0; i < 24; i++ {
			ra := float64(i * 15)
			records = append(records, domain.FootprintRecord{
				ObsID:  fmt.Sprintf("tile_%02d", i),
				Region: fmt.Sprintf("POLYGON %v 30 %v 30 %v 45 %v 45", ra, ra+14, ra+14, ra),
			})
		}
		ix, stats := BuildIndex(records, discardLogger())
		require.Equal(t, 24, stats.Loaded)

		for i := 0; i < 24; i++ {
			center := pointAt(float64(i*15)+7, 37.5)
			got := ix.Query(center)
			assert.Contains(t, got, fmt.Sprintf("tile_%02d", i), "tile %d center", i)
		}
	})

	t.Run("concurrent queries are race-free and consistent", func(t *testing.T) {
		ix, _ := BuildIndex([]domain.FootprintRecord{
			{ObsID: "obs_0001", Region: "POLYGON 10 10 10 20 20 20 20 10"},
		}, discardLogger())

		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 500; i++ {
					assert.Equal(t, []string{"obs_0001"}, ix.Query(pointAt(15, 15)))
					assert.Empty(t, ix.Query(pointAt(200, -40)))
				}
			}()
		}
		wg.Wait()
	})
}
