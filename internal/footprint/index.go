package footprint

import (
	"log/slog"
	"math"

	"github.com/gideongrinberg/tesslocate/internal/domain"
	"github.com/gideongrinberg/tesslocate/internal/sphere"
)

// Grid resolution of the coarse pruning layer: 32 declination bands by 64
// right-ascension cells, about 5.6 degrees per cell. TESS footprints span
// roughly 12x12 degrees, so a polygon lands in a handful of cells and a
// query touches a small fraction of the catalog.
const (
	gridDecBands = 32
	gridRACells  = 64
)

// BuildStats reports diagnostics from an index build.
type BuildStats struct {
	Loaded     int
	Skipped    int
	SkippedIDs []string
}

// Index answers "which footprints contain this point" over a parsed footprint
// catalog. It is immutable after BuildIndex and safe for concurrent Query
// calls without locking.
//
// Queries run in two phases: a coarse cell grid keyed by declination band and
// right-ascension cell prunes to candidate polygons, then each candidate is
// verified against its bounding cap and finally the exact ring containment
// test. The pruning layers over-approximate but never drop a true match.
type Index struct {
	names []string
	rings []Ring
	caps  []sphere.Cap
	cells [][]int32
}

// BuildIndex parses every record and indexes the valid ones. Records whose
// region fails to parse are logged, counted in the returned stats, and
// skipped; a malformed record never aborts the build. An empty or fully
// invalid catalog yields an index that matches nothing.
func BuildIndex(records []domain.FootprintRecord, logger *slog.Logger) (*Index, BuildStats) {
	ix := &Index{
		names: make([]string, 0, len(records)),
		rings: make([]Ring, 0, len(records)),
		caps:  make([]sphere.Cap, 0, len(records)),
		cells: make([][]int32, gridDecBands*gridRACells),
	}
	var stats BuildStats

	for _, rec := range records {
		ring, err := ParseRegion(rec.Region)
		if err != nil {
			logger.Warn("skipping unparseable footprint",
				"obs_id", rec.ObsID,
				"error", err,
			)
			stats.Skipped++
			stats.SkippedIDs = append(stats.SkippedIDs, rec.ObsID)
			continue
		}
		id := int32(len(ix.names))
		ix.names = append(ix.names, rec.ObsID)
		ix.rings = append(ix.rings, ring)
		bound := ring.BoundingCap()
		ix.caps = append(ix.caps, bound)
		ix.insert(id, bound)
	}

	stats.Loaded = len(ix.names)
	return ix, stats
}

// Len returns the number of indexed footprints.
func (ix *Index) Len() int {
	return len(ix.names)
}

// Query returns the identifiers of every footprint whose interior contains p,
// in ascending catalog order. Zero and many matches are both ordinary
// outcomes; the result is nil when nothing matches.
func (ix *Index) Query(p sphere.Point) []string {
	var matches []string
	for _, i := range ix.cells[cellIndex(p)] {
		if !ix.caps[i].Contains(p) {
			continue
		}
		if !ix.rings[i].ContainsPoint(p) {
			continue
		}
		matches = append(matches, ix.names[i])
	}
	return matches
}

// insert registers a footprint's bounding cap in every grid cell it may
// touch. The covered ranges are computed conservatively so the grid can
// over-approximate but never miss a containing polygon.
func (ix *Index) insert(id int32, c sphere.Cap) {
	latMin, latMax, lonHalf, fullLon := c.LatLonBounds()
	bandLo := bandIndex(latMin)
	bandHi := bandIndex(latMax)

	if fullLon {
		for band := bandLo; band <= bandHi; band++ {
			for cell := 0; cell < gridRACells; cell++ {
				ix.appendCell(band, cell, id)
			}
		}
		return
	}

	_, lon := c.Center.LatLon()
	span := 2 * lonHalf
	// One extra cell on each side covers partial overlap at the edges.
	n := int(span/(2*math.Pi)*gridRACells) + 2
	if n > gridRACells {
		n = gridRACells
	}
	start := raIndex(lon - lonHalf)
	for band := bandLo; band <= bandHi; band++ {
		for j := 0; j < n; j++ {
			ix.appendCell(band, (start+j)%gridRACells, id)
		}
	}
}

func (ix *Index) appendCell(band, cell int, id int32) {
	k := band*gridRACells + cell
	ix.cells[k] = append(ix.cells[k], id)
}

func cellIndex(p sphere.Point) int {
	lat, lon := p.LatLon()
	return bandIndex(lat)*gridRACells + raIndex(lon)
}

func bandIndex(lat float64) int {
	i := int((lat + math.Pi/2) / math.Pi * gridDecBands)
	if i < 0 {
		return 0
	}
	if i >= gridDecBands {
		return gridDecBands - 1
	}
	return i
}

func raIndex(lon float64) int {
	for lon < -math.Pi {
		lon += 2 * math.Pi
	}
	for lon >= math.Pi {
		lon -= 2 * math.Pi
	}
	i := int((lon + math.Pi) / (2 * math.Pi) * gridRACells)
	if i < 0 {
		return 0
	}
	if i >= gridRACells {
		return gridRACells - 1
	}
	return i
}
