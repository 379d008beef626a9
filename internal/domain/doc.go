// Package domain models TESS full-frame-image (FFI) footprint data and the
// target batches located against it.
//
// # Data Source
//
// Footprints come from the public MAST footprint cache,
// https://stpubdata.s3.amazonaws.com/tess/public/footprints/tess_ffi_footprint_cache.json,
// a columnar JSON document with two parallel arrays:
//
//	"obs_id":   ["tess_s0001-1-1", ...]
//	"s_region": ["POLYGON 324.56 -28.1 ...", ...]
//
// Each s_region entry describes one camera/CCD coverage polygon as a flat
// sequence of RA/Dec vertex pairs in degrees. Footprints overlap freely: a
// sky position observed in several sectors (or on overlapping CCD edges)
// belongs to every matching footprint at once.
//
// # Observation ID Convention
//
// FFI observation IDs follow the form
//
//	tess_sNNNN-C-D
//
// where NNNN is the zero-padded sector number, C the camera (1-4) and D the
// CCD (1-4). ParseObservationID decodes this form; IDs that do not match it
// are rejected rather than sliced blindly.
package domain
