package domain

// FootprintRecord pairs an observation identifier with its raw region text
// from the footprint cache. Identifiers are not guaranteed unique; records
// are addressed by their position in the catalog.
type FootprintRecord struct {
	ObsID  string
	Region string
}

// Target is one input row: an identifier and its sky coordinates in degrees.
type Target struct {
	ID  string  `json:"ID"`
	RA  float64 `json:"ra"`
	Dec float64 `json:"dec"`
}

// TargetResult carries a target together with the identifiers of every
// footprint whose interior contains it, in ascending catalog order.
// Observations is empty, never nil, when nothing matches.
type TargetResult struct {
	ID           string   `json:"ID"`
	RA           float64  `json:"ra"`
	Dec          float64  `json:"dec"`
	Observations []string `json:"observations"`
}
