package domain

import "time"

// Report is the outcome of a reachability analysis over one schema.
type Report struct {
	// Fingerprint identifies the schema sources and retain list the report was computed for.
	Fingerprint string `json:"fingerprint"`
	// Reachable lists every type reached from the roots, sorted.
	Reachable []string `json:"reachable"`
	// Unreachable lists declared, non-built-in, non-ignored types that were not reached, sorted.
	Unreachable []string `json:"unreachable"`
	// Total is the number of declared non-built-in types.
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// HasUnreachable reports whether any declared type was not reached.
func (r *Report) HasUnreachable() bool {
	return len(r.Unreachable) > 0
}
