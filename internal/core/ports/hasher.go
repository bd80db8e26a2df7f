package ports

import "go.trai.ch/reach/internal/core/domain"

// Hasher defines the interface for computing schema fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint identifies the schema sources together with the retained
	// type names and ignore patterns that shape a report.
	Fingerprint(schema *domain.Schema, retain, ignore []string) (string, error)
}
