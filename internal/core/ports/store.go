package ports

import "go.trai.ch/reach/internal/core/domain"

// ReportStore defines the interface for storing and retrieving analysis reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Get retrieves the report for a fingerprint.
	// Returns nil, nil if not found.
	Get(fingerprint string) (*domain.Report, error)

	// Put stores the report under its fingerprint.
	Put(report domain.Report) error

	// Clear removes every stored report.
	Clear() error
}

// ReportStoreFactory opens the report store backed by the file at path.
type ReportStoreFactory func(path string) (ReportStore, error)
