package ports

import (
	"context"
	"io"

	"go.trai.ch/reach/internal/core/domain"
)

// SchemaLoader builds a schema from SDL files.
//
//go:generate go run go.uber.org/mock/mockgen -source=schema.go -destination=mocks/mock_schema.go -package=mocks
type SchemaLoader interface {
	// Load parses and validates the files at paths as one schema.
	Load(ctx context.Context, paths []string) (*domain.Schema, error)
}

// SchemaPrinter writes a schema as SDL.
type SchemaPrinter interface {
	// Print writes the schema to w, keeping only the types in keep.
	Print(w io.Writer, schema *domain.Schema, keep *domain.ReachableSet) error
}
