package ports

import "go.trai.ch/reach/internal/core/domain"

// TypeGraph is the read-only view of a schema that the reachability walk consumes.
// *domain.Schema implements it.
//
//go:generate go run go.uber.org/mock/mockgen -source=type_graph.go -destination=mocks/mock_type_graph.go -package=mocks
type TypeGraph interface {
	// RootType returns the root type for op, or false when the schema has none.
	RootType(op domain.Operation) (domain.NamedType, bool)
	// Lookup resolves a type by name, or returns false when it is not declared.
	Lookup(name domain.InternedString) (domain.NamedType, bool)
	// PossibleTypes returns every type implementing the named interface.
	PossibleTypes(iface domain.InternedString) []domain.NamedType
}
