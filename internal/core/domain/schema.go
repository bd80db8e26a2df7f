package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Operation is one of the three root operation kinds.
type Operation uint8

const (
	// OperationQuery is the query root.
	OperationQuery Operation = iota
	// OperationMutation is the mutation root.
	OperationMutation
	// OperationSubscription is the subscription root.
	OperationSubscription
)

// Operations returns every operation kind in root order.
func Operations() []Operation {
	return []Operation{OperationQuery, OperationMutation, OperationSubscription}
}

// String returns the SDL keyword of the operation.
func (op Operation) String() string {
	switch op {
	case OperationQuery:
		return "query"
	case OperationMutation:
		return "mutation"
	case OperationSubscription:
		return "subscription"
	default:
		return "unknown"
	}
}

// SchemaSource is one SDL document a schema was built from.
type SchemaSource struct {
	Name  string
	Input string
}

// Schema is an in-memory GraphQL type graph.
// It is built once and then only read.
type Schema struct {
	types           map[InternedString]NamedType
	builtins        map[InternedString]bool
	implementations map[InternedString][]InternedString
	roots           [3]InternedString
	sources         []SchemaSource
}

// NewSchema creates a new empty Schema.
func NewSchema() *Schema {
	return &Schema{
		types:           make(map[InternedString]NamedType),
		builtins:        make(map[InternedString]bool),
		implementations: make(map[InternedString][]InternedString),
	}
}

// AddType adds a declared type to the schema.
// It returns an error if a type with the same name already exists.
func (s *Schema) AddType(t NamedType) error {
	name := t.TypeName()
	if _, exists := s.types[name]; exists {
		return zerr.With(ErrTypeAlreadyExists, "type_name", name.String())
	}
	s.types[name] = t

	// Only object types are possible types. Interfaces implementing an
	// interface are reached through their own references.
	if obj, ok := t.(*ObjectType); ok {
		for _, iface := range obj.Interfaces {
			s.implementations[iface] = insertSorted(s.implementations[iface], name)
		}
	}
	return nil
}

// AddBuiltinType adds a type defined by the GraphQL specification itself
// (String, __Schema, ...). Built-in types are walked like any other type but
// are never reported as unreachable.
func (s *Schema) AddBuiltinType(t NamedType) error {
	if err := s.AddType(t); err != nil {
		return err
	}
	s.builtins[t.TypeName()] = true
	return nil
}

// SetRoot designates name as the root type for op.
func (s *Schema) SetRoot(op Operation, name string) {
	if int(op) >= len(s.roots) {
		return
	}
	s.roots[op] = NewInternedString(name)
}

// RootType returns the root type for op.
// It returns false when no root is designated or the root names an unknown type.
func (s *Schema) RootType(op Operation) (NamedType, bool) {
	if int(op) >= len(s.roots) || s.roots[op].IsZero() {
		return nil, false
	}
	return s.Lookup(s.roots[op])
}

// Lookup resolves a type by name.
func (s *Schema) Lookup(name InternedString) (NamedType, bool) {
	t, ok := s.types[name]
	return t, ok
}

// PossibleTypes returns every object type that declares the named interface
// among its interfaces, ordered by name.
func (s *Schema) PossibleTypes(iface InternedString) []NamedType {
	names := s.implementations[iface]
	res := make([]NamedType, 0, len(names))
	for _, name := range names {
		if t, ok := s.types[name]; ok {
			res = append(res, t)
		}
	}
	return res
}

// IsBuiltin reports whether the named type was added with AddBuiltinType.
func (s *Schema) IsBuiltin(name InternedString) bool {
	return s.builtins[name]
}

// Len returns the number of declared types, built-ins included.
func (s *Schema) Len() int {
	return len(s.types)
}

// Types returns an iterator over every declared type in name order.
func (s *Schema) Types() iter.Seq[NamedType] {
	names := make([]InternedString, 0, len(s.types))
	for name := range s.types {
		names = append(names, name)
	}
	slices.SortFunc(names, InternedString.Compare)

	return func(yield func(NamedType) bool) {
		for _, name := range names {
			if !yield(s.types[name]) {
				return
			}
		}
	}
}

// AddSource records an SDL document the schema was built from.
func (s *Schema) AddSource(src SchemaSource) {
	s.sources = append(s.sources, src)
}

// Sources returns the recorded SDL documents in insertion order.
func (s *Schema) Sources() []SchemaSource {
	return s.sources
}

func insertSorted(names []InternedString, name InternedString) []InternedString {
	i, found := slices.BinarySearchFunc(names, name, InternedString.Compare)
	if found {
		return names
	}
	return slices.Insert(names, i, name)
}
