package domain

// RefKind distinguishes a named reference from its List and NonNull wrappers.
type RefKind uint8

const (
	// RefNamed references a named type directly.
	RefNamed RefKind = iota
	// RefList wraps another reference in a list.
	RefList
	// RefNonNull wraps another reference as non-nullable.
	RefNonNull
)

// TypeRef is a reference to a named type, possibly wrapped in any nesting of
// List and NonNull modifiers.
type TypeRef struct {
	Kind   RefKind
	Name   InternedString // set when Kind is RefNamed
	OfType *TypeRef       // set for wrappers
}

// Named returns a reference to the named type.
func Named(name string) TypeRef {
	return TypeRef{Kind: RefNamed, Name: NewInternedString(name)}
}

// ListOf wraps ref in a list.
func ListOf(ref TypeRef) TypeRef {
	return TypeRef{Kind: RefList, OfType: &ref}
}

// NonNullOf wraps ref as non-nullable.
func NonNullOf(ref TypeRef) TypeRef {
	return TypeRef{Kind: RefNonNull, OfType: &ref}
}

// NamedType strips every wrapper and returns the innermost type name.
// A malformed wrapper without an inner reference yields the zero name.
func (r TypeRef) NamedType() InternedString {
	if r.Kind == RefNamed {
		return r.Name
	}
	if r.OfType == nil {
		return InternedString{}
	}
	return r.OfType.NamedType()
}

// String renders the reference in SDL notation, e.g. [User!]!.
func (r TypeRef) String() string {
	switch r.Kind {
	case RefList:
		if r.OfType == nil {
			return "[]"
		}
		return "[" + r.OfType.String() + "]"
	case RefNonNull:
		if r.OfType == nil {
			return "!"
		}
		return r.OfType.String() + "!"
	default:
		return r.Name.String()
	}
}
