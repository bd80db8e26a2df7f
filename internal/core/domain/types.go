package domain

// Kind identifies the variant of a NamedType.
type Kind uint8

const (
	// KindScalar is a leaf scalar type.
	KindScalar Kind = iota + 1
	// KindObject is an output object type.
	KindObject
	// KindInterface is an abstract interface type.
	KindInterface
	// KindUnion is an abstract union type.
	KindUnion
	// KindEnum is a leaf enum type.
	KindEnum
	// KindInputObject is an input object type.
	KindInputObject
)

// String returns the GraphQL introspection name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "SCALAR"
	case KindObject:
		return "OBJECT"
	case KindInterface:
		return "INTERFACE"
	case KindUnion:
		return "UNION"
	case KindEnum:
		return "ENUM"
	case KindInputObject:
		return "INPUT_OBJECT"
	default:
		return "UNKNOWN"
	}
}

// NamedType is a type declared by name in a schema.
// The set of implementations is closed to this package.
type NamedType interface {
	// TypeName returns the declared name.
	TypeName() InternedString
	// Kind returns the variant tag.
	Kind() Kind

	namedType()
}

// Field is an output field of an object or interface type.
type Field struct {
	Name      string
	Type      TypeRef
	Arguments []Argument
}

// Argument is an argument of an output field.
type Argument struct {
	Name string
	Type TypeRef
}

// InputField is a field of an input object type.
type InputField struct {
	Name string
	Type TypeRef
}

// ObjectType is a concrete output type with fields.
type ObjectType struct {
	Name       InternedString
	Fields     []Field
	Interfaces []InternedString
}

// InterfaceType is an abstract output type with fields.
type InterfaceType struct {
	Name       InternedString
	Fields     []Field
	Interfaces []InternedString
}

// UnionType is an abstract output type over a list of object types.
type UnionType struct {
	Name    InternedString
	Members []InternedString
}

// InputObjectType is a structured input type.
type InputObjectType struct {
	Name   InternedString
	Fields []InputField
}

// ScalarType is a leaf type.
type ScalarType struct {
	Name InternedString
}

// EnumType is a leaf type with a fixed set of values.
type EnumType struct {
	Name   InternedString
	Values []string
}

func (t *ObjectType) TypeName() InternedString      { return t.Name }
func (t *InterfaceType) TypeName() InternedString   { return t.Name }
func (t *UnionType) TypeName() InternedString       { return t.Name }
func (t *InputObjectType) TypeName() InternedString { return t.Name }
func (t *ScalarType) TypeName() InternedString      { return t.Name }
func (t *EnumType) TypeName() InternedString        { return t.Name }

func (*ObjectType) Kind() Kind      { return KindObject }
func (*InterfaceType) Kind() Kind   { return KindInterface }
func (*UnionType) Kind() Kind       { return KindUnion }
func (*InputObjectType) Kind() Kind { return KindInputObject }
func (*ScalarType) Kind() Kind      { return KindScalar }
func (*EnumType) Kind() Kind        { return KindEnum }

func (*ObjectType) namedType()      {}
func (*InterfaceType) namedType()   {}
func (*UnionType) namedType()       {}
func (*InputObjectType) namedType() {}
func (*ScalarType) namedType()      {}
func (*EnumType) namedType()        {}
