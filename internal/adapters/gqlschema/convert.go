package gqlschema

import (
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"go.trai.ch/reach/internal/core/domain"
)

// Convert builds a domain.Schema from a validated gqlparser schema.
// Definitions from the GraphQL prelude are registered as built-ins, and the
// introspection meta-fields gqlparser injects into the query type are dropped.
func Convert(parsed *ast.Schema) (*domain.Schema, error) {
	schema := domain.NewSchema()

	names := make([]string, 0, len(parsed.Types))
	for name := range parsed.Types {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		def := parsed.Types[name]
		t := convertDefinition(def)
		if t == nil {
			continue
		}

		add := schema.AddType
		if def.BuiltIn {
			add = schema.AddBuiltinType
		}
		if err := add(t); err != nil {
			return nil, err
		}
	}

	roots := []struct {
		op  domain.Operation
		def *ast.Definition
	}{
		{domain.OperationQuery, parsed.Query},
		{domain.OperationMutation, parsed.Mutation},
		{domain.OperationSubscription, parsed.Subscription},
	}
	for _, root := range roots {
		if root.def != nil {
			schema.SetRoot(root.op, root.def.Name)
		}
	}

	return schema, nil
}

func convertDefinition(def *ast.Definition) domain.NamedType {
	name := domain.NewInternedString(def.Name)

	switch def.Kind {
	case ast.Object:
		return &domain.ObjectType{
			Name:       name,
			Fields:     convertFields(def.Fields),
			Interfaces: domain.NewInternedStrings(def.Interfaces),
		}
	case ast.Interface:
		return &domain.InterfaceType{
			Name:       name,
			Fields:     convertFields(def.Fields),
			Interfaces: domain.NewInternedStrings(def.Interfaces),
		}
	case ast.Union:
		return &domain.UnionType{
			Name:    name,
			Members: domain.NewInternedStrings(def.Types),
		}
	case ast.InputObject:
		fields := make([]domain.InputField, 0, len(def.Fields))
		for _, f := range def.Fields {
			fields = append(fields, domain.InputField{Name: f.Name, Type: convertType(f.Type)})
		}
		return &domain.InputObjectType{Name: name, Fields: fields}
	case ast.Enum:
		values := make([]string, 0, len(def.EnumValues))
		for _, v := range def.EnumValues {
			values = append(values, v.Name)
		}
		return &domain.EnumType{Name: name, Values: values}
	case ast.Scalar:
		return &domain.ScalarType{Name: name}
	default:
		return nil
	}
}

func convertFields(defs ast.FieldList) []domain.Field {
	fields := make([]domain.Field, 0, len(defs))
	for _, f := range defs {
		if strings.HasPrefix(f.Name, "__") {
			continue
		}
		args := make([]domain.Argument, 0, len(f.Arguments))
		for _, a := range f.Arguments {
			args = append(args, domain.Argument{Name: a.Name, Type: convertType(a.Type)})
		}
		fields = append(fields, domain.Field{
			Name:      f.Name,
			Type:      convertType(f.Type),
			Arguments: args,
		})
	}
	return fields
}

func convertType(t *ast.Type) domain.TypeRef {
	if t == nil {
		return domain.TypeRef{}
	}

	var ref domain.TypeRef
	if t.NamedType != "" {
		ref = domain.Named(t.NamedType)
	} else {
		ref = domain.ListOf(convertType(t.Elem))
	}
	if t.NonNull {
		ref = domain.NonNullOf(ref)
	}
	return ref
}
