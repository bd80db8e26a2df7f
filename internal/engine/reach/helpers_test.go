package reach_test

import (
	"testing"

	"go.trai.ch/reach/internal/core/domain"
)

func n(s string) domain.InternedString {
	return domain.NewInternedString(s)
}

func names(ss ...string) []domain.InternedString {
	return domain.NewInternedStrings(ss)
}

func field(name string, ref domain.TypeRef, args ...domain.Argument) domain.Field {
	return domain.Field{Name: name, Type: ref, Arguments: args}
}

func arg(name string, ref domain.TypeRef) domain.Argument {
	return domain.Argument{Name: name, Type: ref}
}

func newSchema(t *testing.T, types ...domain.NamedType) *domain.Schema {
	t.Helper()
	s := domain.NewSchema()
	for _, typ := range types {
		if err := s.AddType(typ); err != nil {
			t.Fatalf("failed to add type %s: %v", typ.TypeName(), err)
		}
	}
	return s
}

// librarySchema models:
//
//	type Query { user(id: ID!, filter: UserFilter): User, search(term: String!): [SearchResult!]!, node: Node }
//	type Mutation { addBook(input: BookInput!): Book }
//	interface Node { id: ID! }
//	type User implements Node { id: ID!, friends: [User!]!, shelf: [Book] }
//	type Book implements Node { id: ID!, author: User, genre: Genre }
//	union SearchResult = User | Book
//	input UserFilter { role: Role, joined: DateRange }
//	input DateRange { from: String, to: String }
//	input BookInput { title: String! }
//	enum Role, enum Genre
//	type Orphan { sibling: OrphanSibling }, type OrphanSibling, input OrphanInput, scalar Unused
func librarySchema(t *testing.T) *domain.Schema {
	t.Helper()
	s := newSchema(t,
		&domain.ObjectType{Name: n("Query"), Fields: []domain.Field{
			field("user", domain.Named("User"),
				arg("id", domain.NonNullOf(domain.Named("ID"))),
				arg("filter", domain.Named("UserFilter"))),
			field("search", domain.NonNullOf(domain.ListOf(domain.NonNullOf(domain.Named("SearchResult")))),
				arg("term", domain.NonNullOf(domain.Named("String")))),
			field("node", domain.Named("Node")),
		}},
		&domain.ObjectType{Name: n("Mutation"), Fields: []domain.Field{
			field("addBook", domain.Named("Book"), arg("input", domain.NonNullOf(domain.Named("BookInput")))),
		}},
		&domain.InterfaceType{Name: n("Node"), Fields: []domain.Field{
			field("id", domain.NonNullOf(domain.Named("ID"))),
		}},
		&domain.ObjectType{Name: n("User"), Interfaces: names("Node"), Fields: []domain.Field{
			field("id", domain.NonNullOf(domain.Named("ID"))),
			field("friends", domain.NonNullOf(domain.ListOf(domain.NonNullOf(domain.Named("User"))))),
			field("shelf", domain.ListOf(domain.Named("Book"))),
		}},
		&domain.ObjectType{Name: n("Book"), Interfaces: names("Node"), Fields: []domain.Field{
			field("id", domain.NonNullOf(domain.Named("ID"))),
			field("author", domain.Named("User")),
			field("genre", domain.Named("Genre")),
		}},
		&domain.UnionType{Name: n("SearchResult"), Members: names("User", "Book")},
		&domain.InputObjectType{Name: n("UserFilter"), Fields: []domain.InputField{
			{Name: "role", Type: domain.Named("Role")},
			{Name: "joined", Type: domain.Named("DateRange")},
		}},
		&domain.InputObjectType{Name: n("DateRange"), Fields: []domain.InputField{
			{Name: "from", Type: domain.Named("String")},
			{Name: "to", Type: domain.Named("String")},
		}},
		&domain.InputObjectType{Name: n("BookInput"), Fields: []domain.InputField{
			{Name: "title", Type: domain.NonNullOf(domain.Named("String"))},
		}},
		&domain.EnumType{Name: n("Role"), Values: []string{"ADMIN", "READER"}},
		&domain.EnumType{Name: n("Genre"), Values: []string{"FICTION"}},
		&domain.ObjectType{Name: n("Orphan"), Fields: []domain.Field{
			field("sibling", domain.Named("OrphanSibling")),
		}},
		&domain.ObjectType{Name: n("OrphanSibling")},
		&domain.InputObjectType{Name: n("OrphanInput")},
		&domain.ScalarType{Name: n("Unused")},
	)
	for _, builtin := range []string{"ID", "String", "Boolean"} {
		if err := s.AddBuiltinType(&domain.ScalarType{Name: n(builtin)}); err != nil {
			t.Fatalf("failed to add built-in %s: %v", builtin, err)
		}
	}
	s.SetRoot(domain.OperationQuery, "Query")
	s.SetRoot(domain.OperationMutation, "Mutation")
	return s
}
