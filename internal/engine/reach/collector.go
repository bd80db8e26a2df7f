// Package reach computes the set of schema types reachable from the root operation types.
package reach

import (
	"go.trai.ch/reach/internal/core/domain"
	"go.trai.ch/reach/internal/core/ports"
)

// Collect walks graph depth-first from its query, mutation and subscription
// roots and returns the name of every type it reaches through field types,
// argument types, interfaces, implementations, union members and input fields.
// Absent roots are skipped. The graph is not modified.
func Collect(graph ports.TypeGraph) *domain.ReachableSet {
	return CollectFrom(graph)
}

// CollectFrom is Collect with additional seed types walked after the roots.
// Seeds that the graph does not declare are ignored.
func CollectFrom(graph ports.TypeGraph, seeds ...domain.InternedString) *domain.ReachableSet {
	c := &collector{
		graph: graph,
		seen:  domain.NewReachableSet(),
	}

	for _, op := range domain.Operations() {
		if root, ok := graph.RootType(op); ok {
			c.visit(root)
		}
	}
	for _, seed := range seeds {
		c.visitName(seed)
	}

	return c.seen
}

// collector holds the state of a single walk.
type collector struct {
	graph ports.TypeGraph
	seen  *domain.ReachableSet
}

func (c *collector) visit(t domain.NamedType) {
	// Marking before descending is what terminates cycles such as
	// User.friends: [User] or an interface reached back from its implementor.
	if !c.seen.Add(t.TypeName()) {
		return
	}

	switch t := t.(type) {
	case *domain.ObjectType:
		c.visitFields(t.Fields)
		c.visitNames(t.Interfaces)
	case *domain.InterfaceType:
		c.visitFields(t.Fields)
		c.visitNames(t.Interfaces)
		for _, impl := range c.graph.PossibleTypes(t.Name) {
			c.visit(impl)
		}
	case *domain.UnionType:
		c.visitNames(t.Members)
	case *domain.InputObjectType:
		for _, f := range t.Fields {
			c.visitRef(f.Type)
		}
	case *domain.ScalarType, *domain.EnumType:
		// leaf
	}
}

func (c *collector) visitFields(fields []domain.Field) {
	for _, f := range fields {
		c.visitRef(f.Type)
		for _, arg := range f.Arguments {
			c.visitRef(arg.Type)
		}
	}
}

func (c *collector) visitRef(ref domain.TypeRef) {
	c.visitName(ref.NamedType())
}

func (c *collector) visitNames(names []domain.InternedString) {
	for _, name := range names {
		c.visitName(name)
	}
}

func (c *collector) visitName(name domain.InternedString) {
	if t, ok := c.graph.Lookup(name); ok {
		c.visit(t)
	}
}
