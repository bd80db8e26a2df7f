package reach

import (
	"sync"

	"go.trai.ch/reach/internal/core/domain"
	"go.trai.ch/reach/internal/core/ports"
)

// Cache memoizes the reachable set of one schema.
// The set is computed on first use and never refreshed.
// It is safe for concurrent use.
type Cache struct {
	graph  ports.TypeGraph
	retain []domain.InternedString

	once sync.Once
	set  *domain.ReachableSet
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithRetained treats the named types as additional roots.
func WithRetained(names ...string) CacheOption {
	return func(c *Cache) {
		c.retain = append(c.retain, domain.NewInternedStrings(names)...)
	}
}

// NewCache creates a Cache over graph. A nil graph is valid: such a cache
// never computes anything and always reports nil.
func NewCache(graph ports.TypeGraph, opts ...CacheOption) *Cache {
	if s, ok := graph.(*domain.Schema); ok && s == nil {
		graph = nil
	}
	c := &Cache{graph: graph}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReachableTypes returns the reachable set, computing it on the first call.
// Every call on the same Cache returns the same pointer.
// It returns nil when the cache was created without a graph.
func (c *Cache) ReachableTypes() *domain.ReachableSet {
	if c.graph == nil {
		return nil
	}
	c.once.Do(func() {
		c.set = CollectFrom(c.graph, c.retain...)
	})
	return c.set
}
