package fs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/reach/internal/core/domain"
	"go.trai.ch/reach/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints schemas with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint computes a single hash over the schema's source documents, the
// retained type names and the ignore patterns. Sources are hashed in name
// order and both lists are deduplicated, so neither load order nor list
// order changes the result.
func (h *Hasher) Fingerprint(schema *domain.Schema, retain, ignore []string) (string, error) {
	hasher := xxhash.New()

	sources := slices.Clone(schema.Sources())
	slices.SortFunc(sources, func(a, b domain.SchemaSource) int {
		return strings.Compare(a.Name, b.Name)
	})

	for _, src := range sources {
		_, _ = hasher.WriteString(src.Name)
		_, _ = hasher.Write([]byte{0}) // Separator
		_, _ = hasher.WriteString(src.Input)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator
	writeSorted(hasher, retain)
	_, _ = hasher.Write([]byte{0})
	writeSorted(hasher, ignore)

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func writeSorted(hasher *xxhash.Digest, values []string) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	for _, v := range slices.Compact(sorted) {
		_, _ = hasher.WriteString(v)
		_, _ = hasher.Write([]byte{0})
	}
}
