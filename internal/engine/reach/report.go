package reach

import (
	"slices"
	"time"

	"github.com/gobwas/glob"
	"go.trai.ch/reach/internal/core/domain"
	"go.trai.ch/zerr"
)

// Matcher matches type names against ignore patterns.
type Matcher struct {
	patterns []glob.Glob
}

// NewMatcher compiles glob patterns such as "*Connection" or "Internal*".
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: make([]glob.Glob, 0, len(patterns))}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			wrapped := zerr.With(zerr.Wrap(domain.ErrInvalidPattern, "failed to compile ignore pattern"), "pattern", p)
			return nil, zerr.With(wrapped, "reason", err.Error())
		}
		m.patterns = append(m.patterns, g)
	}
	return m, nil
}

// Match reports whether name matches any pattern. A nil Matcher matches nothing.
func (m *Matcher) Match(name string) bool {
	if m == nil {
		return false
	}
	for _, g := range m.patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// BuildReport compares the declared types of schema against set.
// Built-in types are never counted; types matched by ignore are left out of
// the unreachable list but still counted.
func BuildReport(schema *domain.Schema, set *domain.ReachableSet, ignore *Matcher) *domain.Report {
	report := &domain.Report{
		Reachable:   set.Names(),
		Unreachable: []string{},
		CreatedAt:   time.Now().UTC(),
	}

	for t := range schema.Types() {
		name := t.TypeName()
		if schema.IsBuiltin(name) {
			continue
		}
		report.Total++
		if set.Contains(name) || ignore.Match(name.String()) {
			continue
		}
		report.Unreachable = append(report.Unreachable, name.String())
	}
	slices.Sort(report.Unreachable)

	return report
}
