package domain

import (
	"encoding/json"
	"iter"
	"maps"
	"slices"
)

// ReachableSet accumulates the names of types reached by a traversal.
// Names are only ever added.
type ReachableSet struct {
	names map[InternedString]struct{}
}

// NewReachableSet creates a new empty ReachableSet.
func NewReachableSet() *ReachableSet {
	return &ReachableSet{
		names: make(map[InternedString]struct{}),
	}
}

// Add records name and reports whether it was not already present.
func (s *ReachableSet) Add(name InternedString) bool {
	if _, ok := s.names[name]; ok {
		return false
	}
	s.names[name] = struct{}{}
	return true
}

// Contains reports whether name has been recorded.
func (s *ReachableSet) Contains(name InternedString) bool {
	_, ok := s.names[name]
	return ok
}

// Has reports whether the type called name has been recorded.
func (s *ReachableSet) Has(name string) bool {
	return s.Contains(NewInternedString(name))
}

// Len returns the number of recorded names.
func (s *ReachableSet) Len() int {
	return len(s.names)
}

// All returns an iterator over the recorded names in no particular order.
func (s *ReachableSet) All() iter.Seq[InternedString] {
	return maps.Keys(s.names)
}

// Names returns the recorded names sorted.
func (s *ReachableSet) Names() []string {
	res := make([]string, 0, len(s.names))
	for name := range s.names {
		res = append(res, name.String())
	}
	slices.Sort(res)
	return res
}

// MarshalJSON encodes the set as a sorted array of names.
func (s *ReachableSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// UnmarshalJSON decodes an array of names into the set.
func (s *ReachableSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	s.names = make(map[InternedString]struct{}, len(names))
	for _, name := range names {
		s.names[NewInternedString(name)] = struct{}{}
	}
	return nil
}
