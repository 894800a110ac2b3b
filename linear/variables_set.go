// SPDX-License-Identifier: MIT

package linear

import (
	"sort"
	"strings"
)

// VariablesSet is an ordered set of space dimensions.
// The zero value is an empty set.
type VariablesSet struct {
	dims []int // strictly increasing
}

// NewVariablesSet returns the set of the given variables.
func NewVariablesSet(vs ...Variable) VariablesSet {
	var s VariablesSet
	for _, v := range vs {
		s.Insert(v)
	}

	return s
}

// search returns the insertion index of dim.
func (s *VariablesSet) search(dim int) int {
	return sort.SearchInts(s.dims, dim)
}

// Insert adds v; duplicates are ignored.
func (s *VariablesSet) Insert(v Variable) {
	if v < 0 {
		panic(ErrNegativeDimension)
	}
	d := int(v)
	i := s.search(d)
	if i < len(s.dims) && s.dims[i] == d {
		return
	}
	s.dims = append(s.dims, 0)
	copy(s.dims[i+1:], s.dims[i:])
	s.dims[i] = d
}

// InsertAll adds every member of o.
func (s *VariablesSet) InsertAll(o VariablesSet) {
	for _, d := range o.dims {
		s.Insert(Variable(d))
	}
}

// Contains reports membership.
func (s VariablesSet) Contains(v Variable) bool {
	i := s.search(int(v))

	return i < len(s.dims) && s.dims[i] == int(v)
}

// Len returns the number of members.
func (s VariablesSet) Len() int { return len(s.dims) }

// Dims returns the members in increasing order (a copy).
func (s VariablesSet) Dims() []int { return append([]int(nil), s.dims...) }

// Rank returns the number of members strictly smaller than dim.
func (s VariablesSet) Rank(dim int) int { return s.search(dim) }

// Max returns the largest member, or -1 for the empty set.
func (s VariablesSet) Max() int {
	if len(s.dims) == 0 {
		return -1
	}

	return s.dims[len(s.dims)-1]
}

// Clone returns an independent copy.
func (s VariablesSet) Clone() VariablesSet { return VariablesSet{dims: s.Dims()} }

// String prints "{A, C}".
func (s VariablesSet) String() string {
	parts := make([]string, len(s.dims))
	for i, d := range s.dims {
		parts[i] = Variable(d).String()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
