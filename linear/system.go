// SPDX-License-Identifier: MIT

package linear

import "strings"

// System is an ordered sequence of constraints.
type System []Constraint

// Insert appends c.
func (s *System) Insert(c Constraint) { *s = append(*s, c) }

// Len returns the number of constraints.
func (s System) Len() int { return len(s) }

// HasStrictInequalities reports whether any member is strict.
func (s System) HasStrictInequalities() bool {
	for _, c := range s {
		if c.IsStrictInequality() {
			return true
		}
	}

	return false
}

// SpaceDimension is the largest SpaceDimension among the members.
func (s System) SpaceDimension() int {
	d := 0
	for _, c := range s {
		if n := c.SpaceDimension(); n > d {
			d = n
		}
	}

	return d
}

// Clone returns a deep copy of s.
func (s System) Clone() System {
	if s == nil {
		return nil
	}
	out := make(System, len(s))
	for i, c := range s {
		out[i] = Constraint{expr: c.expr.Clone(), kind: c.kind}
	}

	return out
}

// Equal reports element-wise structural equality.
func (s System) Equal(o System) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

// String joins the members with ", ".
func (s System) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}

	return strings.Join(parts, ", ")
}
