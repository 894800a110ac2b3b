// SPDX-License-Identifier: MIT

package pip

import "errors"

// Sentinel errors. Wrapped with method context via fmt.Errorf("%w"); match with errors.Is.
var (
	// ErrStrictInequality is returned when a strict inequality is added.
	ErrStrictInequality = errors.New("pip: strict inequalities are not supported")

	// ErrDimensionMismatch is returned when a constraint (or point) exceeds
	// the space dimension of the problem.
	ErrDimensionMismatch = errors.New("pip: space dimension mismatch")

	// ErrNotAParameter is returned when a dimension is expected to be a parameter but is not.
	ErrNotAParameter = errors.New("pip: dimension is not a parameter")

	// ErrIsAParameter is returned when a variable is expected but a parameter is given.
	ErrIsAParameter = errors.New("pip: dimension is a parameter")

	// ErrNotSolved is returned by queries that need an optimized problem.
	ErrNotSolved = errors.New("pip: problem is not optimized")

	// ErrMissingParameter is returned by Evaluate when a parameter has no value.
	ErrMissingParameter = errors.New("pip: missing parameter value")

	// ErrBadDump is returned by the loaders on malformed input.
	ErrBadDump = errors.New("pip: malformed ascii dump")
)

// ErrBrokenTree reports a violated internal invariant of the solution tree.
var ErrBrokenTree = errors.New("pip: solution tree invariant violated")
