// SPDX-License-Identifier: MIT

package linear

import "errors"

var (
	// ErrInvalidKind is returned for an unknown constraint relation.
	ErrInvalidKind = errors.New("linear: invalid constraint kind")

	// ErrNegativeDimension is raised when a Variable with a negative id is used.
	ErrNegativeDimension = errors.New("linear: negative space dimension")

	// ErrZeroDenominator is returned when an expression is divided by zero.
	ErrZeroDenominator = errors.New("linear: zero denominator")

	// ErrBadFormat is returned by the loaders on structurally invalid input.
	ErrBadFormat = errors.New("linear: bad format")
)
