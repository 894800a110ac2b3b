// SPDX-License-Identifier: MIT

package pip

import "fmt"

// Status is the outcome of solving a node or a problem.
type Status int

const (
	// Unfeasible means no integer point satisfies the constraints.
	Unfeasible Status = iota
	// Optimized means a (parametric) lexicographic minimum was found.
	Optimized
	// GaveUp means the cut limit was reached before an answer.
	GaveUp
)

// String returns a stable token.
func (s Status) String() string {
	switch s {
	case Unfeasible:
		return "UNFEASIBLE"
	case Optimized:
		return "OPTIMIZED"
	case GaveUp:
		return "GAVE_UP"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// RowSign caches the known sign of the parametric part of a tableau row.
type RowSign int

const (
	RowUnknown RowSign = iota
	RowZero
	RowPositive
	RowNegative
	RowMixed
)

var rowSignTokens = [...]string{"UNKNOWN", "ZERO", "POSITIVE", "NEGATIVE", "MIXED"}

// String returns the dump token of s.
func (s RowSign) String() string {
	if s < RowUnknown || s > RowMixed {
		return fmt.Sprintf("RowSign(%d)", int(s))
	}

	return rowSignTokens[s]
}

func parseRowSign(tok string) (RowSign, bool) {
	for i, t := range rowSignTokens {
		if t == tok {
			return RowSign(i), true
		}
	}

	return RowUnknown, false
}

// CuttingStrategy selects which fractional rows produce Gomory cuts.
type CuttingStrategy int

const (
	// CuttingFirst cuts the row with the fewest fractional parametric coefficients.
	CuttingFirst CuttingStrategy = iota
	// CuttingDeepest cuts the row with the best depth score.
	CuttingDeepest
	// CuttingAll cuts every fractional row at once.
	CuttingAll
)

// String returns a stable name.
func (c CuttingStrategy) String() string {
	switch c {
	case CuttingFirst:
		return "first"
	case CuttingDeepest:
		return "deepest"
	case CuttingAll:
		return "all"
	}

	return fmt.Sprintf("CuttingStrategy(%d)", int(c))
}

// PivotRowStrategy selects the pivot row among the negative rows.
type PivotRowStrategy int

const (
	// PivotRowFirst takes the first negative row that has a positive entry.
	PivotRowFirst PivotRowStrategy = iota
	// PivotRowMaxColumn scans every negative row and keeps the best pivot.
	PivotRowMaxColumn
)

// String returns a stable name.
func (p PivotRowStrategy) String() string {
	switch p {
	case PivotRowFirst:
		return "first"
	case PivotRowMaxColumn:
		return "max-column"
	}

	return fmt.Sprintf("PivotRowStrategy(%d)", int(p))
}

// ParseCuttingStrategy is the inverse of CuttingStrategy.String.
func ParseCuttingStrategy(s string) (CuttingStrategy, error) {
	for _, c := range []CuttingStrategy{CuttingFirst, CuttingDeepest, CuttingAll} {
		if c.String() == s {
			return c, nil
		}
	}

	return 0, fmt.Errorf("pip: unknown cutting strategy %q", s)
}

// ParsePivotRowStrategy is the inverse of PivotRowStrategy.String.
func ParsePivotRowStrategy(s string) (PivotRowStrategy, error) {
	for _, p := range []PivotRowStrategy{PivotRowFirst, PivotRowMaxColumn} {
		if p.String() == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("pip: unknown pivot row strategy %q", s)
}
