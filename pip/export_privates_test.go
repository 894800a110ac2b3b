// SPDX-License-Identifier: MIT

package pip

// Test bridge (white box) for package pip_test.
//
//   - Switches the internal invariant checks on for every test binary.
//   - Exposes the compatibility check and tableau normalization on literal
//     data, without widening the production API.

import (
	"math/big"

	"github.com/katalvlaran/lvpip/matrix"
)

func init() { debugChecks = true }

// CompatibleForTest reports whether the context rows ctx and row >= 0
// share a non-negative integer point.
func CompatibleForTest(ctx [][]int64, row []int64, limit int) bool {
	m, err := matrix.NewDenseFromRows(ctx)
	if err != nil {
		panic(err)
	}
	if len(ctx) == 0 {
		m, _ = matrix.NewDense(0, len(row))
	}

	return compatibilityCheck(m, matrix.RowOf(row...), limit)
}

// TableauForTest is a read-only view over a tableau built from literals.
type TableauForTest struct{ tb tableau }

// NewTableauForTest builds a tableau with the given variable/parameter rows.
func NewTableauForTest(s, t [][]int64, den int64) TableauForTest {
	sm, err := matrix.NewDenseFromRows(s)
	if err != nil {
		panic(err)
	}
	tm, err := matrix.NewDenseFromRows(t)
	if err != nil {
		panic(err)
	}

	return TableauForTest{tb: tableau{s: sm, t: tm, den: big.NewInt(den)}}
}

func (v TableauForTest) Normalize()         { v.tb.normalize() }
func (v TableauForTest) Scale(k int64)      { v.tb.scale(big.NewInt(k)) }
func (v TableauForTest) Denominator() int64 { return v.tb.den.Int64() }
func (v TableauForTest) String() string {
	return v.tb.s.String() + "|" + v.tb.t.String() + "/" + v.tb.den.String()
}

// RowSignForTest classifies a parametric row.
func RowSignForTest(row []int64, bigCol int) RowSign {
	return rowSign(matrix.RowOf(row...), bigCol)
}
