// SPDX-License-Identifier: MIT

// Package matrix - Row: one resizable row of exact integers.
//
// Purpose:
//   - Hold tableau/context coefficients as *big.Int without ever aliasing
//     an entry between two rows.
//   - Provide the gcd/exact-division kernels used by the simplex pivots.
//
// Complexity quicksheet:
//   - NewRow/Clone: O(n); GCD: O(n) with early exit on 1; Scale/ExactDiv: O(n).

package matrix

import (
	"math/big"
	"strings"
)

var bigOne = big.NewInt(1)

// Row is a resizable row of exact integers.
// Each entry is a distinct *big.Int owned by the row.
type Row []*big.Int

// NewRow returns a zero row of length n.
// Complexity: O(n).
func NewRow(n int) Row {
	r := make(Row, n)
	for i := range r {
		r[i] = new(big.Int)
	}

	return r
}

// RowOf builds a row from int64 literals (handy in tests and builders).
func RowOf(vals ...int64) Row {
	r := make(Row, len(vals))
	for i, v := range vals {
		r[i] = big.NewInt(v)
	}

	return r
}

// Clone returns a deep copy of r.
// Complexity: O(n).
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for i, v := range r {
		out[i] = new(big.Int).Set(v)
	}

	return out
}

// CopyFrom overwrites r with the values of src (lengths must match).
// Returns ErrDimensionMismatch otherwise.
func (r Row) CopyFrom(src Row) error {
	if len(r) != len(src) {
		return ErrDimensionMismatch
	}
	for i := range r {
		r[i].Set(src[i])
	}

	return nil
}

// IsZero reports whether every entry is zero.
func (r Row) IsZero() bool {
	for _, v := range r {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports element-wise equality.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i].Cmp(o[i]) != 0 {
			return false
		}
	}

	return true
}

// GCD returns the gcd of |seed| and every non-zero entry of r.
// Implementation:
//   - Stage 1: start from |seed| (a zero seed means "no seed").
//   - Stage 2: fold gcd over non-zero entries, stopping early once it reaches 1.
//
// Returns 0 only when seed and all entries are zero.
func (r Row) GCD(seed *big.Int) *big.Int {
	g := new(big.Int)
	if seed != nil {
		g.Abs(seed)
	}
	for _, v := range r {
		if v.Sign() == 0 {
			continue
		}
		if g.Sign() == 0 {
			g.Abs(v)
		} else {
			g.GCD(nil, nil, g, new(big.Int).Abs(v))
		}
		if g.Cmp(bigOne) == 0 {
			break
		}
	}

	return g
}

// ExactDiv divides every entry by k, assuming k divides all of them.
// Returns ErrZeroDivisor when k == 0.
func (r Row) ExactDiv(k *big.Int) error {
	if k.Sign() == 0 {
		return ErrZeroDivisor
	}
	for _, v := range r {
		v.Quo(v, k)
	}

	return nil
}

// Scale multiplies every entry by k.
func (r Row) Scale(k *big.Int) {
	for _, v := range r {
		v.Mul(v, k)
	}
}

// Negate flips the sign of every entry.
func (r Row) Negate() {
	for _, v := range r {
		v.Neg(v)
	}
}

// Normalize divides every entry by the gcd of all entries.
// A zero row, or a row whose gcd is already 1, is left unchanged.
func (r Row) Normalize() {
	g := r.GCD(nil)
	if g.Sign() == 0 || g.Cmp(bigOne) == 0 {
		return
	}
	_ = r.ExactDiv(g)
}

// AddMul computes r += c * y element-wise (lengths must match).
func (r Row) AddMul(y Row, c *big.Int) error {
	if len(r) != len(y) {
		return ErrDimensionMismatch
	}
	tmp := new(big.Int)
	for i := range r {
		r[i].Add(r[i], tmp.Mul(c, y[i]))
	}

	return nil
}

// Sub computes r -= y element-wise (lengths must match).
func (r Row) Sub(y Row) error {
	if len(r) != len(y) {
		return ErrDimensionMismatch
	}
	for i := range r {
		r[i].Sub(r[i], y[i])
	}

	return nil
}

// String renders the row as space-separated integers.
func (r Row) String() string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}

	return b.String()
}
