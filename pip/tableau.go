// SPDX-License-Identifier: MIT

// Package pip - tableau: the parametric simplex tableau of a solution node.
//
// Purpose:
//   - s holds one column per problem variable, t holds the constant column
//     followed by one column per parameter (artificial parameters last).
//   - Every entry is read over the shared positive denominator den.
//
// Invariants:
//   - s.Rows() == t.Rows(); den > 0.
//
// Complexity quicksheet:
//   - normalize/scale: O(rows*(vars+params)); isBetterPivot: O(params*rows + vars).
package pip

import (
	"math/big"

	"github.com/katalvlaran/lvpip/matrix"
)

type tableau struct {
	s   *matrix.Dense // variable coefficients
	t   *matrix.Dense // constant + parameter coefficients
	den *big.Int      // shared denominator (> 0)
}

func newTableau() tableau {
	s, _ := matrix.NewDense(0, 0)
	t, _ := matrix.NewDense(0, 0)

	return tableau{s: s, t: t, den: big.NewInt(1)}
}

func (tb tableau) clone() tableau {
	return tableau{s: tb.s.Clone(), t: tb.t.Clone(), den: new(big.Int).Set(tb.den)}
}

// addRow appends a (variables, parameters) row pair.
func (tb tableau) addRow(sRow, tRow matrix.Row) error {
	if err := tb.s.AddRow(sRow); err != nil {
		return err
	}

	return tb.t.AddRow(tRow)
}

// normalize divides every entry and the denominator by their global gcd.
// No-op when the denominator is already 1.
func (tb tableau) normalize() {
	if tb.den.Cmp(bigOne) == 0 {
		return
	}
	g := new(big.Int).Set(tb.den)
	for i := 0; i < tb.s.Rows(); i++ {
		if g = tb.s.Row(i).GCD(g); g.Cmp(bigOne) == 0 {
			return
		}
		if g = tb.t.Row(i).GCD(g); g.Cmp(bigOne) == 0 {
			return
		}
	}
	for i := 0; i < tb.s.Rows(); i++ {
		debugAssert(tb.s.Row(i).ExactDiv(g) == nil, "tableau.normalize: inexact division")
		debugAssert(tb.t.Row(i).ExactDiv(g) == nil, "tableau.normalize: inexact division")
	}
	tb.den.Quo(tb.den, g)
}

// scale multiplies every entry and the denominator by k > 0.
func (tb tableau) scale(k *big.Int) {
	for i := 0; i < tb.s.Rows(); i++ {
		tb.s.Row(i).Scale(k)
		tb.t.Row(i).Scale(k)
	}
	tb.den.Mul(tb.den, k)
}

// isBetterPivot reports whether the pivot (i, j) is lexicographically
// preferable to the current best (bi, bj).
func (tb tableau) isBetterPivot(mapping []int, basis []bool, i, j, bi, bj int) bool {
	si, sb := tb.s.Row(i), tb.s.Row(bi)
	ti, tbr := tb.t.Row(i), tb.t.Row(bi)
	lhs, rhs := new(big.Int), new(big.Int)
	a, b := new(big.Int), new(big.Int)
	for k := 0; k < tb.t.Cols(); k++ {
		a.Mul(ti[k], sb[bj])
		b.Mul(tbr[k], si[j])
		for x := 0; x < tb.s.Rows(); x++ {
			sx := tb.s.Row(x)
			lhs.Mul(sx[j], a)
			rhs.Mul(sx[bj], b)
			if lhs.Cmp(rhs) != 0 {
				return columnLower(tb.s, mapping, basis, si, j, sb, bj, ti[k], tbr[k])
			}
		}
	}

	return false
}

// ok checks the shape and denominator invariants.
func (tb tableau) ok() bool {
	return tb.s.Rows() == tb.t.Rows() && tb.den.Sign() > 0
}

// columnLower compares two candidate pivot columns lexicographically:
// it reports whether column ja scaled by -cstA/pivA[ja] is lexicographically
// smaller than column jb scaled by -cstB/pivB[jb]. Rows come from rows via
// the variable cross-reference (basic variables contribute identity rows).
// Both pivot entries must be positive.
func columnLower(rows *matrix.Dense, mapping []int, basis []bool,
	pivA matrix.Row, ja int, pivB matrix.Row, jb int, cstA, cstB *big.Int) bool {
	lhsCoeff := new(big.Int).Mul(cstA, pivB[jb])
	rhsCoeff := new(big.Int).Mul(cstB, pivA[ja])
	if ja == jb {
		return lhsCoeff.Cmp(rhsCoeff) > 0
	}
	lhs, rhs := new(big.Int), new(big.Int)
	for k := range mapping {
		mk := mapping[k]
		if basis[k] {
			switch {
			case mk == ja:
				if lhsCoeff.Sign() != 0 {
					return lhsCoeff.Sign() > 0
				}
			case mk == jb:
				if rhsCoeff.Sign() != 0 {
					return rhsCoeff.Sign() < 0
				}
			}
			continue
		}
		r := rows.Row(mk)
		lhs.Mul(lhsCoeff, r[ja])
		rhs.Mul(rhsCoeff, r[jb])
		if c := lhs.Cmp(rhs); c != 0 {
			return c > 0
		}
	}

	return false
}

// findLexicoMinimumColumn returns the column j >= start with row[j] > 0
// whose scaled column is lexicographically minimal.
// ok is false when row has no positive entry from start on.
func findLexicoMinimumColumn(rows *matrix.Dense, mapping []int, basis []bool,
	row matrix.Row, start int) (j int, ok bool) {
	j = -1
	for c := start; c < len(row); c++ {
		if row[c].Sign() <= 0 {
			continue
		}
		if j < 0 || columnLower(rows, mapping, basis, row, c, row, j, bigMinusOne, bigMinusOne) {
			j = c
		}
	}

	return j, j >= 0
}
