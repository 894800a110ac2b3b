// SPDX-License-Identifier: MIT

package pip

import (
	"math/big"

	"github.com/katalvlaran/lvpip/matrix"
)

var (
	bigOne      = big.NewInt(1)
	bigMinusOne = big.NewInt(-1)
)

// modPositive returns x mod y in [0, y) for y > 0.
func modPositive(x, y *big.Int) *big.Int {
	return new(big.Int).Mod(x, y)
}

// divisible reports whether y divides x (y != 0).
func divisible(x, y *big.Int) bool {
	return new(big.Int).Rem(x, y).Sign() == 0
}

// floorDiv returns floor(x/y) for y > 0.
func floorDiv(x, y *big.Int) *big.Int {
	q, m := new(big.Int), new(big.Int)
	q.DivMod(x, y, m)

	return q
}

// negateRow stores -y into x. A non-zero sc additionally subtracts the
// residue of x[0] modulo sc (or sc itself when the residue is zero), so with
// sc = 1 the row expr becomes -expr-1.
func negateRow(x, y matrix.Row, sc *big.Int) {
	for i := range x {
		x[i].Neg(y[i])
	}
	if sc == nil || sc.Sign() == 0 {
		return
	}
	mod := modPositive(x[0], sc)
	if mod.Sign() == 0 {
		x[0].Sub(x[0], sc)
	} else {
		x[0].Sub(x[0], mod)
	}
}

// rowNormalize divides x and its scaling factor den by their common gcd.
func rowNormalize(x matrix.Row, den *big.Int) {
	if den.Cmp(bigOne) == 0 {
		return
	}
	g := x.GCD(den)
	if g.Cmp(bigOne) == 0 {
		return
	}
	debugAssert(x.ExactDiv(g) == nil, "rowNormalize: inexact division")
	den.Quo(den, g)
}

// rowSign classifies the parametric row x. When bigCol >= 0 and the
// big-parameter coefficient is non-zero, its sign decides. Parameters are
// non-negative, so a row is negative only with a negative constant; one
// with a zero constant and no positive entry vanishes at the origin and
// is mixed.
func rowSign(x matrix.Row, bigCol int) RowSign {
	if bigCol >= 0 && bigCol < len(x) {
		switch x[bigCol].Sign() {
		case 1:
			return RowPositive
		case -1:
			return RowNegative
		}
	}
	sign := RowZero
	for i := len(x) - 1; i >= 0; i-- {
		switch c := x[i].Sign(); sign {
		case RowZero:
			if c < 0 {
				sign = RowNegative
			} else if c > 0 {
				sign = RowPositive
			}
		case RowNegative:
			if c > 0 {
				return RowMixed
			}
		case RowPositive:
			if c < 0 {
				return RowMixed
			}
		}
	}
	if sign == RowNegative && x[0].Sign() == 0 {
		return RowMixed
	}

	return sign
}
