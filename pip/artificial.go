// SPDX-License-Identifier: MIT

package pip

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/matrix"
)

// ArtificialParameter is the integer quotient floor(expr / den), den > 0.
// expr ranges over parameters and previously introduced artificial parameters.
type ArtificialParameter struct {
	expr *linear.Expression
	den  *big.Int
}

// NewArtificialParameter returns floor(expr/den); expr is copied.
// Errors: linear.ErrZeroDenominator for den == 0. A negative den is folded
// into the expression sign.
func NewArtificialParameter(expr *linear.Expression, den *big.Int) (ArtificialParameter, error) {
	if den.Sign() == 0 {
		return ArtificialParameter{}, linear.ErrZeroDenominator
	}
	e, d := expr.Clone(), new(big.Int).Set(den)
	if d.Sign() < 0 {
		e.Negate()
		d.Neg(d)
	}

	return ArtificialParameter{expr: e, den: d}, nil
}

// Expression returns a copy of the numerator.
func (a ArtificialParameter) Expression() *linear.Expression { return a.expr.Clone() }

// Denominator returns a copy of the denominator.
func (a ArtificialParameter) Denominator() *big.Int { return new(big.Int).Set(a.den) }

// Equal reports structural equality (same numerator, same denominator).
func (a ArtificialParameter) Equal(o ArtificialParameter) bool {
	return a.den.Cmp(o.den) == 0 && a.expr.Equal(o.expr)
}

// Evaluate returns floor(expr(value)/den).
func (a ArtificialParameter) Evaluate(value func(linear.Variable) *big.Int) *big.Int {
	return floorDiv(a.expr.Evaluate(value), a.den)
}

// String renders "(expr) div den".
func (a ArtificialParameter) String() string {
	return fmt.Sprintf("(%s) div %s", a.expr.String(), a.den.String())
}

// clone returns a deep copy.
func (a ArtificialParameter) clone() ArtificialParameter {
	return ArtificialParameter{expr: a.expr.Clone(), den: new(big.Int).Set(a.den)}
}

// definingRows returns the two context rows bounding the artificial
// parameter stored at column col: expr - den*q >= 0 and
// -expr + den*q + den - 1 >= 0. params maps context columns 1.. to dimensions.
func (a ArtificialParameter) definingRows(params []int, col, width int) (matrix.Row, matrix.Row) {
	lo, hi := matrix.NewRow(width), matrix.NewRow(width)
	lo[0].Set(a.expr.Inhomogeneous())
	for j, dim := range params {
		lo[j+1].Set(a.expr.Coefficient(linear.Variable(dim)))
	}
	lo[col].Neg(a.den)
	for j := range hi {
		hi[j].Neg(lo[j])
	}
	hi[0].Add(hi[0], a.den)
	hi[0].Sub(hi[0], bigOne)

	return lo, hi
}

func cloneArtificials(aps []ArtificialParameter) []ArtificialParameter {
	if len(aps) == 0 {
		return nil
	}
	out := make([]ArtificialParameter, len(aps))
	for i, ap := range aps {
		out[i] = ap.clone()
	}

	return out
}
