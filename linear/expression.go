// SPDX-License-Identifier: MIT

package linear

import (
	"math/big"
	"strconv"
	"strings"
)

// Variable identifies a space dimension by its zero-based index.
type Variable int

// ID returns the dimension index of v.
func (v Variable) ID() int { return int(v) }

// String names v the usual way: A..Z for 0..25, then A1..Z1, A2...
func (v Variable) String() string {
	id := int(v)
	if id < 0 {
		return "?" + strconv.Itoa(id)
	}
	s := string(rune('A' + id%26))
	if k := id / 26; k > 0 {
		s += strconv.Itoa(k)
	}

	return s
}

// Expr returns the expression 1*v.
func (v Variable) Expr() *Expression {
	return NewExpression(0).AddTerm(v, 1)
}

// Expression is an exact linear expression c0 + sum_i c_i * x_i.
// coeffs never carries trailing zeros, so SpaceDimension is len(coeffs).
type Expression struct {
	inhomo *big.Int
	coeffs []*big.Int
}

// NewExpression returns the constant expression c.
func NewExpression(c int64) *Expression {
	return &Expression{inhomo: big.NewInt(c)}
}

// NewExpressionBig returns the constant expression c (copied).
func NewExpressionBig(c *big.Int) *Expression {
	return &Expression{inhomo: new(big.Int).Set(c)}
}

// grow makes room for dimension dim.
func (e *Expression) grow(dim int) {
	for len(e.coeffs) <= dim {
		e.coeffs = append(e.coeffs, new(big.Int))
	}
}

// trim drops trailing zero coefficients.
func (e *Expression) trim() {
	n := len(e.coeffs)
	for n > 0 && e.coeffs[n-1].Sign() == 0 {
		n--
	}
	e.coeffs = e.coeffs[:n]
}

// AddTerm adds c*v to e and returns e.
// Panics on a negative variable (programmer error).
func (e *Expression) AddTerm(v Variable, c int64) *Expression {
	return e.AddTermBig(v, big.NewInt(c))
}

// AddTermBig adds c*v to e and returns e.
func (e *Expression) AddTermBig(v Variable, c *big.Int) *Expression {
	if v < 0 {
		panic(ErrNegativeDimension)
	}
	if c.Sign() == 0 {
		return e
	}
	e.grow(int(v))
	e.coeffs[v].Add(e.coeffs[v], c)
	e.trim()

	return e
}

// AddConstant adds c to the inhomogeneous term and returns e.
func (e *Expression) AddConstant(c int64) *Expression {
	e.inhomo.Add(e.inhomo, big.NewInt(c))

	return e
}

// AddConstantBig adds c to the inhomogeneous term and returns e.
func (e *Expression) AddConstantBig(c *big.Int) *Expression {
	e.inhomo.Add(e.inhomo, c)

	return e
}

// Add computes e += o and returns e.
func (e *Expression) Add(o *Expression) *Expression {
	e.inhomo.Add(e.inhomo, o.inhomo)
	if len(o.coeffs) > 0 {
		e.grow(len(o.coeffs) - 1)
	}
	for i, c := range o.coeffs {
		e.coeffs[i].Add(e.coeffs[i], c)
	}
	e.trim()

	return e
}

// Sub computes e -= o and returns e.
func (e *Expression) Sub(o *Expression) *Expression {
	return e.Add(o.Clone().Negate())
}

// Scale multiplies e by k and returns e.
func (e *Expression) Scale(k *big.Int) *Expression {
	e.inhomo.Mul(e.inhomo, k)
	for _, c := range e.coeffs {
		c.Mul(c, k)
	}
	e.trim()

	return e
}

// Negate flips every sign of e and returns e.
func (e *Expression) Negate() *Expression {
	e.inhomo.Neg(e.inhomo)
	for _, c := range e.coeffs {
		c.Neg(c)
	}

	return e
}

// Coefficient returns a copy of the coefficient of v (zero beyond SpaceDimension).
func (e *Expression) Coefficient(v Variable) *big.Int {
	if v < 0 || int(v) >= len(e.coeffs) {
		return new(big.Int)
	}

	return new(big.Int).Set(e.coeffs[v])
}

// Inhomogeneous returns a copy of the constant term.
func (e *Expression) Inhomogeneous() *big.Int { return new(big.Int).Set(e.inhomo) }

// SpaceDimension is one plus the highest dimension with a non-zero coefficient.
func (e *Expression) SpaceDimension() int { return len(e.coeffs) }

// IsConstant reports whether e has no variable terms.
func (e *Expression) IsConstant() bool { return len(e.coeffs) == 0 }

// Clone returns a deep copy of e.
func (e *Expression) Clone() *Expression {
	out := &Expression{inhomo: new(big.Int).Set(e.inhomo), coeffs: make([]*big.Int, len(e.coeffs))}
	for i, c := range e.coeffs {
		out.coeffs[i] = new(big.Int).Set(c)
	}

	return out
}

// Equal reports structural equality (same constant, same coefficients).
func (e *Expression) Equal(o *Expression) bool {
	if e.inhomo.Cmp(o.inhomo) != 0 || len(e.coeffs) != len(o.coeffs) {
		return false
	}
	for i := range e.coeffs {
		if e.coeffs[i].Cmp(o.coeffs[i]) != 0 {
			return false
		}
	}

	return true
}

// Evaluate returns the value of e at the point given by value(v) for every
// dimension with a non-zero coefficient.
func (e *Expression) Evaluate(value func(v Variable) *big.Int) *big.Int {
	sum := new(big.Int).Set(e.inhomo)
	tmp := new(big.Int)
	for i, c := range e.coeffs {
		if c.Sign() == 0 {
			continue
		}
		sum.Add(sum, tmp.Mul(c, value(Variable(i))))
	}

	return sum
}

// writeTerms prints the homogeneous part; reports whether anything was written.
func (e *Expression) writeTerms(b *strings.Builder) bool {
	first := true
	abs := new(big.Int)
	for i, c := range e.coeffs {
		if c.Sign() == 0 {
			continue
		}
		switch {
		case first && c.Sign() < 0:
			b.WriteString("-")
		case !first && c.Sign() < 0:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		abs.Abs(c)
		if abs.Cmp(big.NewInt(1)) != 0 {
			b.WriteString(abs.String())
			b.WriteString("*")
		}
		b.WriteString(Variable(i).String())
		first = false
	}

	return !first
}

// String renders e as "2*A - B + 3"; the zero expression prints as "0".
func (e *Expression) String() string {
	var b strings.Builder
	wrote := e.writeTerms(&b)
	switch {
	case !wrote:
		b.WriteString(e.inhomo.String())
	case e.inhomo.Sign() > 0:
		b.WriteString(" + ")
		b.WriteString(e.inhomo.String())
	case e.inhomo.Sign() < 0:
		b.WriteString(" - ")
		b.WriteString(new(big.Int).Neg(e.inhomo).String())
	}

	return b.String()
}
