// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"
	"math/big"
	"strings"
)

// Kind is the relation of a Constraint with zero.
type Kind int

const (
	// NonStrictInequality means expr >= 0.
	NonStrictInequality Kind = iota
	// Equality means expr = 0.
	Equality
	// StrictInequality means expr > 0.
	StrictInequality
)

// Symbol returns the relation token ("=", ">=", ">").
func (k Kind) Symbol() string {
	switch k {
	case Equality:
		return "="
	case NonStrictInequality:
		return ">="
	case StrictInequality:
		return ">"
	}

	return "?"
}

// ParseKind is the inverse of Symbol.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "=":
		return Equality, nil
	case ">=":
		return NonStrictInequality, nil
	case ">":
		return StrictInequality, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Constraint is a linear expression compared with zero.
type Constraint struct {
	expr *Expression
	kind Kind
}

// NewConstraint builds "expr kind 0"; expr is copied.
// Panics on an unknown kind.
func NewConstraint(expr *Expression, kind Kind) Constraint {
	if kind < NonStrictInequality || kind > StrictInequality {
		panic(ErrInvalidKind)
	}

	return Constraint{expr: expr.Clone(), kind: kind}
}

// GreaterOrEqual builds lhs >= rhs.
func GreaterOrEqual(lhs, rhs *Expression) Constraint {
	return Constraint{expr: lhs.Clone().Sub(rhs), kind: NonStrictInequality}
}

// LessOrEqual builds lhs <= rhs.
func LessOrEqual(lhs, rhs *Expression) Constraint {
	return Constraint{expr: rhs.Clone().Sub(lhs), kind: NonStrictInequality}
}

// Equal builds lhs = rhs.
func Equal(lhs, rhs *Expression) Constraint {
	return Constraint{expr: lhs.Clone().Sub(rhs), kind: Equality}
}

// Greater builds lhs > rhs.
func Greater(lhs, rhs *Expression) Constraint {
	return Constraint{expr: lhs.Clone().Sub(rhs), kind: StrictInequality}
}

// Kind returns the relation of c.
func (c Constraint) Kind() Kind { return c.kind }

// IsEquality reports whether c is an equality.
func (c Constraint) IsEquality() bool { return c.kind == Equality }

// IsStrictInequality reports whether c is a strict inequality.
func (c Constraint) IsStrictInequality() bool { return c.kind == StrictInequality }

// Expression returns a copy of the left-hand side (the right side is 0).
func (c Constraint) Expression() *Expression { return c.expr.Clone() }

// Coefficient returns the coefficient of v.
func (c Constraint) Coefficient(v Variable) *big.Int { return c.expr.Coefficient(v) }

// Inhomogeneous returns the constant term.
func (c Constraint) Inhomogeneous() *big.Int { return c.expr.Inhomogeneous() }

// SpaceDimension of the constraint expression.
func (c Constraint) SpaceDimension() int { return c.expr.SpaceDimension() }

// IsSatisfiedBy reports whether the point given by value satisfies c.
func (c Constraint) IsSatisfiedBy(value func(v Variable) *big.Int) bool {
	s := c.expr.Evaluate(value).Sign()
	switch c.kind {
	case Equality:
		return s == 0
	case StrictInequality:
		return s > 0
	}

	return s >= 0
}

// Equal reports structural equality.
func (c Constraint) Equal(o Constraint) bool {
	return c.kind == o.kind && c.expr.Equal(o.expr)
}

// String prints c with the constant moved to the right: "2*A - B >= -3".
func (c Constraint) String() string {
	var b strings.Builder
	if !c.expr.writeTerms(&b) {
		b.WriteString("0")
	}
	b.WriteString(" ")
	b.WriteString(c.kind.Symbol())
	b.WriteString(" ")
	b.WriteString(new(big.Int).Neg(c.expr.inhomo).String())

	return b.String()
}
