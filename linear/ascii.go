// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvpip/matrix"
)

// Dump writes e as "size <n> c0 c1 ... c_{n-1}" where c0 is the constant
// term and n = SpaceDimension()+1.
func (e *Expression) Dump(d *matrix.DumpWriter) {
	d.Printf("size %d %s", len(e.coeffs)+1, e.inhomo.String())
	for _, c := range e.coeffs {
		d.Printf(" %s", c.String())
	}
	d.Printf("\n")
}

// LoadExpression reads an expression written by Expression.Dump.
func LoadExpression(t *matrix.Tokenizer) (*Expression, error) {
	if err := t.Expect("size"); err != nil {
		return nil, err
	}
	n, err := t.Int()
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: expression size %d", ErrBadFormat, n)
	}
	e := &Expression{}
	if e.inhomo, err = t.BigInt(); err != nil {
		return nil, err
	}
	e.coeffs = make([]*big.Int, n-1)
	for i := range e.coeffs {
		if e.coeffs[i], err = t.BigInt(); err != nil {
			return nil, err
		}
	}
	e.trim()

	return e, nil
}

// Dump writes s as "<n> constraints" followed by one "<kind> <expr>" line each.
func (s System) Dump(d *matrix.DumpWriter) {
	d.Printf("%d constraints\n", len(s))
	for _, c := range s {
		d.Printf("%s ", c.kind.Symbol())
		c.expr.Dump(d)
	}
}

// LoadSystem reads a system written by System.Dump.
func LoadSystem(t *matrix.Tokenizer) (System, error) {
	n, err := t.Int()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d constraints", ErrBadFormat, n)
	}
	if err = t.Expect("constraints"); err != nil {
		return nil, err
	}
	s := make(System, 0, n)
	for i := 0; i < n; i++ {
		tok, err := t.Next()
		if err != nil {
			return nil, err
		}
		kind, err := ParseKind(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadFormat, err)
		}
		e, err := LoadExpression(t)
		if err != nil {
			return nil, err
		}
		s = append(s, Constraint{expr: e, kind: kind})
	}

	return s, nil
}
