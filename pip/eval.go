// SPDX-License-Identifier: MIT

package pip

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvpip/linear"
)

// Evaluate returns the optimal variable values at the parameter point
// (one entry per parameter). ok is false when the point admits no solution.
// Errors: ErrNotSolved before a successful Solve is known; ErrMissingParameter.
func (p *Problem) Evaluate(point map[linear.Variable]*big.Int) (values map[linear.Variable]*big.Int, ok bool, err error) {
	status, err := p.Solve()
	if err != nil {
		return nil, false, err
	}
	for _, d := range p.params.Dims() {
		if _, found := point[linear.Variable(d)]; !found {
			return nil, false, fmt.Errorf("Problem.Evaluate(%s): %w", linear.Variable(d), ErrMissingParameter)
		}
	}
	switch status {
	case Unfeasible:
		return nil, false, nil
	case GaveUp:
		return nil, false, fmt.Errorf("Problem.Evaluate: %w", ErrNotSolved)
	}

	vals := make(map[int]*big.Int, len(point))
	for _, d := range p.params.Dims() {
		vals[d] = new(big.Int).Set(point[linear.Variable(d)])
	}
	value := func(v linear.Variable) *big.Int {
		if x, found := vals[int(v)]; found {
			return x
		}
		return new(big.Int)
	}
	for _, c := range p.constraints {
		if !p.hasVariable(c) && !c.IsSatisfiedBy(value) {
			return nil, false, nil
		}
	}

	leaf := evaluateNode(p.root, vals, p.dim, value)
	if leaf == nil {
		return nil, false, nil
	}
	values = make(map[linear.Variable]*big.Int)
	for d := 0; d < p.dim; d++ {
		v := linear.Variable(d)
		if p.params.Contains(v) {
			continue
		}
		e, err := leaf.ParametricValues(v)
		if err != nil {
			return nil, false, err
		}
		values[v] = e.Evaluate(value)
	}

	return values, true, nil
}

// evaluateNode walks the tree at the point vals, binding the artificial
// parameters on the way down. Returns the applicable leaf or nil.
func evaluateNode(n Node, vals map[int]*big.Int, nextDim int, value func(linear.Variable) *big.Int) *SolutionNode {
	for n != nil {
		b := n.base()
		for _, ap := range b.artificials {
			vals[nextDim] = ap.Evaluate(value)
			nextDim++
		}
		switch m := n.(type) {
		case *SolutionNode:
			if !allSatisfied(m.constraints, value) {
				return nil
			}
			return m
		case *DecisionNode:
			if m.falseChild != nil {
				if m.constraints[0].IsSatisfiedBy(value) {
					n = m.trueChild
				} else {
					n = m.falseChild
				}
				continue
			}
			if !allSatisfied(m.constraints, value) {
				return nil
			}
			n = m.trueChild
		}
	}

	return nil
}

func allSatisfied(cs linear.System, value func(linear.Variable) *big.Int) bool {
	for _, c := range cs {
		if !c.IsSatisfiedBy(value) {
			return false
		}
	}

	return true
}
