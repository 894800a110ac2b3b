// SPDX-License-Identifier: MIT

// Package pip - SolutionNode: a leaf holding a parametric simplex tableau.
//
// Variable bookkeeping:
//   - variables 0..nVars-1 are the problem variables, the following ones are
//     the slack variables of tableau rows (constraints and cuts);
//   - basis[v] true: v is a column variable (value 0 at the vertex) and
//     mapping[v] is its s column; otherwise mapping[v] is its row;
//   - varRow[i] / varColumn[j] give the variable of row i / column j.
//
// Equalities:
//   - f = 0 adds the row f >= 0, and -f is accumulated in one extra row
//     (specialEqualityRow, 0 when absent) while that row stays non-basic.
package pip

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/matrix"
)

// SolutionNode is a leaf of the solution tree.
type SolutionNode struct {
	nodeBase

	tab                tableau
	basis              []bool
	mapping            []int
	varRow             []int
	varColumn          []int
	specialEqualityRow int
	bigDimension       int // t column of the big parameter, -1 when unset
	sign               []RowSign

	solution      []*linear.Expression
	solutionValid bool
	params        []int // bound parameter dimensions (t columns 1..)
}

func newSolutionNode() *SolutionNode {
	return &SolutionNode{tab: newTableau(), bigDimension: -1}
}

// clone deep-copies n; emptyConstraints drops constraints and artificial parameters.
func (n *SolutionNode) clone(emptyConstraints bool) *SolutionNode {
	c := &SolutionNode{
		tab:                n.tab.clone(),
		basis:              append([]bool(nil), n.basis...),
		mapping:            append([]int(nil), n.mapping...),
		varRow:             append([]int(nil), n.varRow...),
		varColumn:          append([]int(nil), n.varColumn...),
		specialEqualityRow: n.specialEqualityRow,
		bigDimension:       n.bigDimension,
		sign:               append([]RowSign(nil), n.sign...),
		solutionValid:      n.solutionValid,
		params:             append([]int(nil), n.params...),
	}
	for _, e := range n.solution {
		c.solution = append(c.solution, e.Clone())
	}
	if !emptyConstraints {
		c.constraints = n.constraints.Clone()
		c.artificials = cloneArtificials(n.artificials)
	}

	return c
}

// NumVariables returns the number of problem variables of the tableau.
func (n *SolutionNode) NumVariables() int { return n.tab.s.Cols() }

// Parameters returns the parameter dimensions the values are expressed in:
// the problem parameters followed by the in-scope artificial parameters.
func (n *SolutionNode) Parameters() []int { return append([]int(nil), n.params...) }

// ParametricValues returns the value of variable v as an affine expression
// of Parameters().
// Errors: ErrIsAParameter when v is a parameter; ErrDimensionMismatch when
// v is not a problem dimension.
func (n *SolutionNode) ParametricValues(v linear.Variable) (*linear.Expression, error) {
	idx, err := n.variableIndex(v)
	if err != nil {
		return nil, fmt.Errorf("SolutionNode.ParametricValues(%s): %w", v, err)
	}
	n.updateSolution()

	return n.solution[idx].Clone(), nil
}

// variableIndex maps a problem variable dimension to its tableau variable.
func (n *SolutionNode) variableIndex(v linear.Variable) (int, error) {
	if v < 0 {
		return 0, ErrDimensionMismatch
	}
	below := 0
	for _, p := range n.params {
		if p == int(v) {
			return 0, ErrIsAParameter
		}
		if p < int(v) {
			below++
		}
	}
	idx := int(v) - below
	if idx >= n.tab.s.Cols() {
		return 0, ErrDimensionMismatch
	}

	return idx, nil
}

// updateSolution recomputes the values of the problem variables from the tableau.
func (n *SolutionNode) updateSolution() {
	if n.solutionValid {
		return
	}
	numVars := n.tab.s.Cols()
	n.solution = make([]*linear.Expression, numVars)
	d := n.tab.den
	for i := 0; i < numVars; i++ {
		if n.basis[i] {
			n.solution[i] = linear.NewExpression(0)
			continue
		}
		row := n.tab.t.Row(n.mapping[i])
		e := linear.NewExpressionBig(new(big.Int).Quo(row[0], d))
		for k, dim := range n.params {
			if k+1 >= len(row) {
				break
			}
			e.AddTermBig(linear.Variable(dim), new(big.Int).Quo(row[k+1], d))
		}
		n.solution[i] = e
	}
	n.solutionValid = true
}

// updateTableau appends the constraints cs[first:] to the tableau.
// extDim is the problem space dimension and params its parameter set;
// bigParam is the big parameter dimension or -1. Constraints without
// variable coefficients belong to the initial context and are skipped.
func (n *SolutionNode) updateTableau(extDim, first int, cs linear.System, params linear.VariablesSet, bigParam int) {
	tb := n.tab
	if tb.t.Cols() == 0 {
		tb.t.AddZeroColumns(1)
		for i := 0; i < extDim; i++ {
			if params.Contains(linear.Variable(i)) {
				tb.t.AddZeroColumns(1)
				continue
			}
			col := tb.s.Cols()
			tb.s.AddZeroColumns(1)
			n.basis = append(n.basis, true)
			n.mapping = append(n.mapping, col)
			n.varColumn = append(n.varColumn, col)
		}
	}
	if n.bigDimension < 0 && bigParam >= 0 && params.Contains(linear.Variable(bigParam)) {
		n.bigDimension = 1 + params.Rank(bigParam)
	}

	den := tb.den
	c := new(big.Int)
	for _, cst := range cs[first:] {
		v := matrix.NewRow(tb.s.Cols())
		p := matrix.NewRow(tb.t.Cols())
		cnst := cst.Inhomogeneous()
		if cst.IsStrictInequality() {
			cnst.Sub(cnst, bigOne)
		}
		p[0].Mul(cnst, den)
		hasVariable := false
		for i := 0; i < cst.SpaceDimension(); i++ {
			coeff := cst.Coefficient(linear.Variable(i))
			if params.Contains(linear.Variable(i)) {
				p[1+params.Rank(i)].Mul(coeff, den)
				continue
			}
			if coeff.Sign() == 0 {
				continue
			}
			hasVariable = true
			vi := i - params.Rank(i)
			idx := n.mapping[vi]
			if n.basis[vi] {
				v[idx].Add(v[idx], c.Mul(coeff, den))
			} else {
				debugAssert(v.AddMul(tb.s.Row(idx), coeff) == nil, "SolutionNode.updateTableau: row width mismatch")
				debugAssert(p.AddMul(tb.t.Row(idx), coeff) == nil, "SolutionNode.updateTableau: row width mismatch")
			}
		}
		if !hasVariable {
			continue
		}
		n.appendRow(v, p)
		if !cst.IsEquality() {
			continue
		}
		if n.specialEqualityRow == 0 || n.basis[n.specialEqualityRow] {
			negateRow(v, v, nil)
			negateRow(p, p, nil)
			n.specialEqualityRow = len(n.mapping)
			n.appendRow(v, p)
		} else {
			row := n.mapping[n.specialEqualityRow]
			debugAssert(tb.s.Row(row).Sub(v) == nil, "SolutionNode.updateTableau: row width mismatch")
			debugAssert(tb.t.Row(row).Sub(p) == nil, "SolutionNode.updateTableau: row width mismatch")
			n.sign[row] = rowSign(tb.t.Row(row), n.bigDimension)
		}
	}
	n.solutionValid = false
	debugAssert(n.ok(), "SolutionNode.updateTableau: broken node")
}

// appendRow adds a constraint row owned by a fresh slack variable.
func (n *SolutionNode) appendRow(v, p matrix.Row) {
	rowID := n.tab.s.Rows()
	debugAssert(n.tab.addRow(v, p) == nil, "SolutionNode.appendRow: row width mismatch")
	n.sign = append(n.sign, rowSign(p, n.bigDimension))
	n.varRow = append(n.varRow, len(n.mapping))
	n.basis = append(n.basis, false)
	n.mapping = append(n.mapping, rowID)
}

// ok checks the tableau and the variable cross-reference.
func (n *SolutionNode) ok() bool {
	if !n.nodeBase.ok() || !n.tab.ok() {
		return false
	}
	if len(n.basis) != len(n.mapping) || len(n.basis) != len(n.varRow)+len(n.varColumn) {
		return false
	}
	if len(n.varColumn) != n.tab.s.Cols() || len(n.varRow) != n.tab.s.Rows() || len(n.sign) != n.tab.s.Rows() {
		return false
	}
	for v, rc := range n.mapping {
		if n.basis[v] && (rc >= len(n.varColumn) || n.varColumn[rc] != v) {
			return false
		}
		if !n.basis[v] && (rc >= len(n.varRow) || n.varRow[rc] != v) {
			return false
		}
	}

	return true
}
