// SPDX-License-Identifier: MIT

// Package pip - Problem: the user-facing driver.
//
// Lifecycle:
//   - NewProblem → AddConstraint(s) → Solve → Solution / Evaluate / PrintSolution.
//   - Adding constraints after a successful Solve keeps the solution tree and
//     forwards the new constraints to every leaf (incremental solving).
//   - Changing dimensions or the big parameter discards the tree; the next
//     Solve rebuilds it from scratch.
//
// Errors:
//   - Invalid input is reported as wrapped sentinel errors; infeasibility is
//     a Status, never an error.
package pip

import (
	"fmt"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/matrix"
)

type problemState int

const (
	statePartiallySatisfiable problemState = iota
	stateUnsatisfiable
	stateOptimized
)

// Problem is a parametric integer program over a space of dimensions,
// some of which are parameters. Not safe for concurrent use.
type Problem struct {
	dim          int
	params       linear.VariablesSet
	constraints  linear.System
	firstPending int
	state        problemState
	root         Node
	bigParameter int // dimension of the big parameter, -1 when unset
	opts         Options
	initialCtx   *matrix.Dense
}

// NewProblem returns a problem of dimension dim whose parameters are params.
// Panics when a parameter exceeds dim (programmer error).
func NewProblem(dim int, params linear.VariablesSet, opts ...Option) *Problem {
	if dim < 0 || params.Max() >= dim {
		panic(fmt.Sprintf("pip: NewProblem: parameters %s outside dimension %d", params, dim))
	}

	return &Problem{
		dim:          dim,
		params:       params.Clone(),
		bigParameter: -1,
		opts:         gatherOptions(opts...),
	}
}

// SpaceDimension returns the total number of dimensions.
func (p *Problem) SpaceDimension() int { return p.dim }

// ParameterSpaceDimensions returns the parameter set.
func (p *Problem) ParameterSpaceDimensions() linear.VariablesSet { return p.params.Clone() }

// Constraints returns a copy of all constraints added so far.
func (p *Problem) Constraints() linear.System { return p.constraints.Clone() }

// CuttingStrategy returns the current cutting strategy.
func (p *Problem) CuttingStrategy() CuttingStrategy { return p.opts.cutting }

// PivotRowStrategy returns the current pivot row strategy.
func (p *Problem) PivotRowStrategy() PivotRowStrategy { return p.opts.pivotRow }

// BigParameterDimension returns the big parameter dimension, or -1.
func (p *Problem) BigParameterDimension() int { return p.bigParameter }

// AddConstraint appends c.
// Errors: ErrStrictInequality; ErrDimensionMismatch when c exceeds the space dimension.
func (p *Problem) AddConstraint(c linear.Constraint) error {
	if c.IsStrictInequality() {
		return fmt.Errorf("Problem.AddConstraint(%s): %w", c, ErrStrictInequality)
	}
	if c.SpaceDimension() > p.dim {
		return fmt.Errorf("Problem.AddConstraint(%s): %w", c, ErrDimensionMismatch)
	}
	p.constraints.Insert(c)
	if p.state == stateOptimized {
		p.state = statePartiallySatisfiable
	}

	return nil
}

// AddConstraints appends every member of cs; on error nothing is added.
func (p *Problem) AddConstraints(cs linear.System) error {
	for _, c := range cs {
		if c.IsStrictInequality() {
			return fmt.Errorf("Problem.AddConstraints(%s): %w", c, ErrStrictInequality)
		}
		if c.SpaceDimension() > p.dim {
			return fmt.Errorf("Problem.AddConstraints(%s): %w", c, ErrDimensionMismatch)
		}
	}
	for _, c := range cs {
		debugAssert(p.AddConstraint(c) == nil, "Problem.AddConstraints: validated constraint rejected")
	}

	return nil
}

// AddSpaceDimensionsAndEmbed appends mVars variables then mParams parameters.
func (p *Problem) AddSpaceDimensionsAndEmbed(mVars, mParams int) {
	if mVars < 0 || mParams < 0 {
		panic("pip: AddSpaceDimensionsAndEmbed: negative dimension count")
	}
	if mVars == 0 && mParams == 0 {
		return
	}
	p.dim += mVars
	for i := 0; i < mParams; i++ {
		p.params.Insert(linear.Variable(p.dim))
		p.dim++
	}
	p.reset()
}

// AddToParameterSpaceDimensions turns the given variables into parameters.
// Errors: ErrDimensionMismatch when a dimension is outside the space.
func (p *Problem) AddToParameterSpaceDimensions(vs linear.VariablesSet) error {
	if vs.Max() >= p.dim {
		return fmt.Errorf("Problem.AddToParameterSpaceDimensions(%s): %w", vs, ErrDimensionMismatch)
	}
	before := p.params.Len()
	p.params.InsertAll(vs)
	if p.params.Len() != before {
		p.reset()
	}

	return nil
}

// SetCuttingStrategy changes the cutting strategy for later solves.
// Panics on an unknown strategy.
func (p *Problem) SetCuttingStrategy(s CuttingStrategy) { WithCuttingStrategy(s)(&p.opts) }

// SetPivotRowStrategy changes the pivot row strategy for later solves.
// Panics on an unknown strategy.
func (p *Problem) SetPivotRowStrategy(s PivotRowStrategy) { WithPivotRowStrategy(s)(&p.opts) }

// SetBigParameterDimension marks the parameter dim as "big": its sign
// decides the sign of every row where it occurs.
// Errors: ErrNotAParameter.
func (p *Problem) SetBigParameterDimension(dim int) error {
	if dim < 0 || !p.params.Contains(linear.Variable(dim)) {
		return fmt.Errorf("Problem.SetBigParameterDimension(%d): %w", dim, ErrNotAParameter)
	}
	if p.bigParameter != dim {
		p.bigParameter = dim
		p.reset()
	}

	return nil
}

// Clear drops every constraint and the solution, keeping dimensions and options.
func (p *Problem) Clear() {
	p.constraints = nil
	p.bigParameter = -1
	p.reset()
}

// reset discards the tree; the next Solve starts from scratch.
func (p *Problem) reset() {
	p.root = nil
	p.firstPending = 0
	p.state = statePartiallySatisfiable
	p.initialCtx = nil
}

// hasVariable reports whether c has a non-zero variable coefficient.
func (p *Problem) hasVariable(c linear.Constraint) bool {
	for i := 0; i < c.SpaceDimension(); i++ {
		if !p.params.Contains(linear.Variable(i)) && c.Coefficient(linear.Variable(i)).Sign() != 0 {
			return true
		}
	}

	return false
}

// extendContext appends the parameter-only pending constraints to the
// initial context; an equality contributes both inequalities.
func (p *Problem) extendContext() {
	params := p.params.Dims()
	if p.initialCtx == nil {
		p.initialCtx, _ = matrix.NewDense(0, 1+len(params))
	}
	for _, c := range p.constraints[p.firstPending:] {
		if p.hasVariable(c) {
			continue
		}
		row := matrix.NewRow(1 + len(params))
		row[0].Set(c.Inhomogeneous())
		for j, dim := range params {
			row[j+1].Set(c.Coefficient(linear.Variable(dim)))
		}
		debugAssert(p.initialCtx.AddRow(row) == nil, "Problem.extendContext: row width mismatch")
		if c.IsEquality() {
			row.Negate()
			debugAssert(p.initialCtx.AddRow(row) == nil, "Problem.extendContext: row width mismatch")
		}
	}
}

// Solve computes the parametric lexicographic minimum.
// Returns Unfeasible, Optimized, or GaveUp when the cut limit is reached
// (the tree is then discarded). The error is reserved for internal failures.
func (p *Problem) Solve() (Status, error) {
	switch p.state {
	case stateUnsatisfiable:
		return Unfeasible, nil
	case stateOptimized:
		return Optimized, nil
	}

	sv := newSolver(p.opts)
	p.extendContext()
	if !sv.compatible(p.initialCtx, matrix.NewRow(p.initialCtx.Cols())) {
		sv.log.Debug("initial context is empty")
		p.markUnsatisfiable()
		return Unfeasible, nil
	}

	if p.root == nil && p.firstPending == 0 {
		p.root = newSolutionNode()
	}
	if p.root != nil {
		updateTree(p.root, p.dim, p.firstPending, p)
	}
	p.firstPending = len(p.constraints)

	params := p.params.Dims()
	root, status := solveNode(p.root, sv, nodeScope{ctx: p.initialCtx, params: params, extDim: p.dim})
	switch status {
	case Unfeasible:
		p.markUnsatisfiable()
	case GaveUp:
		sv.log.WithField("cuts", sv.cuts).Debug("gave up")
		p.reset()
	case Optimized:
		p.root = root
		p.state = stateOptimized
		bindParameters(p.root, params, p.dim)
		if !nodeOK(p.root) {
			return status, fmt.Errorf("Problem.Solve: %w", ErrBrokenTree)
		}
	}

	return status, nil
}

func (p *Problem) markUnsatisfiable() {
	p.root = nil
	p.state = stateUnsatisfiable
	p.firstPending = len(p.constraints)
}

// IsSatisfiable reports whether some parameter point admits a solution.
func (p *Problem) IsSatisfiable() (bool, error) {
	st, err := p.Solve()
	if err != nil {
		return false, err
	}

	return st == Optimized, nil
}

// Solution returns the root of the solution tree (nil when unsolved or infeasible).
func (p *Problem) Solution() Node {
	if p.state != stateOptimized {
		return nil
	}

	return p.root
}

// OptimizingSolution solves the problem if needed and returns the tree root.
func (p *Problem) OptimizingSolution() (Node, error) {
	if _, err := p.Solve(); err != nil {
		return nil, err
	}

	return p.Solution(), nil
}
