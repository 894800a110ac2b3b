// SPDX-License-Identifier: MIT

// Package pip - parameter context.
//
// A context is a matrix over the parameters: column 0 holds the constant
// term, column j >= 1 the coefficient of params[j-1]; every row asserts
// row · (1, p) >= 0. Artificial parameters occupy the last columns.
// Contexts are copied on descent and never shared between branches.
package pip

import (
	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/matrix"
)

// nodeScope is the solving state visible from one node.
type nodeScope struct {
	ctx         *matrix.Dense
	params      []int                 // context columns 1.. -> dimensions
	artificials []ArtificialParameter // in scope, outermost first
	extDim      int                   // dimension of the first artificial parameter
}

// child returns the scope handed to a subtree; ctx is shared and must be
// cloned by the receiver before any change.
func (sc *nodeScope) child(ctx *matrix.Dense) nodeScope {
	return nodeScope{
		ctx:         ctx,
		params:      append([]int(nil), sc.params...),
		artificials: append([]ArtificialParameter(nil), sc.artificials...),
		extDim:      sc.extDim,
	}
}

// nextArtificialDim is the dimension a new artificial parameter would take.
func (sc *nodeScope) nextArtificialDim() int { return sc.extDim + len(sc.artificials) }

// addArtificial appends ap to the context with its two defining rows.
// Returns the context column of ap.
func (sc *nodeScope) addArtificial(ap ArtificialParameter) int {
	col := sc.ctx.Cols()
	sc.ctx.AddZeroColumns(1)
	lo, hi := ap.definingRows(sc.params, col, sc.ctx.Cols())
	debugAssert(sc.ctx.AddRow(lo) == nil, "nodeScope.addArtificial: row width mismatch")
	debugAssert(sc.ctx.AddRow(hi) == nil, "nodeScope.addArtificial: row width mismatch")
	sc.params = append(sc.params, sc.nextArtificialDim())
	sc.artificials = append(sc.artificials, ap)

	return col
}

// enter copies the incoming scope and adds the artificial parameters of b.
func enter(b *nodeBase, in nodeScope) *nodeScope {
	sc := in.child(in.ctx.Clone())
	for _, ap := range b.artificials {
		sc.addArtificial(ap)
	}

	return &sc
}

// mergeConstraints appends one context row per constraint of cs.
func mergeConstraints(ctx *matrix.Dense, cs linear.System, params []int) {
	for _, c := range cs {
		debugAssert(!c.IsStrictInequality(), "mergeConstraints: strict inequality")
		row := matrix.NewRow(ctx.Cols())
		row[0].Set(c.Inhomogeneous())
		for j, dim := range params {
			row[j+1].Set(c.Coefficient(linear.Variable(dim)))
		}
		debugAssert(ctx.AddRow(row) == nil, "mergeConstraints: row width mismatch")
	}
}
