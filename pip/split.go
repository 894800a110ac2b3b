// SPDX-License-Identifier: MIT

package pip

import (
	"math/big"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/matrix"
)

// split branches the node on the mixed row with the lowest score.
//   - The true branch is a copy of the tableau solved under test >= 0.
//   - The false branch reuses n, stripped of its constraints and artificial
//     parameters, solved under test < 0.
//   - The node constraints and artificial parameters move to the node that
//     replaces n.
func (n *SolutionNode) split(sv *solver, sc *nodeScope, from int) (Node, Status) {
	best := -1
	var bestScore *big.Int
	for i := from; i < n.tab.t.Rows(); i++ {
		if n.sign[i] != RowMixed {
			continue
		}
		score := rowScore(n.tab.t.Row(i))
		if best < 0 || score.Cmp(bestScore) < 0 {
			best, bestScore = i, score
		}
	}
	test := n.tab.t.Row(best).Clone()
	test.Normalize()
	sv.log.WithField("row", best).Debugf("splitting on %s", rowConstraint(test, sc.params))

	tru := n.clone(true)
	ctxTrue := sc.ctx.Clone()
	debugAssert(ctxTrue.AddRow(test) == nil, "SolutionNode.split: row width mismatch")
	trueNode, stTrue := tru.solve(sv, sc.child(ctxTrue))
	if stTrue == GaveUp {
		return nil, GaveUp
	}

	cs, aps := n.constraints, n.artificials
	n.constraints, n.artificials = nil, nil
	negTest := matrix.NewRow(len(test))
	negateRow(negTest, test, bigOne)
	debugAssert(sc.ctx.AddRow(negTest) == nil, "SolutionNode.split: row width mismatch")
	falseNode, stFalse := n.solve(sv, sc.child(sc.ctx))
	if stFalse == GaveUp {
		return nil, GaveUp
	}

	switch {
	case stTrue == Unfeasible && stFalse == Unfeasible:
		return nil, Unfeasible
	case stTrue == Unfeasible:
		return guard(falseNode, cs, aps, rowConstraint(negTest, sc.params)), Optimized
	case stFalse == Unfeasible:
		return guard(trueNode, cs, aps, rowConstraint(test, sc.params)), Optimized
	}

	parent := &DecisionNode{trueChild: trueNode, falseChild: falseNode}
	parent.addConstraint(test, sc.params)
	top := parent
	if len(cs) > 0 {
		top = &DecisionNode{nodeBase: nodeBase{constraints: cs}, trueChild: parent}
	}
	top.artificials = aps

	return top, Optimized
}

// guard restricts the surviving branch of a split to the region where cs
// and c hold, moving the artificial parameters aps in front of its own.
func guard(survivor Node, cs linear.System, aps []ArtificialParameter, c linear.Constraint) Node {
	extra := append(cs.Clone(), c)
	switch m := survivor.(type) {
	case *SolutionNode:
		m.constraints = append(extra, m.constraints...)
		m.artificials = append(cloneArtificials(aps), m.artificials...)
		return m
	case *DecisionNode:
		if m.falseChild == nil {
			m.constraints = append(extra, m.constraints...)
			m.artificials = append(cloneArtificials(aps), m.artificials...)
			return m
		}
	}

	return &DecisionNode{
		nodeBase:  nodeBase{constraints: extra, artificials: cloneArtificials(aps)},
		trueChild: survivor,
	}
}

// rowConstraint turns a context row into row · (1, params) >= 0.
func rowConstraint(row matrix.Row, params []int) linear.Constraint {
	var b nodeBase
	b.addConstraint(row, params)

	return b.constraints[0]
}
