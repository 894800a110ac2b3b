// SPDX-License-Identifier: MIT

package pip

// solve re-solves both subtrees: the true child under the node
// constraints, the false child under the negation of the single test.
func (d *DecisionNode) solve(sv *solver, in nodeScope) (Node, Status) {
	sc := enter(&d.nodeBase, in)
	ctxTrue := sc.ctx.Clone()
	mergeConstraints(ctxTrue, d.constraints, sc.params)
	trueNode, stTrue := solveNode(d.trueChild, sv, sc.child(ctxTrue))
	if stTrue == GaveUp {
		return nil, GaveUp
	}
	d.trueChild = trueNode

	stFalse := Unfeasible
	if d.falseChild != nil {
		debugAssert(len(d.constraints) == 1, "DecisionNode.solve: false child needs exactly one constraint")
		ctxFalse := sc.ctx.Clone()
		mergeConstraints(ctxFalse, d.constraints, sc.params)
		last := ctxFalse.Row(ctxFalse.Rows() - 1)
		negateRow(last, last, bigOne)
		var falseNode Node
		falseNode, stFalse = solveNode(d.falseChild, sv, sc.child(ctxFalse))
		if stFalse == GaveUp {
			return nil, GaveUp
		}
		d.falseChild = falseNode
	}

	if stTrue == Unfeasible && stFalse == Unfeasible {
		return nil, Unfeasible
	}

	return d, Optimized
}

// updateTree forwards new constraints to every leaf.
func updateTree(n Node, extDim, first int, pb *Problem) {
	switch n := n.(type) {
	case *SolutionNode:
		n.updateTableau(extDim, first, pb.constraints, pb.params, pb.bigParameter)
	case *DecisionNode:
		updateTree(n.trueChild, extDim, first, pb)
		updateTree(n.falseChild, extDim, first, pb)
	}
}
