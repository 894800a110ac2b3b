// SPDX-License-Identifier: MIT

// Package pip - solution tree.
//
// Node is a sealed sum type: *SolutionNode or *DecisionNode. A nil Node is
// the empty solution (_|_). Every node carries parametric constraints and
// the artificial parameters it introduces; an artificial parameter of a
// node is in scope for the node itself and its whole subtree.
package pip

import (
	"math/big"

	"github.com/katalvlaran/lvpip/linear"
)

// Node is an element of the solution tree.
type Node interface {
	// Constraints returns the parametric constraints of the node.
	Constraints() linear.System
	// ArtificialParameters returns the artificial parameters introduced by the node.
	ArtificialParameters() []ArtificialParameter

	base() *nodeBase
}

type nodeBase struct {
	constraints linear.System
	artificials []ArtificialParameter
}

func (b *nodeBase) base() *nodeBase { return b }

// Constraints returns a copy of the node constraints.
func (b *nodeBase) Constraints() linear.System { return b.constraints.Clone() }

// ArtificialParameters returns a copy of the node artificial parameters.
func (b *nodeBase) ArtificialParameters() []ArtificialParameter {
	return cloneArtificials(b.artificials)
}

// addConstraint appends row[0] + sum row[j]*params[j-1] >= 0.
func (b *nodeBase) addConstraint(row []*big.Int, params []int) {
	e := linear.NewExpressionBig(row[0])
	for j, dim := range params {
		e.AddTermBig(linear.Variable(dim), row[j+1])
	}
	b.constraints.Insert(linear.NewConstraint(e, linear.NonStrictInequality))
}

// ok checks the constraint invariant shared by all nodes.
func (b *nodeBase) ok() bool { return !b.constraints.HasStrictInequalities() }

// DecisionNode branches on its constraints. A nil child means no solution
// on that branch; at least one child is non-nil.
//   - With a false child it has exactly one constraint: the true child
//     applies where it holds, the false child elsewhere.
//   - Without a false child the true child applies where all constraints
//     hold; elsewhere there is no solution.
type DecisionNode struct {
	nodeBase
	trueChild  Node
	falseChild Node
}

// Child returns the true or false child (nil means no solution).
func (d *DecisionNode) Child(branch bool) Node {
	if branch {
		return d.trueChild
	}

	return d.falseChild
}

func (d *DecisionNode) ok() bool {
	if !d.nodeBase.ok() || (d.trueChild == nil && d.falseChild == nil) {
		return false
	}
	if d.falseChild != nil && len(d.constraints) != 1 {
		return false
	}

	return nodeOK(d.trueChild) && nodeOK(d.falseChild)
}

// nodeOK dispatches the well-formedness check; nil is well formed.
func nodeOK(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *SolutionNode:
		return n.ok()
	case *DecisionNode:
		return n.ok()
	}

	return false
}

// cloneNode deep-copies a tree.
func cloneNode(n Node) Node {
	switch n := n.(type) {
	case *SolutionNode:
		return n.clone(false)
	case *DecisionNode:
		return &DecisionNode{
			nodeBase:   nodeBase{constraints: n.constraints.Clone(), artificials: cloneArtificials(n.artificials)},
			trueChild:  cloneNode(n.trueChild),
			falseChild: cloneNode(n.falseChild),
		}
	}

	return nil
}

// bindParameters gives every leaf its full parameter list: the problem
// parameters followed by the dimensions of the in-scope artificial parameters.
func bindParameters(n Node, params []int, nextDim int) {
	if n == nil {
		return
	}
	b := n.base()
	scope := append([]int(nil), params...)
	for range b.artificials {
		scope = append(scope, nextDim)
		nextDim++
	}
	switch n := n.(type) {
	case *SolutionNode:
		n.params = scope
		n.solutionValid = false
		n.updateSolution()
	case *DecisionNode:
		bindParameters(n.trueChild, scope, nextDim)
		bindParameters(n.falseChild, scope, nextDim)
	}
}
