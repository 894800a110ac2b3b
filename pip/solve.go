// SPDX-License-Identifier: MIT

// Package pip - parametric dual simplex on a solution node.
//
// Implementation (one iteration of the main loop):
//   - Stage 1: refresh unknown/mixed row signs; locate the first negative
//     and the first mixed row.
//   - Stage 2: without negative rows, refine each mixed row by checking
//     t >= 0 and t < 0 against the context; then treat as negative any mixed
//     row with a positive variable coefficient whose t > 0 is incompatible.
//   - Stage 3a: a negative row exists: pivot (or report Unfeasible when a
//     negative row has no positive entry).
//   - Stage 3b: a mixed row without positive variable entries becomes a
//     context tautology; otherwise the node splits on the best mixed row.
//   - Stage 3c: all rows are non-negative: integral vertices are optimal,
//     fractional ones get Gomory cuts.
package pip

import (
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpip/matrix"
)

// solver carries the per-Solve configuration and counters.
type solver struct {
	opts Options
	log  logrus.FieldLogger
	cuts int
}

func newSolver(o Options) *solver {
	return &solver{opts: o, log: o.logger}
}

// compatible runs the compatibility check with the configured step limit.
func (sv *solver) compatible(ctx *matrix.Dense, row matrix.Row) bool {
	return compatibilityCheck(ctx, row, sv.opts.compatLimit)
}

// solveNode dispatches on the node kind; a nil node stays infeasible.
func solveNode(n Node, sv *solver, sc nodeScope) (Node, Status) {
	switch n := n.(type) {
	case *SolutionNode:
		return n.solve(sv, sc)
	case *DecisionNode:
		return n.solve(sv, sc)
	}

	return nil, Unfeasible
}

// solve runs the parametric simplex until the node is optimal, infeasible
// or split. The returned Node replaces n in its parent.
func (n *SolutionNode) solve(sv *solver, in nodeScope) (Node, Status) {
	sc := enter(&n.nodeBase, in)
	mergeConstraints(sc.ctx, n.constraints, sc.params)

	for {
		debugAssert(n.ok(), "SolutionNode.solve: broken node")
		negRow, mixRow := n.analyseSigns(sv, sc)

		switch {
		case negRow >= 0:
			if !n.pivot(sv) {
				sv.log.Debug("no positive pivot: node is empty")
				return nil, Unfeasible
			}
		case mixRow >= 0:
			if n.addTautology(sv, sc, mixRow) {
				continue
			}
			return n.split(sv, sc, mixRow)
		default:
			n.tab.normalize()
			if n.isIntegral() {
				sv.log.WithField("rows", n.tab.s.Rows()).Debug("integral solution found")
				return n, Optimized
			}
			if !n.cut(sv, sc) {
				return nil, GaveUp
			}
		}
	}
}

// analyseSigns refreshes the sign cache and returns the first negative and
// the first mixed row (-1 when none).
func (n *SolutionNode) analyseSigns(sv *solver, sc *nodeScope) (negRow, mixRow int) {
	negRow, mixRow = -1, -1
	rows := n.tab.t.Rows()
	for i := 0; i < rows; i++ {
		s := n.sign[i]
		if s == RowUnknown || s == RowMixed {
			s = rowSign(n.tab.t.Row(i), n.bigDimension)
			n.sign[i] = s
		}
		if s == RowNegative && negRow < 0 {
			negRow = i
		}
		if s == RowMixed && mixRow < 0 {
			mixRow = i
		}
	}
	if negRow >= 0 || mixRow < 0 {
		return negRow, mixRow
	}

	// Refine mixed rows against the context, both ways.
	for i := mixRow; i < rows; i++ {
		if n.sign[i] != RowMixed {
			continue
		}
		t := n.tab.t.Row(i)
		s := RowZero
		if sv.compatible(sc.ctx, t) {
			s = RowPositive
		}
		neg := matrix.NewRow(len(t))
		negateRow(neg, t, n.tab.den)
		if sv.compatible(sc.ctx, neg) {
			if s == RowPositive {
				s = RowMixed
			} else {
				s = RowNegative
			}
		}
		if s == RowNegative && negRow < 0 {
			negRow = i
		}
		if s != RowMixed {
			if i == mixRow {
				mixRow = -1
			}
		} else if mixRow < 0 {
			mixRow = i
		}
		n.sign[i] = s
	}

	if negRow >= 0 || mixRow < 0 {
		return negRow, mixRow
	}

	// A mixed row with a positive variable coefficient whose t > 0 is
	// incompatible with the context can be treated as negative.
	for i := mixRow; i < rows; i++ {
		if n.sign[i] != RowMixed || !hasPositive(n.tab.s.Row(i)) {
			continue
		}
		row := n.tab.t.Row(i).Clone()
		mod := modPositive(row[0], n.tab.den)
		if mod.Sign() == 0 {
			row[0].Sub(row[0], n.tab.den)
		} else {
			row[0].Sub(row[0], mod)
		}
		if sv.compatible(sc.ctx, row) {
			if mixRow < 0 {
				mixRow = i
			}
			continue
		}
		n.sign[i] = RowNegative
		if negRow < 0 {
			negRow = i
		}
		if mixRow == i {
			mixRow = -1
		}
	}

	return negRow, mixRow
}

func hasPositive(r matrix.Row) bool {
	for _, v := range r {
		if v.Sign() > 0 {
			return true
		}
	}

	return false
}

// pivot selects a pivot among the negative rows and performs it.
// Reports false when some negative row has no positive entry.
func (n *SolutionNode) pivot(sv *solver) bool {
	pi, pj := -1, -1
	for i := 0; i < n.tab.s.Rows(); i++ {
		if n.sign[i] != RowNegative {
			continue
		}
		j, ok := findLexicoMinimumColumn(n.tab.s, n.mapping, n.basis, n.tab.s.Row(i), 0)
		if !ok {
			return false
		}
		if pj < 0 || n.tab.isBetterPivot(n.mapping, n.basis, i, j, pi, pj) {
			pi, pj = i, j
			if sv.opts.pivotRow == PivotRowFirst {
				break
			}
		}
	}
	sv.log.WithFields(logrus.Fields{"row": pi, "column": pj}).Debug("pivot")
	n.tab.normalize()
	n.pivotAt(pi, pj)

	return true
}

// pivotAt exchanges the variable of row pi with the variable of column pj.
//   - Row pi becomes the row of the leaving column variable.
//   - All entries are computed exactly over the denominator a*den, where
//     a = s[pi][pj] > 0; the tableau is normalized afterwards.
func (n *SolutionNode) pivotAt(pi, pj int) {
	tb := n.tab
	a := new(big.Int).Set(tb.s.Row(pi)[pj])
	d0 := new(big.Int).Set(tb.den)
	ps := tb.s.Row(pi).Clone()
	pt := tb.t.Row(pi).Clone()

	varJ, varI := n.varColumn[pj], n.varRow[pi]
	n.basis[varJ] = false
	n.mapping[varJ] = pi
	n.varRow[pi] = varJ
	n.basis[varI] = true
	n.mapping[varI] = pj
	n.varColumn[pj] = varI

	// Column pj before the update; row pi restarts as its identity row.
	col := make([]*big.Int, tb.s.Rows())
	for k := range col {
		col[k] = new(big.Int).Set(tb.s.Row(k)[pj])
	}
	col[pi].Set(d0)
	for _, v := range tb.s.Row(pi) {
		v.SetInt64(0)
	}
	for _, v := range tb.t.Row(pi) {
		v.SetInt64(0)
	}
	n.sign[pi] = RowZero

	tb.scale(a)
	c := new(big.Int)
	for k := 0; k < tb.s.Rows(); k++ {
		sk, tk, skj := tb.s.Row(k), tb.t.Row(k), col[k]
		for j := range sk {
			if j != pj && ps[j].Sign() != 0 {
				sk[j].Sub(sk[j], c.Mul(skj, ps[j]))
			}
		}
		for j := range tk {
			if pt[j].Sign() == 0 {
				continue
			}
			c.Mul(skj, pt[j])
			tk[j].Sub(tk[j], c)
			n.sign[k] = signAfterSubtract(n.sign[k], c.Sign())
		}
		if n.sign[k] == RowNegative && tk[0].Sign() == 0 {
			n.sign[k] = rowSign(tk, n.bigDimension)
		}
		sk[pj].Mul(skj, d0)
	}
	tb.normalize()
	n.solutionValid = false
}

// signAfterSubtract updates a cached row sign after subtracting a value of sign c.
func signAfterSubtract(s RowSign, c int) RowSign {
	switch s {
	case RowZero:
		if c > 0 {
			return RowNegative
		} else if c < 0 {
			return RowPositive
		}
	case RowPositive:
		if c > 0 {
			return RowMixed
		}
	case RowNegative:
		if c < 0 {
			return RowMixed
		}
	}

	return s
}

// rowScore sums the entries of r.
func rowScore(r matrix.Row) *big.Int {
	s := new(big.Int)
	for _, v := range r {
		s.Add(s, v)
	}

	return s
}

// addTautology looks for a mixed row without positive variable entries;
// its parametric part must be non-negative wherever the node is feasible,
// so it joins the node constraints. Reports whether one was found.
func (n *SolutionNode) addTautology(sv *solver, sc *nodeScope, from int) bool {
	best := -1
	var bestScore *big.Int
	for i := from; i < n.tab.t.Rows(); i++ {
		if n.sign[i] != RowMixed || hasPositive(n.tab.s.Row(i)) {
			continue
		}
		score := rowScore(n.tab.t.Row(i))
		if best < 0 || score.Cmp(bestScore) < 0 {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return false
	}
	r := n.tab.t.Row(best).Clone()
	r.Normalize()
	debugAssert(sc.ctx.AddRow(r) == nil, "SolutionNode.addTautology: row width mismatch")
	n.addConstraint(r, sc.params)
	n.sign[best] = RowPositive
	sv.log.WithField("row", best).Debugf("adding tautology %s", n.constraints[len(n.constraints)-1])

	return true
}

// isIntegral reports whether every non-basic problem variable has an
// integral parametric value.
func (n *SolutionNode) isIntegral() bool {
	for v := 0; v < n.tab.s.Cols(); v++ {
		if n.basis[v] {
			continue
		}
		for _, x := range n.tab.t.Row(n.mapping[v]) {
			if !divisible(x, n.tab.den) {
				return false
			}
		}
	}

	return true
}
