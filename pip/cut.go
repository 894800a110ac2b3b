// SPDX-License-Identifier: MIT

// Package pip - Gomory cuts on fractional vertices.
//
// Row selection:
//   - CuttingFirst: the non-basic problem variable row with the fewest
//     fractional parametric coefficients.
//   - CuttingDeepest: fewest fractional coefficients, ties broken by the
//     largest depth score (sum of d - t mod d) * (sum of d - s mod d).
//   - CuttingAll: every fractional row of the best count, plus every row
//     seen with some fractional coefficient, cut in reverse order.
//
// A cut is parametric when a parameter coefficient is fractional; it then
// needs the artificial parameter q = floor(expr/d), which is reused when an
// in-scope artificial parameter is structurally equal.
package pip

import (
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/matrix"
)

// cut generates the cuts required by the current fractional vertex.
// Reports false when the cut limit is exhausted.
func (n *SolutionNode) cut(sv *solver, sc *nodeScope) bool {
	d := n.tab.den
	numVars := n.tab.s.Cols()
	best, bestCount := -1, 0
	bestScore := new(big.Int)
	var all []int

	for v := 0; v < numVars; v++ {
		if n.basis[v] {
			continue
		}
		i := n.mapping[v]
		count := 0
		score := new(big.Int)
		for _, x := range n.tab.t.Row(i) {
			if mod := modPositive(x, d); mod.Sign() != 0 {
				count++
				score.Add(score, new(big.Int).Sub(d, mod))
			}
		}
		if sv.opts.cutting == CuttingFirst {
			if count != 0 && (best < 0 || count < bestCount) {
				best, bestCount = i, count
			}
			continue
		}
		score2 := new(big.Int)
		for _, x := range n.tab.s.Row(i) {
			score2.Add(score2, new(big.Int).Sub(d, modPositive(x, d)))
		}
		score.Mul(score, score2)
		if count != 0 && (best < 0 || count < bestCount || (count == bestCount && score.Cmp(bestScore) > 0)) {
			if count < bestCount {
				all = all[:0]
			}
			best, bestCount = i, count
			bestScore.Set(score)
		}
		if count > 0 {
			all = append(all, i)
		}
	}

	if sv.opts.cutting != CuttingAll {
		return n.generateCut(sv, sc, best)
	}
	for k := len(all) - 1; k >= 0; k-- {
		if !n.generateCut(sv, sc, all[k]) {
			return false
		}
	}

	return true
}

// generateCut appends the Gomory cut of row index.
// Reports false when the cut limit is exhausted.
func (n *SolutionNode) generateCut(sv *solver, sc *nodeScope, index int) bool {
	if sv.opts.cutLimit > 0 && sv.cuts >= sv.opts.cutLimit {
		sv.log.WithField("cuts", sv.cuts).Debug("cut limit reached")
		return false
	}
	sv.cuts++

	tb := n.tab
	den := tb.den
	numRows, numVars, numParams := tb.s.Rows(), tb.s.Cols(), tb.t.Cols()

	parametric := false
	for _, x := range tb.t.Row(index)[1:] {
		if !divisible(x, den) {
			parametric = true
			break
		}
	}

	apColumn := -1
	if parametric {
		rowT := tb.t.Row(index)
		expr := linear.NewExpression(0)
		if mod := modPositive(rowT[0], den); mod.Sign() != 0 {
			expr.AddConstantBig(new(big.Int).Sub(den, mod))
		}
		for j := 1; j < numParams; j++ {
			if mod := modPositive(rowT[j], den); mod.Sign() != 0 {
				expr.AddTermBig(linear.Variable(sc.params[j-1]), new(big.Int).Sub(den, mod))
			}
		}
		ap, _ := NewArtificialParameter(expr, den)

		nOrig := len(sc.params) - len(sc.artificials)
		for k := len(sc.artificials) - 1; k >= 0; k-- {
			if sc.artificials[k].Equal(ap) {
				apColumn = 1 + nOrig + k
				sv.log.WithFields(logrus.Fields{
					"parameter":   linear.Variable(sc.extDim + k).String(),
					"denominator": den.String(),
				}).Debugf("reusing parameter %s", ap)
				break
			}
		}
		if apColumn < 0 {
			sv.log.WithFields(logrus.Fields{
				"parameter":   linear.Variable(sc.nextArtificialDim()).String(),
				"denominator": den.String(),
			}).Debugf("creating parameter %s", ap)
			tb.t.AddZeroColumns(1)
			n.artificials = append(n.artificials, ap.clone())
			apColumn = sc.addArtificial(ap)
			debugAssert(apColumn == numParams, "generateCut: context and tableau columns diverged")
		}
	}

	cutS := matrix.NewRow(numVars)
	cutT := matrix.NewRow(tb.t.Cols())
	rowS, rowT := tb.s.Row(index), tb.t.Row(index)
	for j := range cutS {
		cutS[j] = modPositive(rowS[j], den)
	}
	for j := 0; j < numParams; j++ {
		if mod := modPositive(rowT[j], den); mod.Sign() != 0 {
			cutT[j].Sub(mod, den)
		}
	}
	if apColumn >= 0 {
		cutT[apColumn].Set(den)
	}
	sv.log.WithFields(logrus.Fields{"row": index, "denominator": den.String()}).Debug("adding cut")

	debugAssert(tb.addRow(cutS, cutT) == nil, "SolutionNode.generateCut: row width mismatch")
	n.varRow = append(n.varRow, numRows+numVars)
	n.basis = append(n.basis, false)
	n.mapping = append(n.mapping, numRows)
	n.sign = append(n.sign, RowNegative)

	return true
}
