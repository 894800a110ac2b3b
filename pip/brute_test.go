// SPDX-License-Identifier: MIT

package pip_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/pip"
)

// bruteLexMin enumerates integer points with 0 <= var <= bound in
// lexicographic order and returns the first one satisfying cs.
func bruteLexMin(cs linear.System, vars []int, params map[int]int64, bound int64) ([]int64, bool) {
	cur := make([]int64, len(vars))
	value := func(v linear.Variable) *big.Int {
		if x, ok := params[int(v)]; ok {
			return big.NewInt(x)
		}
		for i, d := range vars {
			if d == int(v) {
				return big.NewInt(cur[i])
			}
		}
		return new(big.Int)
	}
	var rec func(k int) bool
	rec = func(k int) bool {
		if k == len(vars) {
			for _, c := range cs {
				if !c.IsSatisfiedBy(value) {
					return false
				}
			}
			return true
		}
		for x := int64(0); x <= bound; x++ {
			cur[k] = x
			if rec(k + 1) {
				return true
			}
		}
		return false
	}
	if !rec(0) {
		return nil, false
	}

	return cur, true
}

// paramPoints lists every assignment of params to values in [0, box].
func paramPoints(params []int, box int64) []map[int]int64 {
	points := []map[int]int64{{}}
	for _, d := range params {
		var next []map[int]int64
		for _, pt := range points {
			for x := int64(0); x <= box; x++ {
				q := make(map[int]int64, len(pt)+1)
				for k, v := range pt {
					q[k] = v
				}
				q[d] = x
				next = append(next, q)
			}
		}
		points = next
	}

	return points
}

// checkAgainstBrute compares p, already solved, with enumeration at every
// parameter point of the box. A solver value beyond bound is only checked
// for feasibility, since the enumeration cannot reach it.
func checkAgainstBrute(t *testing.T, p *pip.Problem, cs linear.System, params []int, box, bound int64) {
	t.Helper()
	var vars []int
	for d := 0; d < p.SpaceDimension(); d++ {
		if !p.ParameterSpaceDimensions().Contains(linear.Variable(d)) {
			vars = append(vars, d)
		}
	}
	for _, pt := range paramPoints(params, box) {
		point := make(map[linear.Variable]*big.Int, len(pt))
		for d, x := range pt {
			point[linear.Variable(d)] = big.NewInt(x)
		}
		got, ok, err := p.Evaluate(point)
		require.NoError(t, err)
		want, wantOK := bruteLexMin(cs, vars, pt, bound)
		if !ok {
			require.False(t, wantOK, "%s at %v: solver infeasible, enumeration found %v", cs, pt, want)
			continue
		}

		value := func(v linear.Variable) *big.Int {
			if x, found := point[v]; found {
				return x
			}
			return got[v]
		}
		inBox := true
		for _, d := range vars {
			x := got[linear.Variable(d)].Int64()
			inBox = inBox && x <= bound
		}
		for _, c := range cs {
			require.True(t, c.IsSatisfiedBy(value), "%s at %v: %v violates %s", cs, pt, got, c)
		}
		if !inBox {
			continue
		}
		require.True(t, wantOK, "%s at %v: enumeration found nothing, solver %v", cs, pt, got)
		for i, d := range vars {
			require.Equal(t, want[i], got[linear.Variable(d)].Int64(), "%s at %v var=%s", cs, pt, linear.Variable(d))
		}
	}
}

// TestBruteForce checks soundness and lexicographic minimality of the
// parametric solution on a box of parameter values.
func TestBruteForce(t *testing.T) {
	eq := func(c int64, coeffs ...int64) linear.Constraint {
		return linear.NewConstraint(expr(c, coeffs...), linear.Equality)
	}
	cases := []struct {
		name   string
		dim    int
		params []int
		cs     linear.System
	}{
		{"trivial", 2, []int{1}, linear.System{ge(0, 1, -1)}},
		{"halving", 2, []int{1}, linear.System{ge(0, 2, -1)}},
		{"split", 2, []int{1}, linear.System{ge(5, 1, -1)}},
		{"sum", 3, []int{2}, linear.System{ge(0, 1, 1, -1)}},
		{"bounded", 2, []int{1}, linear.System{ge(0, 1, -1), ge(4, -1)}},
		{"equality", 2, []int{1}, linear.System{linear.Equal(varX.Expr(), parN.Expr())}},
		{"context", 2, []int{1}, linear.System{ge(0, 1, -1), ge(-2, 0, 1)}},
		// Rows equal to -n are feasible only at n = 0.
		{"zero at origin", 2, []int{1}, linear.System{ge(0, -1, -1)}},
		{"odd equality", 3, []int{2}, linear.System{ge(-2, -1, 1, -3), eq(-5, -1, 2)}},
		{"two parameters", 4, []int{2, 3}, linear.System{eq(5, -3, 2, -3), ge(-3, 3, -3, 1, -3)}},
	}
	const box, bound = 8, 12

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newProblem(t, tc.dim, tc.params, tc.cs...)
			st, err := p.Solve()
			require.NoError(t, err)
			require.NotEqual(t, pip.GaveUp, st)
			b := int64(box)
			if len(tc.params) > 1 {
				b = 3
			}
			checkAgainstBrute(t, p, tc.cs, tc.params, b, bound)
		})
	}
}

// TestZeroAtOrigin: -x - n >= 0 is satisfied by x = 0 at n = 0 only.
func TestZeroAtOrigin(t *testing.T) {
	p := newProblem(t, 2, []int{1}, ge(0, -1, -1))
	st, err := p.Solve()
	require.NoError(t, err)
	require.Equal(t, pip.Optimized, st)

	vals, ok, err := p.Evaluate(map[linear.Variable]*big.Int{parN: big.NewInt(0)})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(0), vals[varX].Int64())

	_, ok, err = p.Evaluate(map[linear.Variable]*big.Int{parN: big.NewInt(1)})
	require.NoError(t, err)
	require.False(t, ok)
}

// TestRandomSystems compares seeded random systems over two variables and
// one or two parameters with enumeration.
func TestRandomSystems(t *testing.T) {
	rng := rand.New(rand.NewSource(20261014))
	coeff := func() int64 { return rng.Int63n(7) - 3 }
	const systems, box, bound = 300, 3, 12

	solved := 0
	for it := 0; it < systems; it++ {
		nParams := 1 + rng.Intn(2)
		dim := 2 + nParams
		params := []int{2, 3}[:nParams]
		var cs linear.System
		for k := 1 + rng.Intn(2); k > 0; k-- {
			coeffs := make([]int64, dim)
			for i := range coeffs {
				coeffs[i] = coeff()
			}
			kind := linear.NonStrictInequality
			if rng.Intn(3) == 0 {
				kind = linear.Equality
			}
			cs = append(cs, linear.NewConstraint(expr(rng.Int63n(11)-5, coeffs...), kind))
		}

		var ps linear.VariablesSet
		for _, d := range params {
			ps.Insert(linear.Variable(d))
		}
		p := pip.NewProblem(dim, ps, pip.WithCompatibilityStepLimit(1000), pip.WithCutLimit(200))
		require.NoError(t, p.AddConstraints(cs))
		st, err := p.Solve()
		require.NoError(t, err, "it %d: %s", it, cs)
		if st == pip.GaveUp {
			continue
		}
		solved++
		checkAgainstBrute(t, p, cs, params, box, bound)
	}
	require.Greater(t, solved, systems/4)
}
