// SPDX-License-Identifier: MIT

package linear_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpip/linear"
)

func TestVariableString(t *testing.T) {
	cases := map[linear.Variable]string{0: "A", 1: "B", 25: "Z", 26: "A1", 53: "B2"}
	for v, want := range cases {
		assert.Equal(t, want, v.String())
	}
}

func TestExpressionBuildAndPrint(t *testing.T) {
	a, b, c := linear.Variable(0), linear.Variable(1), linear.Variable(2)
	e := linear.NewExpression(3).AddTerm(a, 2).AddTerm(b, -1)
	assert.Equal(t, "2*A - B + 3", e.String())
	assert.Equal(t, 2, e.SpaceDimension())

	e.AddTerm(c, 1).AddTerm(c, -1)
	assert.Equal(t, 2, e.SpaceDimension(), "cancelled trailing term must not widen the expression")

	assert.Equal(t, "0", linear.NewExpression(0).String())
	assert.Equal(t, "-4", linear.NewExpression(-4).String())
	assert.Equal(t, "-A - 1", linear.NewExpression(-1).AddTerm(a, -1).String())
}

func TestExpressionArithmetic(t *testing.T) {
	a, b := linear.Variable(0), linear.Variable(1)
	x := linear.NewExpression(1).AddTerm(a, 1)
	y := linear.NewExpression(2).AddTerm(b, 3)

	sum := x.Clone().Add(y)
	assert.Equal(t, "A + 3*B + 3", sum.String())

	diff := sum.Clone().Sub(y)
	assert.True(t, diff.Equal(x))

	sum.Scale(big.NewInt(-2))
	assert.Equal(t, "-2*A - 6*B - 6", sum.String())
	sum.Negate()
	assert.Equal(t, 0, sum.Coefficient(b).Cmp(big.NewInt(6)))
	assert.Equal(t, 0, sum.Inhomogeneous().Cmp(big.NewInt(6)))

	sum.Scale(big.NewInt(0))
	assert.True(t, sum.IsConstant())
}

func TestExpressionEvaluate(t *testing.T) {
	e := linear.NewExpression(-5).AddTerm(0, 2).AddTerm(2, 1)
	got := e.Evaluate(func(v linear.Variable) *big.Int { return big.NewInt(int64(v) + 1) })
	require.Equal(t, int64(2*1+3-5), got.Int64())
}

func TestNegativeVariablePanics(t *testing.T) {
	require.Panics(t, func() { linear.NewExpression(0).AddTerm(-1, 1) })
}
