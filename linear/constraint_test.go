// SPDX-License-Identifier: MIT

package linear_test

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/matrix"
)

func TestConstraintConstructors(t *testing.T) {
	x, n := linear.Variable(0), linear.Variable(1)

	c := linear.GreaterOrEqual(linear.NewExpression(0).AddTerm(x, 2), n.Expr())
	assert.Equal(t, "2*A - B >= 0", c.String())
	assert.Equal(t, linear.NonStrictInequality, c.Kind())

	le := linear.LessOrEqual(x.Expr(), linear.NewExpression(4))
	assert.Equal(t, "-A >= -4", le.String())

	eq := linear.Equal(x.Expr(), n.Expr().AddConstant(1))
	assert.True(t, eq.IsEquality())
	assert.Equal(t, "A - B = 1", eq.String())

	gt := linear.Greater(x.Expr(), linear.NewExpression(0))
	assert.True(t, gt.IsStrictInequality())

	assert.Equal(t, "0 >= 1", linear.NewConstraint(linear.NewExpression(-1), linear.NonStrictInequality).String())
	require.Panics(t, func() { linear.NewConstraint(linear.NewExpression(0), linear.Kind(9)) })
}

func TestConstraintSatisfaction(t *testing.T) {
	x := linear.Variable(0)
	at := func(v int64) func(linear.Variable) *big.Int {
		return func(linear.Variable) *big.Int { return big.NewInt(v) }
	}
	ge := linear.GreaterOrEqual(x.Expr(), linear.NewExpression(2))
	gt := linear.Greater(x.Expr(), linear.NewExpression(2))
	eq := linear.Equal(x.Expr(), linear.NewExpression(2))

	assert.True(t, ge.IsSatisfiedBy(at(2)))
	assert.False(t, gt.IsSatisfiedBy(at(2)))
	assert.True(t, eq.IsSatisfiedBy(at(2)))
	assert.False(t, eq.IsSatisfiedBy(at(3)))
	assert.True(t, gt.IsSatisfiedBy(at(3)))
}

func TestSystemHelpers(t *testing.T) {
	var s linear.System
	s.Insert(linear.GreaterOrEqual(linear.Variable(3).Expr(), linear.NewExpression(0)))
	s.Insert(linear.Greater(linear.Variable(0).Expr(), linear.NewExpression(1)))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 4, s.SpaceDimension())
	assert.True(t, s.HasStrictInequalities())

	cp := s.Clone()
	require.True(t, cp.Equal(s))
	cp[0] = linear.Equal(linear.NewExpression(0), linear.NewExpression(0))
	assert.False(t, cp.Equal(s))
}

func TestVariablesSet(t *testing.T) {
	s := linear.NewVariablesSet(4, 1, 4, 2)
	assert.Equal(t, []int{1, 2, 4}, s.Dims())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(3))
	assert.Equal(t, 2, s.Rank(3))
	assert.Equal(t, 0, s.Rank(1))
	assert.Equal(t, 4, s.Max())
	assert.Equal(t, "{B, C, E}", s.String())

	var empty linear.VariablesSet
	assert.Equal(t, -1, empty.Max())
	cp := s.Clone()
	cp.Insert(0)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 4, cp.Len())
}

func TestSystemDumpRoundTrip(t *testing.T) {
	x, n := linear.Variable(0), linear.Variable(1)
	s := linear.System{
		linear.GreaterOrEqual(linear.NewExpression(0).AddTerm(x, 2), n.Expr()),
		linear.Equal(n.Expr(), linear.NewExpression(-7)),
		linear.NewConstraint(linear.NewExpression(3), linear.NonStrictInequality),
	}
	var buf bytes.Buffer
	d := matrix.NewDumpWriter(&buf)
	s.Dump(d)
	require.NoError(t, d.Err())
	assert.Equal(t, "3 constraints\n>= size 3 0 2 -1\n= size 3 7 0 1\n>= size 1 3\n", buf.String())

	got, err := linear.LoadSystem(matrix.NewTokenizer(strings.NewReader(buf.String())))
	require.NoError(t, err)
	assert.True(t, got.Equal(s))
}

func TestLoadSystemMalformed(t *testing.T) {
	for _, in := range []string{"1 constraints\n<> size 1 0\n", "1 constraints\n>= size 0\n", "-2 constraints"} {
		_, err := linear.LoadSystem(matrix.NewTokenizer(strings.NewReader(in)))
		require.ErrorIs(t, err, linear.ErrBadFormat, in)
	}
	_, err := linear.LoadSystem(matrix.NewTokenizer(strings.NewReader("1 constraints\n>= size 2 1")))
	require.True(t, errors.Is(err, matrix.ErrBadDump))
}
