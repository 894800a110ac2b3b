// SPDX-License-Identifier: MIT

package pip_test

import (
	"fmt"
	"math/big"
	"os"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/pip"
)

// ExampleProblem_PrintSolution computes the smallest integer x with
// 2x >= n for every n >= 0.
func ExampleProblem_PrintSolution() {
	x, n := linear.Variable(0), linear.Variable(1)
	p := pip.NewProblem(2, linear.NewVariablesSet(n))
	_ = p.AddConstraint(linear.GreaterOrEqual(linear.NewExpression(0).AddTerm(x, 2), n.Expr()))

	_ = p.PrintSolution(os.Stdout)

	// Output:
	// Parameter C = (B) div 2
	// {B - C}
}

// ExampleProblem_Evaluate reads the parametric minimum of x >= n - 5 at a few points.
func ExampleProblem_Evaluate() {
	x, n := linear.Variable(0), linear.Variable(1)
	p := pip.NewProblem(2, linear.NewVariablesSet(n))
	_ = p.AddConstraint(linear.GreaterOrEqual(x.Expr(), n.Expr().AddConstant(-5)))

	for _, v := range []int64{2, 5, 9} {
		vals, ok, _ := p.Evaluate(map[linear.Variable]*big.Int{n: big.NewInt(v)})
		fmt.Println(v, ok, vals[x])
	}

	// Output:
	// 2 true 0
	// 5 true 0
	// 9 true 4
}
