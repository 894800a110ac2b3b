// SPDX-License-Identifier: MIT

package pip_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/pip"
)

// benchDivisors are the k of k*x >= n; larger k means deeper cuts.
var benchDivisors = []int64{2, 3, 7}

var sinkS pip.Status

func BenchmarkSolveDivision(b *testing.B) {
	b.ReportAllocs()
	for _, k := range benchDivisors {
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p := pip.NewProblem(2, linear.NewVariablesSet(parN))
				if err := p.AddConstraint(ge(0, k, -1)); err != nil {
					b.Fatal(err)
				}
				st, err := p.Solve()
				if err != nil {
					b.Fatal(err)
				}
				sinkS = st
			}
		})
	}
}
