// SPDX-License-Identifier: MIT
package interp_test

import (
	"testing"

	"github.com/katalvlaran/numlab/interp"
)

// BenchmarkEval measures one evaluation per kind on an 11-node table.
func BenchmarkEval(b *testing.B) {
	nodes, err := interp.Sample(interp.Functions()[0], 11, 0, 3)
	if err != nil {
		b.Fatal(err)
	}
	for _, k := range []interp.Kind{interp.Lagrange, interp.NewtonDivided, interp.Gauss, interp.Stirling} {
		p, err := interp.Build(k, nodes)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(k.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = p.Eval(1.234)
			}
		})
	}
}
