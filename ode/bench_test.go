// SPDX-License-Identifier: MIT
package ode_test

import (
	"testing"

	"github.com/katalvlaran/numlab/ode"
)

// BenchmarkIntegrate measures each method on a 1024-step grid.
func BenchmarkIntegrate(b *testing.B) {
	xs, err := ode.Grid(0, 1, 1024)
	if err != nil {
		b.Fatal(err)
	}
	for _, m := range ode.Methods() {
		b.Run(m.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := ode.Integrate(m, linear, xs, 1, 1e-10); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
