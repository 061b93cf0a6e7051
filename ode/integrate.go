// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"
	"math"
)

// Grid returns n+1 uniformly spaced points from x0 to xEnd inclusive.
// The last point is exactly xEnd.
func Grid(x0, xEnd float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, odeErrorf("Grid", ErrBadSteps)
	}
	if !finite(x0, xEnd) || !(x0 < xEnd) {
		return nil, odeErrorf("Grid", ErrBadInterval)
	}
	h := (xEnd - x0) / float64(n)
	xs := make([]float64, n+1)
	for i := range xs {
		xs[i] = x0 + float64(i)*h
	}
	xs[n] = xEnd

	return xs, nil
}

// Integrate runs one fixed-step method over the grid xs from y(xs[0]) = y0.
// The step is h = xs[1] − xs[0]; eps drives Milne's corrector only.
//
// Errors:
//   - ErrNilFunc, ErrShortGrid, ErrUnknownMethod, ErrNonFinite,
//     ErrCorrectorDiverged.
func Integrate(m Method, f Func, xs []float64, y0, eps float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	tag := "Integrate(" + m.String() + ")"
	if f == nil {
		return nil, odeErrorf(tag, ErrNilFunc)
	}
	if len(xs) < 2 {
		return nil, odeErrorf(tag, ErrShortGrid)
	}

	var (
		ys  []float64
		err error
	)
	switch m {
	case Euler:
		ys, err = euler(f, xs, y0)
	case ImprovedEuler:
		ys, err = improvedEuler(f, xs, y0)
	case Milne:
		ys, err = milne(f, xs, y0, eps, o.maxCorrector)
	default:
		err = ErrUnknownMethod
	}
	if err != nil {
		return nil, odeErrorf(tag, err)
	}

	return ys, nil
}

func euler(f Func, xs []float64, y0 float64) ([]float64, error) {
	h := xs[1] - xs[0]
	ys := make([]float64, len(xs))
	ys[0] = y0
	for i := 0; i+1 < len(xs); i++ {
		ys[i+1] = ys[i] + h*f(xs[i], ys[i])
		if !finite(ys[i+1]) {
			return nil, nonFiniteAt(xs[i+1])
		}
	}

	return ys, nil
}

func improvedEuler(f Func, xs []float64, y0 float64) ([]float64, error) {
	h := xs[1] - xs[0]
	ys := make([]float64, len(xs))
	ys[0] = y0
	for i := 0; i+1 < len(xs); i++ {
		k1 := f(xs[i], ys[i])
		k2 := f(xs[i]+h, ys[i]+h*k1)
		ys[i+1] = ys[i] + h/2*(k1+k2)
		if !finite(ys[i+1]) {
			return nil, nonFiniteAt(xs[i+1])
		}
	}

	return ys, nil
}

// rk4Step advances one classical Runge–Kutta step.
func rk4Step(f Func, x, y, h float64) float64 {
	k1 := h * f(x, y)
	k2 := h * f(x+h/2, y+k1/2)
	k3 := h * f(x+h/2, y+k2/2)
	k4 := h * f(x+h, y+k3)

	return y + (k1+2*k2+2*k3+k4)/6
}

// milne bootstraps min(3, len−1) points by RK4, then for i ≥ 4:
//
//	predictor  y_i = y_{i−4} + 4h/3·(2f_{i−3} − f_{i−2} + 2f_{i−1})
//	corrector  y_i = y_{i−2} + h/3·(f_{i−2} + 4f_{i−1} + f(x_i, y_i))
//
// with the corrector repeated until two passes differ by less than eps.
func milne(f Func, xs []float64, y0, eps float64, maxPasses int) ([]float64, error) {
	h := xs[1] - xs[0]
	n := len(xs)
	ys := make([]float64, n)
	fs := make([]float64, n)
	ys[0] = y0
	fs[0] = f(xs[0], y0)

	boot := n - 1
	if boot > 3 {
		boot = 3
	}
	for i := 1; i <= boot; i++ {
		ys[i] = rk4Step(f, xs[i-1], ys[i-1], h)
		fs[i] = f(xs[i], ys[i])
		if !finite(ys[i], fs[i]) {
			return nil, nonFiniteAt(xs[i])
		}
	}

	for i := 4; i < n; i++ {
		y := ys[i-4] + 4*h/3*(2*fs[i-3]-fs[i-2]+2*fs[i-1])
		base := ys[i-2] + h/3*(fs[i-2]+4*fs[i-1])
		converged := false
		for pass := 0; pass < maxPasses; pass++ {
			next := base + h/3*f(xs[i], y)
			if !finite(next) {
				return nil, nonFiniteAt(xs[i])
			}
			d := math.Abs(next - y)
			y = next
			if d < eps {
				converged = true
				break
			}
		}
		if !converged {
			return nil, fmt.Errorf("at x = %g: %w", xs[i], ErrCorrectorDiverged)
		}
		ys[i] = y
		fs[i] = f(xs[i], y)
		if !finite(fs[i]) {
			return nil, nonFiniteAt(xs[i])
		}
	}

	return ys, nil
}

func nonFiniteAt(x float64) error {
	return fmt.Errorf("at x = %g: %w", x, ErrNonFinite)
}
