// SPDX-License-Identifier: MIT

package interp

import (
	"strconv"
	"strings"
)

// Kind selects an interpolation formula.
type Kind int

const (
	Lagrange Kind = iota + 1
	NewtonDivided
	NewtonFinite
	Gauss
	Stirling
	Bessel
)

// Kinds lists every Kind in menu order.
func Kinds() []Kind { return []Kind{Lagrange, NewtonDivided, NewtonFinite, Gauss, Stirling, Bessel} }

// String returns a human-readable name.
func (k Kind) String() string {
	switch k {
	case Lagrange:
		return "lagrange"
	case NewtonDivided:
		return "newton divided"
	case NewtonFinite:
		return "newton finite"
	case Gauss:
		return "gauss"
	case Stirling:
		return "stirling"
	case Bessel:
		return "bessel"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// FiniteDifference reports whether the kind works on a uniform grid.
func (k Kind) FiniteDifference() bool { return k >= NewtonFinite && k <= Bessel }

// ParseKind accepts a kind name (case-insensitive, '-' or ' ' separated) or
// its menu number.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if k := Kind(n); k >= Lagrange && k <= Bessel {
			return k, nil
		}
		return 0, interpErrorf("ParseKind("+s+")", ErrUnknownKind)
	}
	norm := strings.ReplaceAll(s, "-", " ")
	for _, k := range Kinds() {
		if k.String() == norm {
			return k, nil
		}
	}

	return 0, interpErrorf("ParseKind("+s+")", ErrUnknownKind)
}

// Polynomial is a built interpolant: the node table plus the precomputed
// coefficients its kind needs.
type Polynomial struct {
	kind  Kind
	nodes Nodes
	coef  []float64   // divided differences (NewtonDivided)
	diffs [][]float64 // finite difference table (finite-difference kinds)
	h     float64     // uniform step
	c     int         // central node index
}

// Build validates nodes for kind and precomputes its coefficients.
// MAIN DESCRIPTION:
//   - Nodes are copied; later changes to the caller's slices do not leak in.
//   - Gauss, Stirling, Bessel center on c = ⌊(n−1)/2⌋.
//
// Errors:
//   - every Nodes.Validate error; ErrUnknownKind; ErrNonUniform for
//     finite-difference kinds (unless WithoutSpacingCheck); ErrNodeParity
//     (Stirling needs an odd count, Bessel an even one).
func Build(kind Kind, nodes Nodes, opts ...Option) (*Polynomial, error) {
	o := gatherOptions(opts...)
	tag := "Build(" + kind.String() + ")"
	if kind < Lagrange || kind > Bessel {
		return nil, interpErrorf(tag, ErrUnknownKind)
	}
	if err := nodes.Validate(); err != nil {
		return nil, interpErrorf(tag, err)
	}

	p := &Polynomial{kind: kind, nodes: nodes.Clone()}
	n := nodes.Len()
	switch kind {
	case Lagrange:
		return p, nil
	case NewtonDivided:
		p.coef = DividedDifferences(p.nodes.X, p.nodes.Y)
		return p, nil
	case Stirling:
		if n%2 == 0 {
			return nil, interpErrorf(tag, ErrNodeParity)
		}
	case Bessel:
		if n%2 == 1 {
			return nil, interpErrorf(tag, ErrNodeParity)
		}
	}

	h, uniform := p.nodes.Step(o.spacingTol)
	if o.checkSpacing && !uniform {
		return nil, interpErrorf(tag, ErrNonUniform)
	}
	p.h = h
	p.c = (n - 1) / 2
	p.diffs = FiniteDifferences(p.nodes.Y)

	return p, nil
}

// Kind returns the formula the polynomial evaluates.
func (p *Polynomial) Kind() Kind { return p.kind }

// Nodes returns a copy of the node table.
func (p *Polynomial) Nodes() Nodes { return p.nodes.Clone() }

// Differences returns the finite difference table, nil for Lagrange and
// NewtonDivided.
func (p *Polynomial) Differences() [][]float64 { return p.diffs }

// Eval evaluates the interpolant at x.
func (p *Polynomial) Eval(x float64) float64 {
	switch p.kind {
	case Lagrange:
		return p.lagrange(x)
	case NewtonDivided:
		return p.newtonDivided(x)
	case NewtonFinite:
		return p.newtonFinite(x)
	case Gauss:
		if x > p.nodes.X[p.c] {
			return p.gaussForward(x)
		}
		return p.gaussBackward(x)
	case Stirling:
		return (p.gaussForward(x) + p.gaussBackward(x)) / 2
	default:
		return p.bessel(x)
	}
}

func (p *Polynomial) lagrange(x float64) float64 {
	xs, ys := p.nodes.X, p.nodes.Y
	var sum float64
	for i := range xs {
		term := ys[i]
		for j := range xs {
			if j != i {
				term *= (x - xs[j]) / (xs[i] - xs[j])
			}
		}
		sum += term
	}

	return sum
}

// newtonDivided evaluates by Horner's scheme over the divided differences.
func (p *Polynomial) newtonDivided(x float64) float64 {
	xs := p.nodes.X
	n := len(p.coef)
	acc := p.coef[n-1]
	for k := n - 2; k >= 0; k-- {
		acc = acc*(x-xs[k]) + p.coef[k]
	}

	return acc
}

func (p *Polynomial) newtonFinite(x float64) float64 {
	t := (x - p.nodes.X[0]) / p.h
	sum := p.diffs[0][0]
	term := 1.0
	for k := 1; k < len(p.diffs); k++ {
		term *= (t - float64(k-1)) / float64(k)
		sum += term * p.diffs[k][0]
	}

	return sum
}

// forwardShift is the j-th offset of the Gauss forward product:
// t, t−1, t+1, t−2, t+2, …
func forwardShift(j int) float64 {
	if j%2 == 1 {
		return float64((j + 1) / 2)
	}

	return -float64(j / 2)
}

// diff returns Δ^k y_i and whether it exists in the table.
func (p *Polynomial) diff(k, i int) (float64, bool) {
	if k >= len(p.diffs) || i < 0 || i >= len(p.diffs[k]) {
		return 0, false
	}

	return p.diffs[k][i], true
}

// gaussForward: Σ_k Δ^k y_{c−⌊k/2⌋}·Π_{j<k}(t − s_j)/k!, truncated at the
// first difference outside the table.
func (p *Polynomial) gaussForward(x float64) float64 {
	t := (x - p.nodes.X[p.c]) / p.h
	sum := p.nodes.Y[p.c]
	term := 1.0
	for k := 1; k < len(p.diffs); k++ {
		d, ok := p.diff(k, p.c-k/2)
		if !ok {
			break
		}
		term *= (t - forwardShift(k-1)) / float64(k)
		sum += term * d
	}

	return sum
}

// gaussBackward: Σ_k Δ^k y_{c−⌈k/2⌉}·Π_{j<k}(t + s_j)/k!.
func (p *Polynomial) gaussBackward(x float64) float64 {
	t := (x - p.nodes.X[p.c]) / p.h
	sum := p.nodes.Y[p.c]
	term := 1.0
	for k := 1; k < len(p.diffs); k++ {
		d, ok := p.diff(k, p.c-(k+1)/2)
		if !ok {
			break
		}
		term *= (t + forwardShift(k-1)) / float64(k)
		sum += term * d
	}

	return sum
}

// bessel evaluates around the pair (x_c, x_{c+1}) with t = (x − x_c)/h:
//
//	(y_c + y_{c+1})/2
//	+ Σ_{s≥1} Π_{j=−(s−1)}^{s}(t−j)/(2s)! · (Δ^{2s}y_{c−s} + Δ^{2s}y_{c−s+1})/2
//	+ Σ_{s≥0} (t−½)·Π_{j=−(s−1)}^{s}(t−j)/(2s+1)! · Δ^{2s+1}y_{c−s}
func (p *Polynomial) bessel(x float64) float64 {
	t := (x - p.nodes.X[p.c]) / p.h
	sum := (p.nodes.Y[p.c] + p.nodes.Y[p.c+1]) / 2
	prod := 1.0 // Π_{j=−(s−1)}^{s}(t−j)/(2s)!
	for s := 0; ; s++ {
		if s > 0 {
			prod *= (t + float64(s-1)) * (t - float64(s)) / float64((2*s-1)*(2*s))
			a, okA := p.diff(2*s, p.c-s)
			b, okB := p.diff(2*s, p.c-s+1)
			if !okA || !okB {
				break
			}
			sum += prod * (a + b) / 2
		}
		d, ok := p.diff(2*s+1, p.c-s)
		if !ok {
			break
		}
		sum += (t - 0.5) * prod / float64(2*s+1) * d
	}

	return sum
}
