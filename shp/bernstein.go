// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements the isogeometric basis: Bernstein polynomials,
// Bezier extraction, rational (NURBS) derivatives and quadrature rules
package shp

import (
	"github.com/cpmech/gosl/la"
)

// Bernstein holds values and derivatives of the Bernstein polynomials of
// degree P over the reference interval [-1,1]. After Calc, Der[k][i] is
// the k-th derivative (w.r.t r) of the i-th polynomial; Der[0] holds the
// values themselves.
type Bernstein struct {
	P    int         // degree
	Kmax int         // maximum derivative order
	Der  [][]float64 // [Kmax+1][P+1] derivatives at the last Calc point

	// scratchpad: all-degrees triangle; tri[k][q][i] is the k-th
	// derivative of the i-th polynomial of degree q
	tri [][][]float64
}

// NewBernstein returns a new Bernstein structure able to compute
// derivatives up to order kmax
func NewBernstein(p, kmax int) (o *Bernstein) {
	o = new(Bernstein)
	o.P, o.Kmax = p, kmax
	o.tri = make([][][]float64, kmax+1)
	o.Der = make([][]float64, kmax+1)
	for k := 0; k <= kmax; k++ {
		o.tri[k] = la.MatAlloc(p+1, p+1)
		o.Der[k] = o.tri[k][p]
	}
	return
}

// Calc computes values and derivatives at natural coordinate r ∈ [-1,1]
func (o *Bernstein) Calc(r float64) {

	// clear triangle
	for k := 0; k <= o.Kmax; k++ {
		la.MatFill(o.tri[k], 0)
	}

	// values: degree-raising recursion with ξ=(1+r)/2
	ξ, η := (1.0+r)/2.0, (1.0-r)/2.0
	o.tri[0][0][0] = 1
	for q := 1; q <= o.P; q++ {
		for i := 0; i <= q; i++ {
			if i > 0 {
				o.tri[0][q][i] += ξ * o.tri[0][q-1][i-1]
			}
			if i < q {
				o.tri[0][q][i] += η * o.tri[0][q-1][i]
			}
		}
	}

	// derivatives: dᵏB_{i,q}/drᵏ = (q/2)(dᵏ⁻¹B_{i-1,q-1} - dᵏ⁻¹B_{i,q-1})
	for k := 1; k <= o.Kmax; k++ {
		for q := 1; q <= o.P; q++ {
			c := float64(q) / 2.0
			for i := 0; i <= q; i++ {
				var d float64
				if i > 0 {
					d += o.tri[k-1][q-1][i-1]
				}
				if i < q {
					d -= o.tri[k-1][q-1][i]
				}
				o.tri[k][q][i] = c * d
			}
		}
	}
}
