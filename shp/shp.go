// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants
const (
	// MINDET is the tolerance for the minimum allowed Jacobian determinant
	MINDET = 1.0e-14

	// MINWGT is the tolerance for the minimum allowed weighted basis sum
	MINWGT = 1.0e-14
)

// Shape holds the basis functions and geometric quantities of one Bezier
// element evaluated at an integration point. It is a scratchpad: call
// CalcAtIp and read the results immediately.
type Shape struct {

	// constants
	Gndim  int   // geometry dimension: 1, 2 or 3
	Nverts int   // number of local control points
	Deg    []int // polynomial degrees

	// rational basis evaluator
	Rat *RatDers

	// scratchpad: computed by CalcAtIp
	S    []float64   // [Nverts] basis values
	DSdU [][]float64 // [Nverts][Gndim] derivatives w.r.t parametric coords
	DxdU [][]float64 // [Gndim][Gndim] Jacobian matrix of the map x(u)
	DUdx [][]float64 // [Gndim][Gndim] inverse Jacobian matrix
	G    [][]float64 // [Nverts][Gndim] derivatives w.r.t physical coords
	Jvec []float64   // Jacobian vector for elements embedded in space
	J    float64     // Jacobian determinant, including parametric scaling
	Ju   float64     // parametric scaling Π h_i/2
}

// GetShapeBezier returns a new Shape for a Bezier element
//
//	deg   -- polynomial degrees along each parametric direction
//	ext   -- per-direction extraction operators
//	psize -- per-direction parametric sizes
//	wgt   -- control point weights, x-fastest ordering
func GetShapeBezier(deg []int, ext [][][]float64, psize, wgt []float64) (o *Shape) {
	o = new(Shape)
	o.Gndim = len(deg)
	o.Deg = deg
	o.Rat = NewRatDers(deg, ext, psize, wgt, 1)
	o.Nverts = o.Rat.Nbasis
	o.S = make([]float64, o.Nverts)
	o.DSdU = la.MatAlloc(o.Nverts, o.Gndim)
	o.DxdU = la.MatAlloc(o.Gndim, o.Gndim)
	o.DUdx = la.MatAlloc(o.Gndim, o.Gndim)
	o.G = la.MatAlloc(o.Nverts, o.Gndim)
	o.Jvec = make([]float64, 3)
	o.Ju = 1
	for i := 0; i < o.Gndim; i++ {
		o.Ju *= psize[i] / 2.0
	}
	return
}

// CalcAtIp calculates the basis functions and, if derivs is true, the
// gradients and Jacobian at one integration point
//
//	x  -- [spatial ndim][Nverts] matrix of control point coordinates
//	ip -- natural coordinates {r,s,t,w} of the integration point
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// rational basis values and first derivatives
	err = o.Rat.CalcDers(ip[:3])
	if err != nil {
		return
	}
	copy(o.S, o.Rat.GetR(0, 0, 0))
	if !derivs {
		return
	}
	for m := 0; m < o.Nverts; m++ {
		o.DSdU[m][0] = o.Rat.GetR(1, 0, 0)[m]
		if o.Gndim > 1 {
			o.DSdU[m][1] = o.Rat.GetR(0, 1, 0)[m]
		}
		if o.Gndim > 2 {
			o.DSdU[m][2] = o.Rat.GetR(0, 0, 1)[m]
		}
	}

	// curve element embedded in space: Jacobian vector
	if o.Gndim == 1 {
		ndim := len(x)
		jn := 0.0
		for i := 0; i < ndim; i++ {
			o.Jvec[i] = 0
			for m := 0; m < o.Nverts; m++ {
				o.Jvec[i] += x[i][m] * o.DSdU[m][0]
			}
			jn += o.Jvec[i] * o.Jvec[i]
		}
		jn = math.Sqrt(jn)
		if jn < MINDET {
			return chk.Err("geometry is degenerate: Jacobian norm = %g is too small", jn)
		}
		for m := 0; m < o.Nverts; m++ {
			o.G[m][0] = o.DSdU[m][0] / jn
		}
		o.J = jn * o.Ju
		return
	}

	// Jacobian matrix: DxdU[i][j] = Σ_m x[i][m] * DSdU[m][j]
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdU[i][j] = 0
			for m := 0; m < o.Nverts; m++ {
				o.DxdU[i][j] += x[i][m] * o.DSdU[m][j]
			}
		}
	}

	// determinant and inverse
	o.J, err = la.MatInv(o.DUdx, o.DxdU, MINDET)
	if err != nil {
		return
	}
	if o.J < MINDET {
		return chk.Err("geometry is degenerate: Jacobian determinant = %g is not positive", o.J)
	}
	o.J *= o.Ju

	// G: derivatives of basis functions w.r.t physical coordinates
	la.MatMul(o.G, 1, o.DSdU, o.DUdx)
	return
}

// IpRealCoords returns the real (spatial) coordinates of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Rat.CalcDers(ip[:3])
	S := o.Rat.GetR(0, 0, 0)
	for m := 0; m < o.Nverts; m++ {
		for i := 0; i < ndim; i++ {
			y[i] += S[m] * x[i][m]
		}
	}
	return
}

// AxisymGetRadius returns the distance to the axis of symmetry. The basis
// values in S must be up-to-date; i.e. CalcAtIp must be called first
func (o *Shape) AxisymGetRadius(x [][]float64) (radius float64) {
	for m := 0; m < o.Nverts; m++ {
		radius += o.S[m] * x[0][m]
	}
	return
}
