// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/stat/combin"
)

// RatDers evaluates the rational (weighted) basis of one Bezier element
// and its partial derivatives up to a maximum total order. The polynomial
// part is the tensor product of extracted Bernstein bases; the rational
// derivatives follow from the quotient-rule recursion
//
//	R_k = [ A_k - Σ_{j≤k, j≠k} binom(k,j)·W_{k-j}·R_j ] / W_0
//
// where A_k[a] = w[a]·Π_i m_i^{(ki)}[ai] is the weighted polynomial
// derivative, W_k = Σ_a A_k[a], and j≤k holds componentwise. Derivatives
// are taken with respect to the parametric (knot) coordinates; i.e. the
// Bernstein derivatives are scaled by (2/h_i)^ki with h_i the parametric
// size of the element along direction i.
type RatDers struct {

	// input
	Gdim   int         // geometry dimension: 1, 2 or 3
	Deg    []int       // [Gdim] polynomial degrees
	Ext    [][][]float64 // [Gdim] per-direction extraction operators
	Psize  []float64   // [Gdim] parametric sizes
	Wgt    []float64   // [Nbasis] control point weights
	Kmax   int         // maximum total derivative order
	Nbasis int         // number of local basis functions

	// results
	R [][]float64 // [ncube][Nbasis] rational derivatives; see Idx

	// scratchpad
	nb    []int         // [3] basis count per direction (1 beyond Gdim)
	bern  []*Bernstein  // [Gdim] univariate evaluators
	m     [][][]float64 // [Gdim][Kmax+1][nb_i] extracted scaled derivs
	aa    [][]float64   // [ncube][Nbasis] weighted polynomial derivs
	ww    []float64     // [ncube] weighted sums
	scal  [][]float64   // [Gdim][Kmax+1] (2/h_i)^k factors
	binom [][]float64   // [Kmax+1][Kmax+1] binomial coefficients
	kk    [][]int       // valid multi-indices by increasing total order
	dec   [][]int       // [Nbasis][3] local tensor decomposition of a
}

// NewRatDers returns a new rational derivatives evaluator
//
//	deg   -- polynomial degrees along each parametric direction
//	ext   -- extraction operators, one [deg_i+1][deg_i+1] matrix per
//	         direction, mapping Bernstein values to spline values
//	psize -- parametric (knot-span) sizes along each direction
//	wgt   -- control point weights, x-fastest ordering
//	kmax  -- maximum total derivative order
func NewRatDers(deg []int, ext [][][]float64, psize, wgt []float64, kmax int) (o *RatDers) {

	// essential
	o = new(RatDers)
	o.Gdim = len(deg)
	o.Deg, o.Ext, o.Psize, o.Wgt, o.Kmax = deg, ext, psize, wgt, kmax
	o.nb = []int{1, 1, 1}
	o.Nbasis = 1
	for i := 0; i < o.Gdim; i++ {
		o.nb[i] = deg[i] + 1
		o.Nbasis *= o.nb[i]
	}

	// univariate evaluators and parametric scaling
	o.bern = make([]*Bernstein, o.Gdim)
	o.m = make([][][]float64, o.Gdim)
	o.scal = la.MatAlloc(o.Gdim, kmax+1)
	for i := 0; i < o.Gdim; i++ {
		o.bern[i] = NewBernstein(deg[i], kmax)
		o.m[i] = la.MatAlloc(kmax+1, o.nb[i])
		o.scal[i][0] = 1
		for k := 1; k <= kmax; k++ {
			o.scal[i][k] = o.scal[i][k-1] * 2.0 / psize[i]
		}
	}

	// binomial coefficients
	o.binom = la.MatAlloc(kmax+1, kmax+1)
	for n := 0; n <= kmax; n++ {
		for k := 0; k <= n; k++ {
			o.binom[n][k] = float64(combin.Binomial(n, k))
		}
	}

	// multi-indices ordered by increasing total order
	kdir := []int{0, 0, 0}
	for i := 0; i < o.Gdim; i++ {
		kdir[i] = kmax
	}
	for t := 0; t <= kmax; t++ {
		for k3 := 0; k3 <= kdir[2]; k3++ {
			for k2 := 0; k2 <= kdir[1]; k2++ {
				for k1 := 0; k1 <= kdir[0]; k1++ {
					if k1+k2+k3 == t {
						o.kk = append(o.kk, []int{k1, k2, k3})
					}
				}
			}
		}
	}

	// tensor decomposition of local basis indices
	o.dec = utl.IntsAlloc(o.Nbasis, 3)
	for a := 0; a < o.Nbasis; a++ {
		o.dec[a][0] = a % o.nb[0]
		o.dec[a][1] = (a / o.nb[0]) % o.nb[1]
		o.dec[a][2] = a / (o.nb[0] * o.nb[1])
	}

	// results and scratchpad over the dense multi-index cube
	ncube := (kmax + 1) * (kmax + 1) * (kmax + 1)
	o.R = la.MatAlloc(ncube, o.Nbasis)
	o.aa = la.MatAlloc(ncube, o.Nbasis)
	o.ww = make([]float64, ncube)
	return
}

// Idx returns the storage index in R of the derivative multi-index
// (k1,k2,k3); Idx(0,0,0) holds the basis values themselves
func (o *RatDers) Idx(k1, k2, k3 int) int {
	return k1 + (o.Kmax+1)*(k2+(o.Kmax+1)*k3)
}

// CalcDers computes rational basis values and derivatives at the natural
// coordinates r ∈ [-1,1]^Gdim. Results are stored in R.
func (o *RatDers) CalcDers(r []float64) (err error) {

	// univariate Bernstein derivatives, extracted and scaled to the
	// parametric coordinates
	for i := 0; i < o.Gdim; i++ {
		o.bern[i].Calc(r[i])
		for k := 0; k <= o.Kmax; k++ {
			for b := 0; b < o.nb[i]; b++ {
				o.m[i][k][b] = 0
				for c := 0; c < o.nb[i]; c++ {
					o.m[i][k][b] += o.Ext[i][b][c] * o.bern[i].Der[k][c]
				}
				o.m[i][k][b] *= o.scal[i][k]
			}
		}
	}

	// weighted polynomial derivatives and their sums
	for _, k := range o.kk {
		idx := o.Idx(k[0], k[1], k[2])
		o.ww[idx] = 0
		for a := 0; a < o.Nbasis; a++ {
			v := o.Wgt[a]
			for i := 0; i < o.Gdim; i++ {
				v *= o.m[i][k[i]][o.dec[a][i]]
			}
			o.aa[idx][a] = v
			o.ww[idx] += v
		}
	}

	// degenerate basis
	w0 := o.ww[0]
	if w0 < MINWGT {
		return chk.Err("rational basis is degenerate: weighted sum = %g is too small", w0)
	}

	// rational recursion in increasing total order. all j ≤ k with j ≠ k
	// have total order strictly below |k|, hence R[j] is available
	for _, k := range o.kk {
		idx := o.Idx(k[0], k[1], k[2])
		for a := 0; a < o.Nbasis; a++ {
			v := o.aa[idx][a]
			for j1 := 0; j1 <= k[0]; j1++ {
				for j2 := 0; j2 <= k[1]; j2++ {
					for j3 := 0; j3 <= k[2]; j3++ {
						if j1 == k[0] && j2 == k[1] && j3 == k[2] {
							continue
						}
						c := o.binom[k[0]][j1] * o.binom[k[1]][j2] * o.binom[k[2]][j3]
						v -= c * o.ww[o.Idx(k[0]-j1, k[1]-j2, k[2]-j3)] * o.R[o.Idx(j1, j2, j3)][a]
					}
				}
			}
			o.R[idx][a] = v / w0
		}
	}
	return
}

// GetR returns the slice of rational derivatives of multi-index
// (k1,k2,k3) over all local basis functions
func (o *RatDers) GetR(k1, k2, k3 int) []float64 {
	return o.R[o.Idx(k1, k2, k3)]
}
