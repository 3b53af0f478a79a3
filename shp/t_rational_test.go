// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func Test_rat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rat01. partition of unity up to third order")

	// 1D: degree 3, non-uniform weights
	w1 := []float64{1, 0.7, 1.3, 0.9}
	o := NewRatDers([]int{3}, [][][]float64{identity(4)}, []float64{2}, w1, 3)
	for _, r := range []float64{-1, -0.5, 0, 0.25, 1} {
		CheckPartition(tst, o, []float64{r, 0, 0}, 1e-12, chk.Verbose)
	}

	// 2D: degrees 2x2, weights away from unity
	w2 := make([]float64, 9)
	for a := 0; a < 9; a++ {
		w2[a] = 1.0 + 0.1*float64(a%4)
	}
	o = NewRatDers([]int{2, 2}, [][][]float64{identity(3), identity(3)}, []float64{1, 0.5}, w2, 3)
	for _, r := range [][]float64{{-0.5, 0.5, 0}, {0, 0, 0}, {0.9, -0.9, 0}} {
		CheckPartition(tst, o, r, 1e-11, chk.Verbose)
	}

	// 3D: degrees 2x1x2
	w3 := make([]float64, 18)
	for a := 0; a < 18; a++ {
		w3[a] = 0.8 + 0.05*float64(a%5)
	}
	o = NewRatDers([]int{2, 1, 2}, [][][]float64{identity(3), identity(2), identity(3)}, []float64{2, 2, 2}, w3, 3)
	for _, r := range [][]float64{{-0.5, 0.5, 0.1}, {0.3, -0.8, 0.7}} {
		CheckPartition(tst, o, r, 1e-11, chk.Verbose)
	}
}

func Test_rat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rat02. recursion against closed forms")

	// 1D: degree 2 with weights
	w := []float64{1, 0.7, 1.3}
	o := NewRatDers([]int{2}, [][][]float64{identity(3)}, []float64{2}, w, 3)
	for _, r := range []float64{-0.8, -0.2, 0.5, 0.9} {
		err := o.CalcDers([]float64{r, 0, 0})
		if err != nil {
			tst.Errorf("CalcDers failed:\n%v", err)
			return
		}
		i0, i1, i2, i3 := o.Idx(0, 0, 0), o.Idx(1, 0, 0), o.Idx(2, 0, 0), o.Idx(3, 0, 0)
		W0, W1, W2, W3 := o.ww[i0], o.ww[i1], o.ww[i2], o.ww[i3]
		for a := 0; a < o.Nbasis; a++ {
			R0 := o.aa[i0][a] / W0
			R1 := (o.aa[i1][a] - W1*R0) / W0
			R2 := (o.aa[i2][a] - 2.0*W1*R1 - W2*R0) / W0
			R3 := (o.aa[i3][a] - 3.0*W1*R2 - 3.0*W2*R1 - W3*R0) / W0
			chk.Scalar(tst, io.Sf("R0[%d]", a), 1e-14, o.R[i0][a], R0)
			chk.Scalar(tst, io.Sf("R1[%d]", a), 1e-14, o.R[i1][a], R1)
			chk.Scalar(tst, io.Sf("R2[%d]", a), 1e-13, o.R[i2][a], R2)
			chk.Scalar(tst, io.Sf("R3[%d]", a), 1e-13, o.R[i3][a], R3)
		}
	}

	// 2D: mixed derivative of a bilinear rational basis
	w2 := []float64{1, 0.9, 1.1, 0.8}
	o = NewRatDers([]int{1, 1}, [][][]float64{identity(2), identity(2)}, []float64{2, 2}, w2, 2)
	err := o.CalcDers([]float64{0.3, -0.4, 0})
	if err != nil {
		tst.Errorf("CalcDers failed:\n%v", err)
		return
	}
	i00, i10, i01, i11 := o.Idx(0, 0, 0), o.Idx(1, 0, 0), o.Idx(0, 1, 0), o.Idx(1, 1, 0)
	W0 := o.ww[i00]
	for a := 0; a < o.Nbasis; a++ {
		R00 := o.aa[i00][a] / W0
		R10 := (o.aa[i10][a] - o.ww[i10]*R00) / W0
		R01 := (o.aa[i01][a] - o.ww[i01]*R00) / W0
		R11 := (o.aa[i11][a] - o.ww[i01]*R10 - o.ww[i10]*R01 - o.ww[i11]*R00) / W0
		chk.Scalar(tst, io.Sf("R11[%d]", a), 1e-14, o.R[i11][a], R11)
	}
}

func Test_rat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rat03. numerical differentiation with extraction")

	// quadratic B-spline over two knot spans: interior element operators
	ext1 := [][]float64{{1, 0, 0}, {0, 1, 0.5}, {0, 0, 0.5}}
	w := []float64{1, 0.85, 1.2}
	h := []float64{1}
	o := NewRatDers([]int{2}, [][][]float64{ext1}, h, w, 3)
	aux := NewRatDers([]int{2}, [][][]float64{ext1}, h, w, 3)
	for _, r := range []float64{-0.6, 0.1, 0.7} {
		err := o.CalcDers([]float64{r, 0, 0})
		if err != nil {
			tst.Errorf("CalcDers failed:\n%v", err)
			return
		}
		// dᵏ/drᵏ = dᵏ/duᵏ * (h/2)ᵏ
		for k := 1; k <= 3; k++ {
			for a := 0; a < o.Nbasis; a++ {
				dana := o.GetR(k, 0, 0)[a] * math.Pow(h[0]/2.0, float64(k))
				chk.DerivScaSca(tst, io.Sf("d%dR%d", k, a), 1e-8, dana, r, 1e-1, chk.Verbose, func(ξ float64) (float64, error) {
					e := aux.CalcDers([]float64{ξ, 0, 0})
					return aux.GetR(k-1, 0, 0)[a] * math.Pow(h[0]/2.0, float64(k-1)), e
				})
			}
		}
	}
}

func Test_rat04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rat04. quarter circle arc")

	// quadratic rational Bezier representing a 90 degree arc
	xc := [][]float64{{1, 1, 0}, {0, 1, 1}}
	w := []float64{1, math.Sqrt2 / 2.0, 1}
	o := NewRatDers([]int{2}, [][][]float64{identity(3)}, []float64{1}, w, 2)
	x := make([]float64, 2)
	dxdu := make([]float64, 2)
	for _, r := range []float64{-1, -0.5, 0, 0.5, 1} {
		err := o.CalcDers([]float64{r, 0, 0})
		if err != nil {
			tst.Errorf("CalcDers failed:\n%v", err)
			return
		}
		for i := 0; i < 2; i++ {
			x[i], dxdu[i] = 0, 0
			for a := 0; a < 3; a++ {
				x[i] += o.GetR(0, 0, 0)[a] * xc[i][a]
				dxdu[i] += o.GetR(1, 0, 0)[a] * xc[i][a]
			}
		}
		io.Pf("r=%5.2f  x = %v\n", r, x)

		// points sit on the unit circle and tangents are orthogonal
		// to the radius
		chk.Scalar(tst, "radius", 1e-14, la.VecNorm(x), 1.0)
		chk.Scalar(tst, "x.t", 1e-13, x[0]*dxdu[0]+x[1]*dxdu[1], 0)
	}
}

func Test_rat05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rat05. degenerate basis")

	o := NewRatDers([]int{1}, [][][]float64{identity(2)}, []float64{2}, []float64{0, 0}, 1)
	err := o.CalcDers([]float64{0, 0, 0})
	if err == nil {
		tst.Errorf("error should have been raised for zero weights\n")
		return
	}
	io.Pf("OK. error = %v\n", err)
}
