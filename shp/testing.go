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

// CheckPartition checks the partition of unity property at natural
// coordinates r: basis values sum to one and every derivative order
// sums to zero
func CheckPartition(tst *testing.T, rat *RatDers, r []float64, tol float64, verbose bool) {

	// compute all derivatives
	err := rat.CalcDers(r)
	if err != nil {
		tst.Errorf("CalcDers failed:\n%v", err)
		return
	}

	// sum each derivative order over all basis functions
	errS := 0.0
	for _, k := range rat.kk {
		sum := 0.0
		for a := 0; a < rat.Nbasis; a++ {
			sum += rat.GetR(k[0], k[1], k[2])[a]
		}
		if verbose {
			io.Pf("k=%v  sum = %v\n", k, sum)
		}
		if k[0]+k[1]+k[2] == 0 {
			errS += math.Abs(sum - 1.0)
		} else {
			errS += math.Abs(sum)
		}
	}

	// error
	if errS > tol {
		tst.Errorf("partition of unity failed with err = %g\n", errS)
		return
	}
}

// CheckDSdU checks the first derivatives of the basis functions against
// numerical differentiation with respect to the natural coordinates
func CheckDSdU(tst *testing.T, shape *Shape, x [][]float64, r []float64, tol float64, verbose bool) {

	// analytical, mapped from parametric to natural coordinates
	ip := Ipoint{0, 0, 0, 1}
	copy(ip, r)
	err := shape.CalcAtIp(x, ip, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	dSdR := la.MatAlloc(shape.Nverts, shape.Gndim)
	for m := 0; m < shape.Nverts; m++ {
		for i := 0; i < shape.Gndim; i++ {
			dSdR[m][i] = shape.DSdU[m][i] * shape.Rat.Psize[i] / 2.0
		}
	}

	// numerical
	chk.DerivVecVec(tst, "dS/dR", tol, dSdR, r[:shape.Gndim], 1e-1, verbose, func(f, ξ []float64) error {
		p := Ipoint{0, 0, 0, 1}
		copy(p, ξ)
		e := shape.CalcAtIp(x, p, false)
		copy(f, shape.S)
		return e
	})
}

// CheckG checks the physical derivatives through the isoparametric
// identity: Σ_m x[j][m]·G[m][i] must equal δ_ji (or the unit tangent
// vector for curve elements)
func CheckG(tst *testing.T, shape *Shape, x [][]float64, r []float64, tol float64, verbose bool) {

	// compute
	ip := Ipoint{0, 0, 0, 1}
	copy(ip, r)
	err := shape.CalcAtIp(x, ip, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}

	// curve element: unit tangent
	errG := 0.0
	ndim := len(x)
	if shape.Gndim == 1 {
		jn := la.VecNorm(shape.Jvec[:ndim])
		for j := 0; j < ndim; j++ {
			sum := 0.0
			for m := 0; m < shape.Nverts; m++ {
				sum += x[j][m] * shape.G[m][0]
			}
			errG += math.Abs(sum - shape.Jvec[j]/jn)
		}
	} else {
		for j := 0; j < ndim; j++ {
			for i := 0; i < shape.Gndim; i++ {
				sum := 0.0
				for m := 0; m < shape.Nverts; m++ {
					sum += x[j][m] * shape.G[m][i]
				}
				if i == j {
					sum -= 1.0
				}
				errG += math.Abs(sum)
			}
		}
	}

	// error
	if verbose {
		io.Pforan("errG = %v\n", errG)
	}
	if errG > tol {
		tst.Errorf("G failed with err = %g\n", errG)
		return
	}
}
