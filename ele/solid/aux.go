// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/tsr"

// StressKeys returns the stress keys for output
func StressKeys(ndim int) []string {
	if ndim == 2 {
		return []string{"sx", "sy", "sz", "sxy"}
	}
	return []string{"sx", "sy", "sz", "sxy", "syz", "szx"}
}

// Ivs2sigmas converts ivs map to σ values [nsig]
//  σ -- [nsig] stresses
//  i -- index of integration point
func Ivs2sigmas(σ []float64, i int, ivs map[string][]float64) {
	for key, vals := range ivs {
		switch key {
		case "sx":
			σ[0] = vals[i]
		case "sy":
			σ[1] = vals[i]
		case "sz":
			σ[2] = vals[i]
		case "sxy":
			σ[3] = vals[i]
		case "syz":
			if len(σ) > 4 {
				σ[4] = vals[i]
			}
		case "szx":
			if len(σ) > 5 {
				σ[5] = vals[i]
			}
		}
	}
}

// IpBmatrix computes the strain-displacement matrix B at an integration point
// such that εM = B ⋅ u, where εM is the strain vector in Mandel's notation;
// i.e. the off-diagonal components carry a √2 factor. The column ordering of
// B follows r = i + m ⋅ ndim with m the local control point index
//
//	B      -- [nsig][nverts*ndim] B matrix
//	G      -- [nverts][ndim] gradients of basis functions w.r.t real coordinates
//	radius -- distance to axis of symmetry; used if axisym == true
//	S      -- [nverts] basis functions; used if axisym == true
func IpBmatrix(B [][]float64, ndim, nverts int, G [][]float64, radius float64, S []float64, axisym bool) {
	if ndim == 3 {
		for m := 0; m < nverts; m++ {
			c := m * 3
			B[0][c+0] = G[m][0]
			B[1][c+1] = G[m][1]
			B[2][c+2] = G[m][2]
			B[3][c+0] = G[m][1] / tsr.SQ2
			B[3][c+1] = G[m][0] / tsr.SQ2
			B[4][c+1] = G[m][2] / tsr.SQ2
			B[4][c+2] = G[m][1] / tsr.SQ2
			B[5][c+0] = G[m][2] / tsr.SQ2
			B[5][c+2] = G[m][0] / tsr.SQ2
		}
		return
	}

	// plane-strain and axisymmetric cases; the hoop strain occupies the
	// third row and is zero unless axisymmetric
	for m := 0; m < nverts; m++ {
		c := m * 2
		B[0][c+0] = G[m][0]
		B[1][c+1] = G[m][1]
		B[2][c+0] = 0
		B[3][c+0] = G[m][1] / tsr.SQ2
		B[3][c+1] = G[m][0] / tsr.SQ2
		if axisym {
			B[2][c+0] = S[m] / radius
		}
	}
}

// IpStrainsAndIncB computes strains and strain increments @ integration point
// using the B matrix:  ε = B ⋅ y  and  Δε = B ⋅ Δy
func IpStrainsAndIncB(ε, Δε []float64, nsig, nu int, B [][]float64, Y, ΔY []float64, umap []int) {
	for i := 0; i < nsig; i++ {
		ε[i], Δε[i] = 0, 0
		for j := 0; j < nu; j++ {
			r := umap[j]
			ε[i] += B[i][j] * Y[r]
			Δε[i] += B[i][j] * ΔY[r]
		}
	}
}
