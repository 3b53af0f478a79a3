// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"gonum.org/v1/gonum/integrate/quad"
)

// Ipoint holds integration point data: natural coordinates and weight
//  {r, s, t, w}
type Ipoint []float64

// GaussPoints returns the coordinates and weights of n Gauss-Legendre
// points over [-1,1]
func GaussPoints(n int) (x, w []float64) {
	x = make([]float64, n)
	w = make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)
	return
}

// IpsTensor generates a tensor-product Gauss rule for a Bezier element
// with the given polynomial degrees. Each direction gets deg+1 points,
// enough to integrate products of two basis functions exactly. Points
// are ordered with the first direction running fastest.
func IpsTensor(degrees []int) (ips []Ipoint) {
	gdim := len(degrees)
	x := make([][]float64, 3)
	w := make([][]float64, 3)
	npts := 1
	for i := 0; i < 3; i++ {
		if i < gdim {
			x[i], w[i] = GaussPoints(degrees[i] + 1)
		} else {
			x[i], w[i] = []float64{0}, []float64{1}
		}
		npts *= len(x[i])
	}
	ips = make([]Ipoint, npts)
	idx := 0
	for k := range x[2] {
		for j := range x[1] {
			for i := range x[0] {
				ips[idx] = Ipoint{x[0][i], x[1][j], x[2][k], w[0][i] * w[1][j] * w[2][k]}
				idx++
			}
		}
	}
	return
}
