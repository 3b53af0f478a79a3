// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the solution data @ control points.
//
//  y = / u \
//      \ φ / (ny x 1)
//
type Solution struct {

	// current state
	T  float64   // current (pseudo) time
	Y  []float64 // DOFs (solution variables); e.g. y = {u, φ}
	Dt float64   // current time increment

	// auxiliary
	ΔY []float64 // total increment accumulated over iterations

	// problem definition and constants
	Axisym  bool // [from Sim] axisymmetric
	Pstress bool // [from Sim] plane-stress
}

// Reset clear values
func (o *Solution) Reset() {
	o.T = 0
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
		o.ΔY[i] = 0
	}
}
