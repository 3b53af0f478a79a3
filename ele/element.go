// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements isogeometric elements
package ele

import (
	"github.com/cpmech/gosl/fun"
)

// Element defines what all elements must implement
type Element interface {

	// information and initialisation
	Id() int                        // returns the cell Id
	SetEqs(eqs [][]int) (err error) // set equations

	// conditions (natural BCs and element's)
	SetEleConds(key string, f fun.Func, extra string) (err error) // set element conditions

	// called for each iteration
	AddToRhs(fb []float64, sol *Solution) (err error)               // adds -R to global residual vector fb
	AddToKb(Kb *Assembler, sol *Solution, firstIt bool) (err error) // adds element K to global Jacobian matrix Kb

	// reading and writing of element data
	Encode(enc Encoder) (err error) // encodes internal variables
	Decode(dec Decoder) (err error) // decodes internal variables
}

// WithIntVars defines elements with internal (secondary) variables
type WithIntVars interface {
	Update(sol *Solution) (err error)                              // perform (tangent) update
	SetIniIvs(sol *Solution, ivs map[string][]float64) (err error) // sets initial ivs for given values in sol and ivs map
	BackupIvs(aux bool) (err error)                                // create copy of internal variables
	RestoreIvs(aux bool) (err error)                               // restore internal variables from copies
	Ureset(sol *Solution) (err error)                              // fixes internal variables after u (displacements) have been zeroed
}

// CanOutputIps defines elements that can output integration points' values
type CanOutputIps interface {
	Id() int                            // returns the cell Id
	OutIpCoords() [][]float64           // coordinates of integration points
	OutIpKeys() []string                // integration points' keys; e.g. "sx", "sy"
	OutIpVals(M *IpsMap, sol *Solution) // integration points' values corresponding to keys
}
