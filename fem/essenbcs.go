// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// EssenBc holds information about one prescribed (Dirichlet) value:
//
//	y[Eq] = Fcn(t, X)
//
type EssenBc struct {
	Key string    // dof key; e.g. "ux", "uy", "phi"
	Eq  int       // equation number
	X   []float64 // coordinates of control point
	Fcn fun.Func  // prescribed value as a function of time
}

// EbcList is a list of EssenBc's sortable by equation number
type EbcList []*EssenBc

// EssentialBcs implements a table of prescribed values at control points.
// The equations listed here form the "known" partition of the global system;
// the linear solver eliminates the corresponding columns from the right-hand
// side and solves the remaining "unknown" block only.
type EssentialBcs struct {
	Bcs EbcList // active prescribed values
}

// Init initialises this structure
func (o *EssentialBcs) Init() {
	o.Bcs = make([]*EssenBc, 0)
}

// Set sets prescribed values for all nodes with the given dof key.
// Nodes without the key are skipped; e.g. "phi" at a pure displacement patch.
// Setting an equation twice replaces the first function; the last one wins.
func (o *EssentialBcs) Set(key string, nodes []*Node, fcn fun.Func, extra string) (err error) {
	chk.IntAssertLessThan(0, len(nodes)) // 0 < len(nodes)
	for _, nod := range nodes {
		if nod == nil {
			continue
		}
		d := nod.GetDof(key)
		if d == nil {
			continue
		}
		o.set_eq(key, d.Eq, nod.Vert.C, fcn)
	}
	return
}

// Build extracts the known/unknown partition of the global equations.
//  Input:
//   ny -- total number of equations
//  Output:
//   eqk -- known (constrained) equations; sorted, free of duplicates
//   equ -- unknown equations == the complement of eqk in [0,ny)
func (o *EssentialBcs) Build(ny int) (eqk, equ []int) {
	sort.Sort(o.Bcs)
	known := make([]bool, ny)
	for _, bc := range o.Bcs {
		eqk = append(eqk, bc.Eq)
		known[bc.Eq] = true
	}
	for eq := 0; eq < ny; eq++ {
		if !known[eq] {
			equ = append(equ, eq)
		}
	}
	return
}

// SetIncrements writes the prescribed increments into the Newton increment vector wb.
// At the first iteration, the increment carries the guess onto the prescribed values:
//
//	wb[eq] = fcn(t) - y[eq]
//
// At subsequent iterations the guess satisfies the constraints already and the
// increment is zero on those equations.
func (o *EssentialBcs) SetIncrements(t float64, y, wb []float64, firstIt bool) {
	for _, bc := range o.Bcs {
		if firstIt {
			wb[bc.Eq] = bc.Fcn.F(t, bc.X) - y[bc.Eq]
		} else {
			wb[bc.Eq] = 0
		}
	}
}

// List returns a simple list logging bcs at time t
func (o *EssentialBcs) List(t float64) (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%8s%25s%25s\n", "eq", "key", "value @ t=0", io.Sf("value @ t=%g", t))
	l += "------------------------------------------------------------------\n"
	sort.Sort(o.Bcs)
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8s%25.13f%25.13f\n", bc.Eq, bc.Key, bc.Fcn.F(0, bc.X), bc.Fcn.F(t, bc.X))
	}
	l += "==================================================================\n"
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// set_eq sets/replaces one prescribed value
func (o *EssentialBcs) set_eq(key string, eq int, x []float64, fcn fun.Func) {

	// replace existent
	for _, bc := range o.Bcs {
		if bc.Eq == eq {
			bc.Key, bc.X, bc.Fcn = key, x, fcn
			return
		}
	}

	// add new
	o.Bcs = append(o.Bcs, &EssenBc{key, eq, x, fcn})
}

// functions to implement the Sort interface
func (o EbcList) Len() int           { return len(o) }
func (o EbcList) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o EbcList) Less(i, j int) bool { return o[i].Eq < o[j].Eq }
