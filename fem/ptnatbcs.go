// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// PtNaturalBc holds one point natural boundary condition: a concentrated
// load applied directly to the equation of a control point
type PtNaturalBc struct {
	Key string    // dof key corresponding to the load; e.g. "ux" for "fx"
	Eq  int       // equation number
	X   []float64 // coordinates of control point
	Fcn fun.Func  // load as a function of time
}

// PtNaturalBcs holds all point natural boundary conditions
type PtNaturalBcs struct {
	Bcs []*PtNaturalBc // active point loads
}

// Reset initialises this structure
func (o *PtNaturalBcs) Reset() {
	o.Bcs = make([]*PtNaturalBc, 0)
}

// Set sets a point load at one node.
//  Input:
//   key -- the dof key receiving the load; e.g. "ux" when the input lists "fx"
func (o *PtNaturalBcs) Set(key string, nod *Node, fcn fun.Func, extra string) (err error) {
	d := nod.GetDof(key)
	if d == nil {
		return chk.Err("cannot apply point load to node %d because it does not have dof %q", nod.Vert.Id, key)
	}
	o.Bcs = append(o.Bcs, &PtNaturalBc{key, d.Eq, nod.Vert.C, fcn})
	return
}

// AddToRhs adds the point loads to the global residual vector fb
func (o *PtNaturalBcs) AddToRhs(fb []float64, t float64) {
	for _, bc := range o.Bcs {
		fb[bc.Eq] += bc.Fcn.F(t, bc.X)
	}
}

// List returns a simple list logging bcs at time t
func (o *PtNaturalBcs) List(t float64) (l string) {
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8s%25.13f\n", bc.Eq, bc.Key, bc.Fcn.F(t, bc.X))
	}
	return
}
