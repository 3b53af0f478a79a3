// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/GabrielJie/Isogeometric-Analysis/ele/solid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_bar01(tst *testing.T) {

	/* linear bar cell with both control points prescribed
	 *
	 *   (-100)             (-200)
	 *      0 o-------------o 1
	 *     ux=0          ux=ū(t)
	 */

	//verbose()
	chk.PrintTitle("bar01. structures and partition")

	// start simulation
	fem := NewMain("data/bar.sim", "", true, false, false, chk.Verbose)

	// set stage
	err := fem.SetStage(0)
	if err != nil {
		tst.Errorf("SetStage failed:\n%v", err)
		return
	}

	// initialise solution vectors
	err = fem.ZeroStage(0, true)
	if err != nil {
		tst.Errorf("ZeroStage failed:\n%v", err)
		return
	}

	// nodes and elements
	dom := fem.Domains[0]
	chk.IntAssert(len(dom.Nodes), 2)
	chk.IntAssert(len(dom.Elems), 1)
	for _, nod := range dom.Nodes {
		chk.IntAssert(len(nod.Dofs), 1)
	}

	// equations
	nids, eqs := get_nids_eqs(dom)
	chk.Ints(tst, "nids", nids, []int{0, 1})
	chk.Ints(tst, "eqs", eqs, []int{0, 1})

	// both equations are prescribed; the unknown set is empty
	chk.IntAssert(len(dom.EssenBcs.Bcs), 2)
	chk.Ints(tst, "eqk", dom.Eqk, []int{0, 1})
	chk.IntAssert(len(dom.Equ), 0)

	// solution arrays
	chk.IntAssert(dom.Ny, 2)
	chk.IntAssert(len(dom.Sol.Y), 2)
	chk.IntAssert(len(dom.Fb), 2)
	chk.IntAssert(len(dom.Wb), 2)

	// element assembly map
	e := dom.Elems[0].(*solid.Rod)
	chk.Ints(tst, "Umap", e.Umap, []int{0, 1})
}

func Test_bar02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar02. prescribed stretch in one iteration")

	// start simulation
	fem := NewMain("data/bar.sim", "", true, true, false, chk.Verbose)

	// count solves
	nsolves := 0
	fem.DebugKb = func(d *Domain, it int) {
		nsolves++
	}

	// run simulation
	err := fem.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// with all equations prescribed the first iteration sets the solution
	// exactly and the second one only confirms the zero residual
	chk.IntAssert(nsolves, 1)

	// summary has a single increment with one iteration
	sum := fem.Summary
	chk.Ints(tst, "Resids.Ptrs", sum.Resids.Ptrs, []int{0, 2})
	chk.Vector(tst, "Resids.Vals", 1e-17, sum.Resids.Vals, []float64{0, 0})
	chk.Vector(tst, "OutTimes", 1e-15, sum.OutTimes, []float64{0, 1})

	// displacements
	ubar := 0.01 // from the "pull" function @ t=1
	dom := fem.Domains[0]
	chk.Scalar(tst, "T", 1e-15, dom.Sol.T, 1.0)
	chk.Vector(tst, "Y", 1e-15, dom.Sol.Y, []float64{0, ubar})

	// uniform axial stress σ = E ε
	E := 100.0
	e := dom.Elems[0].(*solid.Rod)
	chk.IntAssert(len(e.States), 2)
	for idx, s := range e.States {
		chk.Scalar(tst, io.Sf("sig @ ip %d", idx), 1e-12, s.Sig, E*ubar)
		chk.Scalar(tst, io.Sf("eps @ ip %d", idx), 1e-12, s.Eps, ubar)
	}
}
