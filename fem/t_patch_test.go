// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/GabrielJie/Isogeometric-Analysis/ele/solid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_patch01(tst *testing.T) {

	/* biquadratic patch cell; the left edge is fixed, the right edge is
	 * pulled horizontally and all control points are held vertically
	 *
	 *   (-100) 6 o------o------o 8 (-200)
	 *            |      7      |
	 *   (-100) 3 o      o      o 5 (-200)
	 *            |      4      |
	 *   (-100) 0 o------o------o 2 (-200)
	 *                   1
	 *                 (-300)
	 */

	//verbose()
	chk.PrintTitle("patch01. structures and partition")

	// start simulation
	fem := NewMain("data/patch.sim", "", true, false, false, chk.Verbose)

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
	chk.IntAssert(len(dom.Nodes), 9)
	chk.IntAssert(len(dom.Elems), 1)
	for _, nod := range dom.Nodes {
		chk.IntAssert(len(nod.Dofs), 2)
	}

	// equations
	nids, eqs := get_nids_eqs(dom)
	chk.Ints(tst, "nids", nids, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	chk.Ints(tst, "eqs", eqs, utl.IntRange(18))

	// the only unknowns are the horizontal displacements of the middle column
	chk.IntAssert(len(dom.EssenBcs.Bcs), 15)
	chk.Ints(tst, "equ", dom.Equ, []int{2, 8, 14})
	chk.IntAssert(len(dom.Eqk), 15)

	// element assembly map
	e := dom.Elems[0].(*solid.Solid)
	chk.Ints(tst, "Umap", e.Umap, utl.IntRange(18))
}

func Test_patch02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("patch02. homogeneous strain state")

	// start simulation
	fem := NewMain("data/patch.sim", "", true, true, false, chk.Verbose)

	// check the symmetry of the Jacobian during all iterations
	nsolves := 0
	fem.DebugKb = func(d *Domain, it int) {
		nsolves++
		nr, nc := d.Kb.Dims()
		chk.IntAssert(nr, nc)
		d.Kb.DoNonZero(func(i, j int, v float64) {
			diff := math.Abs(v - d.Kb.At(j, i))
			if diff > 1e-9 {
				tst.Errorf("Kb is unsymmetric: |K[%d][%d] - K[%d][%d]| = %g", i, j, j, i, diff)
			}
		})
	}

	// run simulation
	err := fem.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// two increments with two solves each
	chk.IntAssert(nsolves, 4)
	sum := fem.Summary
	chk.Ints(tst, "Resids.Ptrs", sum.Resids.Ptrs, []int{0, 3, 6})
	chk.Vector(tst, "OutTimes", 1e-15, sum.OutTimes, []float64{0, 0.5, 1})
	if !sum.Complete {
		tst.Errorf("summary must be flagged as complete")
		return
	}

	// the patch reproduces the homogeneous strain field exactly: the free
	// control points move linearly with x and stay put vertically
	dom := fem.Domains[0]
	c := 0.001 // from the "pull" function @ t=1
	for _, nod := range dom.Nodes {
		x := nod.Vert.C[0]
		chk.Scalar(tst, io.Sf("ux @ x=%g", x), 1e-12, dom.Sol.Y[nod.GetEq("ux")], c*x)
		chk.Scalar(tst, io.Sf("uy @ x=%g", x), 1e-12, dom.Sol.Y[nod.GetEq("uy")], 0)
	}

	// uniform stresses: εxx = c and εyy = εxy = 0 at all integration points
	lam, G := 600.0, 600.0 // from E=1500 and nu=0.25
	sref := []float64{(lam + 2.0*G) * c, lam * c, lam * c, 0}
	e := dom.Elems[0].(*solid.Solid)
	chk.IntAssert(len(e.States), 9)
	for idx, s := range e.States {
		chk.Vector(tst, io.Sf("σ @ ip %d", idx), 1e-12, s.Sig, sref)
	}
}
