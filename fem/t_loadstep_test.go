// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_loadstep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loadstep01. increment level falls to the floor")

	// the iteration budget (nmaxit=2) is too small for the two-stage
	// convergence test, so every attempt diverges and the increment level
	// walks down monotonically until it would pass lvlmin=-3
	fem := NewMain("data/floor.sim", "", true, false, false, chk.Verbose)

	// count attempts: the level sequence is 0, -1, -2, -3 with two
	// iterations each
	nattempts, nsolves := 0, 0
	fem.DebugKb = func(d *Domain, it int) {
		nsolves++
		if it == 0 {
			nattempts++
		}
	}

	// run simulation => must fail
	err := fem.Run()
	if err == nil {
		tst.Errorf("Run must have failed\n")
		return
	}
	io.Pforan("err = %v\n", err)
	chk.IntAssert(nattempts, 4)
	chk.IntAssert(nsolves, 8)
}

func Test_loadstep02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loadstep02. halve on divergence, double after recovery")

	// start simulation
	fem := NewMain("data/double.sim", "", true, true, false, chk.Verbose)

	// make the first attempt diverge by corrupting the right-hand side of
	// every iteration of that attempt
	nattempts, nsolves := 0, 0
	fem.DebugKb = func(d *Domain, it int) {
		nsolves++
		if it == 0 {
			nattempts++
		}
		if nattempts == 1 {
			for _, I := range d.Equ {
				d.Fb[I] = 1e6
			}
		}
	}

	// run simulation
	err := fem.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// the first attempt exhausts the iteration budget (10 calls) and the
	// level drops to -1; four consecutive convergences (2 solves each)
	// raise it back to 0 and three baseline increments finish the run
	chk.IntAssert(nattempts, 8)
	chk.IntAssert(nsolves, 10+7*2)

	// level bookkeeping
	sum := fem.Summary
	chk.IntAssert(sum.Level, 0)
	chk.IntAssert(sum.Nconv, 0)
	if !sum.Complete {
		tst.Errorf("summary must be flagged as complete")
		return
	}

	// the corrupted attempt leaves no trace in the final solution
	dom := fem.Domains[0]
	c := 0.001 * 0.5 // from the "pull" function @ tf=0.5
	for _, nod := range dom.Nodes {
		x := nod.Vert.C[0]
		chk.Scalar(tst, io.Sf("ux @ x=%g", x), 1e-12, dom.Sol.Y[nod.GetEq("ux")], c*x)
	}
}
